package spatial_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/archicomm/wirepath/geom"
	"github.com/archicomm/wirepath/spatial"
)

func benchItems(n int) []spatial.Item {
	rng := rand.New(rand.NewSource(1))
	items := make([]spatial.Item, n)
	for i := range items {
		items[i] = spatial.Item{
			ID: fmt.Sprintf("s%05d", i),
			Box: geom.Rect{
				X: rng.Float64() * 5000,
				Y: rng.Float64() * 3000,
				W: 40 + rng.Float64()*200,
				H: 30 + rng.Float64()*120,
			},
		}
	}

	return items
}

func BenchmarkInsert(b *testing.B) {
	for _, n := range []int{100, 1000, 5000} {
		items := benchItems(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				ix := spatial.New()
				for _, it := range items {
					_ = ix.Insert(it.ID, it.Box)
				}
			}
		})
	}
}

func BenchmarkBulk(b *testing.B) {
	for _, n := range []int{100, 1000, 5000} {
		items := benchItems(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = spatial.Bulk(items)
			}
		})
	}
}

func BenchmarkSearch(b *testing.B) {
	items := benchItems(5000)
	ix, err := spatial.Bulk(items)
	if err != nil {
		b.Fatal(err)
	}
	queries := make([]geom.Rect, 64)
	rng := rand.New(rand.NewSource(2))
	for i := range queries {
		queries[i] = geom.Rect{
			X: rng.Float64() * 5000,
			Y: rng.Float64() * 3000,
			W: 400,
			H: 300,
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ix.Search(queries[i%len(queries)])
	}
}
