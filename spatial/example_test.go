package spatial_test

import (
	"fmt"

	"github.com/archicomm/wirepath/geom"
	"github.com/archicomm/wirepath/spatial"
)

// ExampleIndex_Search indexes three shapes of a small canvas and queries
// the region around the first two.
func ExampleIndex_Search() {
	ix := spatial.New()
	_ = ix.Insert("api", geom.Rect{X: 0, Y: 0, W: 180, H: 96})
	_ = ix.Insert("db", geom.Rect{X: 240, Y: 0, W: 180, H: 96})
	_ = ix.Insert("cache", geom.Rect{X: 0, Y: 400, W: 180, H: 96})

	for _, it := range ix.Search(geom.Rect{X: 0, Y: 0, W: 500, H: 200}) {
		fmt.Println(it.ID)
	}
	// Output:
	// api
	// db
}

// ExampleBulk packs a complete shape list in one pass, the preferred
// path when the whole layout is known up front.
func ExampleBulk() {
	ix, err := spatial.Bulk([]spatial.Item{
		{ID: "web", Box: geom.Rect{X: 0, Y: 0, W: 180, H: 96}},
		{ID: "auth", Box: geom.Rect{X: 300, Y: 0, W: 180, H: 96}},
	})
	if err != nil {
		fmt.Println("bulk failed:", err)
		return
	}

	fmt.Println(ix.Len())
	fmt.Printf("%.0f\n", ix.Bounds().W)
	// Output:
	// 2
	// 480
}
