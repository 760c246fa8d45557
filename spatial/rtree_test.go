// Package spatial_test exercises insertion validation, split behavior,
// and query correctness of the R-tree against a brute-force oracle.
package spatial_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archicomm/wirepath/geom"
	"github.com/archicomm/wirepath/spatial"
)

// ------------------------------------------------------------------------
// 1. Validation.
// ------------------------------------------------------------------------

func TestInsert_EmptyID(t *testing.T) {
	ix := spatial.New()
	err := ix.Insert("", geom.Rect{W: 10, H: 10})
	require.ErrorIs(t, err, spatial.ErrEmptyID)
}

func TestInsert_InvalidBox(t *testing.T) {
	ix := spatial.New()
	err := ix.Insert("a", geom.Rect{W: -5, H: 10})
	require.ErrorIs(t, err, spatial.ErrInvalidBox)
	assert.Contains(t, err.Error(), `"a"`, "error should name the offending ID")
}

func TestInsert_DuplicateID(t *testing.T) {
	ix := spatial.New()
	require.NoError(t, ix.Insert("a", geom.Rect{W: 10, H: 10}))
	err := ix.Insert("a", geom.Rect{X: 50, W: 10, H: 10})
	require.ErrorIs(t, err, spatial.ErrDuplicateID)
	assert.Contains(t, err.Error(), `"a"`)
}

func TestWithMaxEntries_PanicsBelowMinimum(t *testing.T) {
	assert.Panics(t, func() { spatial.New(spatial.WithMaxEntries(3)) })
	assert.NotPanics(t, func() { spatial.New(spatial.WithMaxEntries(4)) })
}

// ------------------------------------------------------------------------
// 2. Basic queries.
// ------------------------------------------------------------------------

func TestSearch_EmptyIndex(t *testing.T) {
	ix := spatial.New()
	assert.Nil(t, ix.Search(geom.Rect{W: 100, H: 100}))
	assert.Equal(t, 0, ix.Len())
	assert.True(t, ix.Bounds().Empty())
}

func TestSearch_EmptyQuery(t *testing.T) {
	ix := spatial.New()
	require.NoError(t, ix.Insert("a", geom.Rect{W: 10, H: 10}))
	assert.Nil(t, ix.Search(geom.Rect{X: 5, Y: 5}), "zero-extent query matches nothing")
}

func TestSearch_SortedByID(t *testing.T) {
	ix := spatial.New()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, ix.Insert(id, geom.Rect{W: 10, H: 10}))
	}
	got := ix.Search(geom.Rect{X: -1, Y: -1, W: 20, H: 20})
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
}

func TestBounds_CoversAllItems(t *testing.T) {
	ix := spatial.New()
	require.NoError(t, ix.Insert("a", geom.Rect{X: 0, Y: 0, W: 10, H: 10}))
	require.NoError(t, ix.Insert("b", geom.Rect{X: 90, Y: 40, W: 10, H: 10}))
	want := geom.Rect{X: 0, Y: 0, W: 100, H: 50}
	assert.Equal(t, want, ix.Bounds())
}

func TestCovering_BoundaryCounts(t *testing.T) {
	ix := spatial.New()
	require.NoError(t, ix.Insert("a", geom.Rect{X: 0, Y: 0, W: 10, H: 10}))
	require.NoError(t, ix.Insert("b", geom.Rect{X: 10, Y: 0, W: 10, H: 10}))

	// The shared edge x=10 belongs to both boxes.
	got := ix.Covering(geom.Point{X: 10, Y: 5})
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)

	assert.Empty(t, ix.Covering(geom.Point{X: 50, Y: 50}))
}

// ------------------------------------------------------------------------
// 3. Split behavior and oracle comparison.
// ------------------------------------------------------------------------

// bruteSearch is the O(n) oracle the tree must agree with.
func bruteSearch(items []spatial.Item, query geom.Rect) map[string]struct{} {
	out := make(map[string]struct{})
	for _, it := range items {
		if it.Box.Intersects(query) {
			out[it.ID] = struct{}{}
		}
	}

	return out
}

func randomItems(rng *rand.Rand, n int) []spatial.Item {
	items := make([]spatial.Item, n)
	for i := range items {
		items[i] = spatial.Item{
			ID: fmt.Sprintf("s%04d", i),
			Box: geom.Rect{
				X: rng.Float64() * 2000,
				Y: rng.Float64() * 1200,
				W: 20 + rng.Float64()*200,
				H: 20 + rng.Float64()*120,
			},
		}
	}

	return items
}

func TestSearch_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	items := randomItems(rng, 500)

	// Small fanout forces several levels of splits.
	ix := spatial.New(spatial.WithMaxEntries(4))
	for _, it := range items {
		require.NoError(t, ix.Insert(it.ID, it.Box))
	}
	require.Equal(t, len(items), ix.Len())

	for q := 0; q < 50; q++ {
		query := geom.Rect{
			X: rng.Float64() * 2000,
			Y: rng.Float64() * 1200,
			W: 50 + rng.Float64()*500,
			H: 50 + rng.Float64()*300,
		}
		want := bruteSearch(items, query)
		got := ix.Search(query)
		require.Len(t, got, len(want), "query %d: result size mismatch", q)
		for _, it := range got {
			_, ok := want[it.ID]
			assert.True(t, ok, "query %d: unexpected hit %q", q, it.ID)
		}
	}
}

func TestBulk_MatchesIncrementalInsert(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	items := randomItems(rng, 300)

	bulk, err := spatial.Bulk(items)
	require.NoError(t, err)
	require.Equal(t, len(items), bulk.Len())

	incremental := spatial.New()
	for _, it := range items {
		require.NoError(t, incremental.Insert(it.ID, it.Box))
	}

	assert.Equal(t, incremental.Bounds(), bulk.Bounds())
	for q := 0; q < 30; q++ {
		query := geom.Rect{
			X: rng.Float64() * 2000,
			Y: rng.Float64() * 1200,
			W: 100 + rng.Float64()*400,
			H: 100 + rng.Float64()*300,
		}
		assert.Equal(t, incremental.Search(query), bulk.Search(query), "query %d", q)
	}
}

func TestBulk_Validation(t *testing.T) {
	_, err := spatial.Bulk([]spatial.Item{{ID: "", Box: geom.Rect{W: 1, H: 1}}})
	require.ErrorIs(t, err, spatial.ErrEmptyID)

	_, err = spatial.Bulk([]spatial.Item{{ID: "x", Box: geom.Rect{W: -1, H: 1}}})
	require.ErrorIs(t, err, spatial.ErrInvalidBox)

	_, err = spatial.Bulk([]spatial.Item{
		{ID: "x", Box: geom.Rect{W: 1, H: 1}},
		{ID: "x", Box: geom.Rect{X: 5, W: 1, H: 1}},
	})
	require.ErrorIs(t, err, spatial.ErrDuplicateID)
}

func TestBulk_Empty(t *testing.T) {
	ix, err := spatial.Bulk(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, ix.Len())
	assert.Nil(t, ix.Search(geom.Rect{W: 100, H: 100}))
}

func TestBulk_DoesNotMutateInput(t *testing.T) {
	items := []spatial.Item{
		{ID: "b", Box: geom.Rect{X: 100, W: 10, H: 10}},
		{ID: "a", Box: geom.Rect{X: 0, W: 10, H: 10}},
	}
	_, err := spatial.Bulk(items)
	require.NoError(t, err)
	assert.Equal(t, "b", items[0].ID, "caller slice order must survive Bulk")
}
