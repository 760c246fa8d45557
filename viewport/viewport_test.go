package viewport_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archicomm/wirepath/diagram"
	"github.com/archicomm/wirepath/geom"
	"github.com/archicomm/wirepath/spatial"
	"github.com/archicomm/wirepath/viewport"
)

// cullFixture lays three shapes on a wide canvas: one inside the test
// view, one just outside overscan reach, one far away. A long connection
// spans the two distant shapes straight across the view.
func cullFixture(t *testing.T) (*diagram.Diagram, *spatial.Index) {
	t.Helper()
	d := &diagram.Diagram{
		Shapes: []diagram.Shape{
			{ID: "near", X: 100, Y: 100, W: 180, H: 96},
			{ID: "left", X: -1300, Y: 150, W: 180, H: 96},
			{ID: "right", X: 5000, Y: 150, W: 180, H: 96},
		},
		Connections: []diagram.Connection{
			{ID: "span", SourceID: "left", TargetID: "right"},
			{ID: "local", SourceID: "near", TargetID: "near"},
		},
	}
	items := make([]spatial.Item, len(d.Shapes))
	for i, s := range d.Shapes {
		items[i] = spatial.Item{ID: s.ID, Box: s.Box()}
	}
	idx, err := spatial.Bulk(items)
	require.NoError(t, err)

	return d, idx
}

func TestWorldRect(t *testing.T) {
	v := viewport.View{X: 10, Y: 20, W: 800, H: 600, Zoom: 2}
	world, err := v.WorldRect()
	require.NoError(t, err)
	assert.Equal(t, geom.Rect{X: 10, Y: 20, W: 400, H: 300}, world)
}

func TestWorldRect_BadZoom(t *testing.T) {
	for _, zoom := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		v := viewport.View{W: 800, H: 600, Zoom: zoom}
		_, err := v.WorldRect()
		assert.ErrorIs(t, err, viewport.ErrBadZoom, "zoom %v", zoom)
	}
}

func TestQuantize(t *testing.T) {
	v := viewport.View{X: 123.7, Y: -61.2, W: 800, H: 600, Zoom: 1.23456}
	q := viewport.Quantize(v, 32)
	assert.Equal(t, 96.0, q.X)
	assert.Equal(t, -64.0, q.Y)
	assert.Equal(t, 1.23, q.Zoom)
	assert.Equal(t, v.W, q.W)

	// Non-positive steps are a no-op.
	assert.Equal(t, v, viewport.Quantize(v, 0))
	assert.Equal(t, v, viewport.Quantize(v, -5))
}

func TestWithPadding_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { viewport.WithPadding(-0.1) })
	assert.NotPanics(t, func() { viewport.WithPadding(0) })
}

func TestCull_ShapeVisibility(t *testing.T) {
	d, idx := cullFixture(t)
	view := viewport.View{X: 0, Y: 0, W: 800, H: 600, Zoom: 1}

	set, err := viewport.Cull(d, idx, view)
	require.NoError(t, err)

	assert.Equal(t, []string{"near"}, set.ShapeIDs)
	assert.Equal(t, 3, set.Stats.TotalShapes)
	assert.Equal(t, 1, set.Stats.VisibleShapes)
}

// A connection with both endpoints off-screen still renders when its
// path box crosses the view.
func TestCull_LongConnectionSurvives(t *testing.T) {
	d, idx := cullFixture(t)
	view := viewport.View{X: 0, Y: 0, W: 800, H: 600, Zoom: 1}

	set, err := viewport.Cull(d, idx, view)
	require.NoError(t, err)

	assert.Contains(t, set.ConnectionIDs, "span")
	assert.Contains(t, set.ConnectionIDs, "local")
	assert.Equal(t, 2, set.Stats.VisibleConnections)
}

func TestCull_OverscanPullsInNeighbors(t *testing.T) {
	d, idx := cullFixture(t)
	// A view ending at x=2400 with 50% overscan pads by 1200 world units,
	// which is still short of the shape at x=5000.
	view := viewport.View{X: 0, Y: 0, W: 2400, H: 600, Zoom: 1}

	tight, err := viewport.Cull(d, idx, view, viewport.WithPadding(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"near"}, tight.ShapeIDs)

	padded, err := viewport.Cull(d, idx, view)
	require.NoError(t, err)
	assert.Equal(t, []string{"left", "near"}, padded.ShapeIDs)
}

func TestCull_ZoomShrinksWorldWindow(t *testing.T) {
	d, idx := cullFixture(t)
	// Zoomed in 8×: the 800px view shows only 100 world units from the
	// origin, which misses the shape at (100,100) even with overscan.
	view := viewport.View{X: 0, Y: 0, W: 800, H: 600, Zoom: 8}

	set, err := viewport.Cull(d, idx, view, viewport.WithPadding(0))
	require.NoError(t, err)
	assert.Empty(t, set.ShapeIDs)
}

func TestCull_DanglingConnectionDropped(t *testing.T) {
	d, idx := cullFixture(t)
	d.Connections = append(d.Connections, diagram.Connection{
		ID: "broken", SourceID: "ghost", TargetID: "missing",
	})
	view := viewport.View{X: 0, Y: 0, W: 800, H: 600, Zoom: 1}

	set, err := viewport.Cull(d, idx, view)
	require.NoError(t, err)
	assert.NotContains(t, set.ConnectionIDs, "broken")
}

func TestCull_BadZoomPropagates(t *testing.T) {
	d, idx := cullFixture(t)
	_, err := viewport.Cull(d, idx, viewport.View{W: 800, H: 600})
	require.ErrorIs(t, err, viewport.ErrBadZoom)
}

func TestCull_EmptyDiagram(t *testing.T) {
	idx, err := spatial.Bulk(nil)
	require.NoError(t, err)

	set, err := viewport.Cull(&diagram.Diagram{}, idx, viewport.View{W: 800, H: 600, Zoom: 1})
	require.NoError(t, err)
	assert.Empty(t, set.ShapeIDs)
	assert.Empty(t, set.ConnectionIDs)
	assert.Equal(t, viewport.Stats{}, set.Stats)
}
