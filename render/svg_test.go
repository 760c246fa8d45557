package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archicomm/wirepath/diagram"
	"github.com/archicomm/wirepath/geom"
	"github.com/archicomm/wirepath/render"
	"github.com/archicomm/wirepath/router"
)

func renderFixture() (*diagram.Diagram, []router.ConnectionRoute) {
	d := &diagram.Diagram{
		Shapes: []diagram.Shape{
			{ID: "web", Kind: "frontend", Label: "Web <App>", X: 0, Y: 0, W: 180, H: 96},
			{ID: "db", Kind: "database", X: 400, Y: 0, W: 180, H: 96},
		},
	}
	routes := []router.ConnectionRoute{
		{
			ConnectionID: "c1",
			Route: router.Route{
				Points:   []geom.Point{{X: 180, Y: 48}, {X: 400, Y: 48}},
				Strategy: router.StrategyDirect,
			},
		},
	}

	return d, routes
}

func TestWriteSVG_ShapesAndRoutes(t *testing.T) {
	d, routes := renderFixture()
	var buf bytes.Buffer
	require.NoError(t, render.WriteSVG(&buf, d, routes))
	svg := buf.String()

	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`))
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
	assert.Contains(t, svg, `<rect id="web"`)
	assert.Contains(t, svg, `<rect id="db"`)
	assert.Contains(t, svg, `<polyline id="c1"`)
	assert.Contains(t, svg, `points="180.0,48.0 400.0,48.0"`)
	assert.Contains(t, svg, `marker-end="url(#arrow)"`)
	assert.Contains(t, svg, `<marker id="arrow"`)
}

func TestWriteSVG_PaletteByKind(t *testing.T) {
	d, routes := renderFixture()
	var buf bytes.Buffer
	require.NoError(t, render.WriteSVG(&buf, d, routes))
	svg := buf.String()

	assert.Contains(t, svg, `fill="#fef3c7"`, "frontend kind uses the frontend fill")
	assert.Contains(t, svg, `fill="#dcfce7"`, "database kind uses the database fill")
}

func TestWriteSVG_CustomPaletteFallsBack(t *testing.T) {
	d, _ := renderFixture()
	var buf bytes.Buffer
	err := render.WriteSVG(&buf, d, nil,
		render.WithPalette(map[string]string{"frontend": "#111111"}))
	require.NoError(t, err)
	svg := buf.String()

	assert.Contains(t, svg, `fill="#111111"`)
	assert.Contains(t, svg, `fill="#eef2ff"`, "kinds missing from the palette get the default card fill")
}

func TestWriteSVG_EscapesLabels(t *testing.T) {
	d, _ := renderFixture()
	var buf bytes.Buffer
	require.NoError(t, render.WriteSVG(&buf, d, nil))
	svg := buf.String()

	assert.Contains(t, svg, "Web &lt;App&gt;")
	assert.NotContains(t, svg, "Web <App>")
}

func TestWriteSVG_LabelDefaultsToID(t *testing.T) {
	d, _ := renderFixture()
	var buf bytes.Buffer
	require.NoError(t, render.WriteSVG(&buf, d, nil))

	assert.Contains(t, buf.String(), `>db</text>`)
}

func TestWriteSVG_ViewBoxCoversRouteBow(t *testing.T) {
	d := &diagram.Diagram{
		Shapes: []diagram.Shape{{ID: "a", X: 0, Y: 0, W: 100, H: 60}},
	}
	routes := []router.ConnectionRoute{
		{
			ConnectionID: "loop",
			Route: router.Route{
				// Bows far above the shape bounds.
				Points: []geom.Point{{X: 100, Y: 30}, {X: 100, Y: -200}, {X: 0, Y: -200}},
			},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, render.WriteSVG(&buf, d, routes, render.WithPadding(0)))

	// viewBox must start at the route's topmost extent, not the shape's.
	assert.Contains(t, buf.String(), `viewBox="-0.5 -200.5`)
}

func TestWriteSVG_NilRoutes(t *testing.T) {
	d, _ := renderFixture()
	var buf bytes.Buffer
	require.NoError(t, render.WriteSVG(&buf, d, nil))
	assert.NotContains(t, buf.String(), "<polyline")
}
