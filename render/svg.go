package render

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/archicomm/wirepath/diagram"
	"github.com/archicomm/wirepath/geom"
	"github.com/archicomm/wirepath/router"
)

// DefaultPadding is the canvas margin in pixels.
const DefaultPadding = 24.0

// defaultFill is the card color for shape kinds the palette doesn't name.
const defaultFill = "#eef2ff"

// defaultPalette maps the ArchiComm component kinds to fills.
var defaultPalette = map[string]string{
	"frontend":    "#fef3c7",
	"backend":     "#dbeafe",
	"database":    "#dcfce7",
	"api":         "#fae8ff",
	"service":     "#e0f2fe",
	"integration": "#ffe4e6",
}

// Options configures SVG output.
type Options struct {
	Padding float64
	Palette map[string]string
}

// Option is a functional option for configuring WriteSVG.
type Option func(*Options)

// WithPadding sets the canvas margin around the diagram bounds.
func WithPadding(px float64) Option {
	return func(o *Options) { o.Padding = px }
}

// WithPalette overrides the kind→fill mapping. Kinds absent from the map
// use the default card color.
func WithPalette(p map[string]string) Option {
	return func(o *Options) { o.Palette = p }
}

// DefaultOptions returns the Options WriteSVG uses without overrides.
func DefaultOptions() Options {
	return Options{Padding: DefaultPadding, Palette: defaultPalette}
}

// WriteSVG renders the diagram and its routed connections to w.
// Routes may be nil to render shapes only.
func WriteSVG(w io.Writer, d *diagram.Diagram, routes []router.ConnectionRoute, opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	bounds := d.Bounds()
	for _, cr := range routes {
		// Routes can bow outside the shape bounds; grow the canvas.
		// Points become unit boxes because Union ignores empty rects.
		for _, p := range cr.Route.Points {
			bounds = bounds.Union(geom.Rect{X: p.X - 0.5, Y: p.Y - 0.5, W: 1, H: 1})
		}
	}
	bounds = bounds.Expand(cfg.Padding)

	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f">`+"\n",
		bounds.X, bounds.Y, bounds.W, bounds.H)
	b.WriteString(arrowDefs)

	// Connections under shapes, matching canvas stacking order.
	for _, cr := range routes {
		writePolyline(&b, cr)
	}
	for _, s := range d.Shapes {
		writeShape(&b, s, cfg.Palette)
	}
	b.WriteString("</svg>\n")

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("render: write svg: %w", err)
	}

	return nil
}

// arrowDefs declares the arrowhead marker polylines reference.
const arrowDefs = `<defs><marker id="arrow" viewBox="0 0 10 10" refX="9" refY="5"` +
	` markerWidth="7" markerHeight="7" orient="auto-start-reverse">` +
	`<path d="M 0 0 L 10 5 L 0 10 z" fill="#475569"/></marker></defs>` + "\n"

func writePolyline(b *strings.Builder, cr router.ConnectionRoute) {
	if len(cr.Route.Points) < 2 {
		return
	}
	pts := make([]string, len(cr.Route.Points))
	for i, p := range cr.Route.Points {
		pts[i] = fmt.Sprintf("%.1f,%.1f", p.X, p.Y)
	}
	fmt.Fprintf(b,
		`<polyline id="%s" points="%s" fill="none" stroke="#475569" stroke-width="1.5" marker-end="url(#arrow)"/>`+"\n",
		escape(cr.ConnectionID), strings.Join(pts, " "))
}

func writeShape(b *strings.Builder, s diagram.Shape, palette map[string]string) {
	fill, ok := palette[s.Kind]
	if !ok {
		fill = defaultFill
	}
	fmt.Fprintf(b,
		`<rect id="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="8" fill="%s" stroke="#334155"/>`+"\n",
		escape(s.ID), s.X, s.Y, s.W, s.H, fill)

	label := s.Label
	if label == "" {
		label = s.ID
	}
	fmt.Fprintf(b,
		`<text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-size="13">%s</text>`+"\n",
		s.X+s.W/2, s.Y+s.H/2, escape(label))
}

// escape XML-escapes user-provided text and attribute values.
func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))

	return b.String()
}
