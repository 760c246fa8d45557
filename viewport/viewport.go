package viewport

import (
	"errors"
	"math"
	"sort"

	"github.com/archicomm/wirepath/diagram"
	"github.com/archicomm/wirepath/geom"
	"github.com/archicomm/wirepath/spatial"
)

// Sentinel errors for viewport operations.
var (
	// ErrBadZoom indicates a zoom factor that is zero, negative, NaN or Inf.
	ErrBadZoom = errors.New("viewport: zoom must be positive and finite")
	// ErrBadPadding indicates a negative padding ratio.
	ErrBadPadding = errors.New("viewport: padding ratio must be non-negative")
)

// DefaultPadding is the overscan margin as a fraction of the view size.
// Half a viewport on each side keeps modest panning from revealing
// unrendered shapes.
const DefaultPadding = 0.5

// View is the visible window. X and Y are the world coordinates of the
// top-left corner; W and H are the screen extent in screen pixels; Zoom
// scales world units to screen pixels (2 = zoomed in twice).
type View struct {
	X, Y, W, H float64
	Zoom       float64
}

// WorldRect returns the world-space rectangle the view displays.
func (v View) WorldRect() (geom.Rect, error) {
	if v.Zoom <= 0 || math.IsNaN(v.Zoom) || math.IsInf(v.Zoom, 0) {
		return geom.Rect{}, ErrBadZoom
	}

	return geom.Rect{X: v.X, Y: v.Y, W: v.W / v.Zoom, H: v.H / v.Zoom}, nil
}

// Quantize snaps pan to multiples of step world units and zoom to
// hundredths, so viewports within one step of each other cull — and
// cache — identically. Non-positive steps leave the view unchanged.
func Quantize(v View, step float64) View {
	if step <= 0 {
		return v
	}
	v.X = math.Floor(v.X/step) * step
	v.Y = math.Floor(v.Y/step) * step
	v.Zoom = math.Round(v.Zoom*100) / 100

	return v
}

// Options configures culling.
//
// Padding – overscan margin as a fraction of the view's world extent,
// applied on every side (default DefaultPadding).
type Options struct {
	Padding float64
}

// Option is a functional option for configuring Cull.
type Option func(*Options)

// WithPadding sets the overscan ratio. Negative ratios panic with
// ErrBadPadding; zero disables overscan entirely.
func WithPadding(ratio float64) Option {
	if ratio < 0 || math.IsNaN(ratio) {
		panic(ErrBadPadding.Error())
	}
	return func(o *Options) {
		o.Padding = ratio
	}
}

// DefaultOptions returns the Options Cull uses without overrides.
func DefaultOptions() Options {
	return Options{Padding: DefaultPadding}
}

// Stats reports how much the cull removed.
type Stats struct {
	TotalShapes        int
	VisibleShapes      int
	TotalConnections   int
	VisibleConnections int
}

// VisibleSet is the cull result: the IDs worth rendering, sorted.
type VisibleSet struct {
	ShapeIDs      []string
	ConnectionIDs []string
	Stats         Stats
}

// Cull returns the shapes and connections of d that intersect the padded
// view. idx must index d's shapes by ID (spatial.Bulk over the shape
// list); sharing one index between the router and the culler is the
// intended pattern.
//
// An empty diagram produces an empty set, not an error.
func Cull(d *diagram.Diagram, idx *spatial.Index, v View, opts ...Option) (VisibleSet, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	world, err := v.WorldRect()
	if err != nil {
		return VisibleSet{}, err
	}

	// Pad proportionally to the view's world extent: overscan should
	// cover the same number of screens at every zoom level.
	pad := cfg.Padding * math.Max(world.W, world.H)
	padded := world.Expand(pad)

	visible := make(map[string]struct{})
	for _, it := range idx.Search(padded) {
		visible[it.ID] = struct{}{}
	}

	set := VisibleSet{
		ShapeIDs: make([]string, 0, len(visible)),
		Stats: Stats{
			TotalShapes:      len(d.Shapes),
			TotalConnections: len(d.Connections),
		},
	}
	for id := range visible {
		set.ShapeIDs = append(set.ShapeIDs, id)
	}
	sort.Strings(set.ShapeIDs)
	set.Stats.VisibleShapes = len(set.ShapeIDs)

	for _, c := range d.Connections {
		if connectionVisible(d, c, visible, padded) {
			set.ConnectionIDs = append(set.ConnectionIDs, c.ID)
		}
	}
	sort.Strings(set.ConnectionIDs)
	set.Stats.VisibleConnections = len(set.ConnectionIDs)

	return set, nil
}

// connectionVisible applies the connection survival rule: either endpoint
// visible, or the endpoint-to-endpoint bounding box cuts the padded view.
func connectionVisible(d *diagram.Diagram, c diagram.Connection, visible map[string]struct{}, padded geom.Rect) bool {
	if _, ok := visible[c.SourceID]; ok {
		return true
	}
	if _, ok := visible[c.TargetID]; ok {
		return true
	}

	src, okS := d.ShapeByID(c.SourceID)
	dst, okT := d.ShapeByID(c.TargetID)
	if !okS || !okT {
		return false // dangling endpoints render nothing
	}

	return src.Box().Union(dst.Box()).Intersects(padded)
}
