package diagram

import (
	"errors"

	"github.com/archicomm/wirepath/geom"
)

// Sentinel errors for diagram validation and file handling.
var (
	// ErrDuplicateID indicates two shapes or two connections share an ID.
	ErrDuplicateID = errors.New("diagram: duplicate ID")
	// ErrUnknownEndpoint indicates a connection references a missing shape.
	ErrUnknownEndpoint = errors.New("diagram: connection endpoint not found")
	// ErrInvalidBounds indicates a shape with non-finite coordinates or
	// negative extent.
	ErrInvalidBounds = errors.New("diagram: shape bounds are invalid")
	// ErrUnknownFormat indicates a file extension Load/Save cannot map to
	// a codec.
	ErrUnknownFormat = errors.New("diagram: unknown file format")
)

// Default extent applied by Normalize to shapes that arrive without one.
// 180×96 is the ArchiComm component card size.
const (
	DefaultShapeWidth  = 180.0
	DefaultShapeHeight = 96.0
)

// Shape is a positioned box on the canvas: a component card, a note,
// a group frame. Kind is a free-form type tag ("service", "database", …)
// that the renderer maps to a fill color.
type Shape struct {
	ID         string            `json:"id" yaml:"id"`
	Kind       string            `json:"kind,omitempty" yaml:"kind,omitempty"`
	Label      string            `json:"label,omitempty" yaml:"label,omitempty"`
	X          float64           `json:"x" yaml:"x"`
	Y          float64           `json:"y" yaml:"y"`
	W          float64           `json:"w" yaml:"w"`
	H          float64           `json:"h" yaml:"h"`
	Properties map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Box returns the shape's bounding box.
func (s Shape) Box() geom.Rect {
	return geom.Rect{X: s.X, Y: s.Y, W: s.W, H: s.H}
}

// Connection links two shapes by ID.
type Connection struct {
	ID         string            `json:"id" yaml:"id"`
	SourceID   string            `json:"source_id" yaml:"source_id"`
	TargetID   string            `json:"target_id" yaml:"target_id"`
	Kind       string            `json:"kind,omitempty" yaml:"kind,omitempty"`
	Properties map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Diagram is a complete canvas document.
type Diagram struct {
	Name        string       `json:"name,omitempty" yaml:"name,omitempty"`
	Shapes      []Shape      `json:"shapes" yaml:"shapes"`
	Connections []Connection `json:"connections,omitempty" yaml:"connections,omitempty"`
}

// ShapeByID returns the shape with the given ID, or false when absent.
func (d *Diagram) ShapeByID(id string) (Shape, bool) {
	for _, s := range d.Shapes {
		if s.ID == id {
			return s, true
		}
	}

	return Shape{}, false
}

// Bounds returns the union of all shape boxes. An empty diagram yields
// the zero Rect.
func (d *Diagram) Bounds() geom.Rect {
	var u geom.Rect
	for _, s := range d.Shapes {
		u = u.Union(s.Box())
	}

	return u
}
