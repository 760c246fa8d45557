package diagram

import (
	"fmt"

	"github.com/google/uuid"
)

// Normalize prepares a freshly decoded diagram for routing:
//
//   - shapes and connections without an ID receive a UUIDv4;
//   - shapes with zero extent receive the default card size.
//
// Normalize mutates the receiver and is idempotent.
func (d *Diagram) Normalize() {
	for i := range d.Shapes {
		if d.Shapes[i].ID == "" {
			d.Shapes[i].ID = uuid.NewString()
		}
		if d.Shapes[i].W == 0 && d.Shapes[i].H == 0 {
			d.Shapes[i].W = DefaultShapeWidth
			d.Shapes[i].H = DefaultShapeHeight
		}
	}
	for i := range d.Connections {
		if d.Connections[i].ID == "" {
			d.Connections[i].ID = uuid.NewString()
		}
	}
}

// Validate checks the structural invariants routing relies on.
//
// Checks, in order:
//  1. Every shape has valid, finite bounds (ErrInvalidBounds).
//  2. Shape IDs are unique (ErrDuplicateID).
//  3. Connection IDs are unique (ErrDuplicateID).
//  4. Every connection endpoint resolves to a shape (ErrUnknownEndpoint).
//
// The first violation is returned, wrapped with the offending ID.
func (d *Diagram) Validate() error {
	shapeIDs := make(map[string]struct{}, len(d.Shapes))
	for _, s := range d.Shapes {
		if !s.Box().Valid() {
			return fmt.Errorf("%w: shape %q", ErrInvalidBounds, s.ID)
		}
		if _, dup := shapeIDs[s.ID]; dup {
			return fmt.Errorf("%w: shape %q", ErrDuplicateID, s.ID)
		}
		shapeIDs[s.ID] = struct{}{}
	}

	connIDs := make(map[string]struct{}, len(d.Connections))
	for _, c := range d.Connections {
		if _, dup := connIDs[c.ID]; dup {
			return fmt.Errorf("%w: connection %q", ErrDuplicateID, c.ID)
		}
		connIDs[c.ID] = struct{}{}

		if _, ok := shapeIDs[c.SourceID]; !ok {
			return fmt.Errorf("%w: connection %q source %q", ErrUnknownEndpoint, c.ID, c.SourceID)
		}
		if _, ok := shapeIDs[c.TargetID]; !ok {
			return fmt.Errorf("%w: connection %q target %q", ErrUnknownEndpoint, c.ID, c.TargetID)
		}
	}

	return nil
}
