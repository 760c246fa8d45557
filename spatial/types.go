package spatial

import (
	"errors"

	"github.com/archicomm/wirepath/geom"
)

// Sentinel errors for index construction and mutation.
var (
	// ErrEmptyID indicates an item without an identifier.
	ErrEmptyID = errors.New("spatial: item ID must be non-empty")
	// ErrInvalidBox indicates a bounding box with non-finite coordinates
	// or negative extent.
	ErrInvalidBox = errors.New("spatial: bounding box is invalid")
	// ErrDuplicateID indicates an identifier already present in the index.
	ErrDuplicateID = errors.New("spatial: duplicate item ID")
	// ErrBadFanout indicates a WithMaxEntries value below the minimum of 4.
	ErrBadFanout = errors.New("spatial: MaxEntries must be at least 4")
)

// DefaultMaxEntries is the default node capacity. Nine entries keeps inner
// nodes within a cache line or two while staying shallow for canvas-sized
// inputs (tens to low thousands of shapes).
const DefaultMaxEntries = 9

// minAllowedEntries is the smallest node capacity the split logic supports.
const minAllowedEntries = 4

// Item is a single indexed bounding box.
type Item struct {
	// ID identifies the shape the box belongs to.
	ID string
	// Box is the shape's bounding box in canvas coordinates.
	Box geom.Rect
}

// Options configures an Index.
//
// MaxEntries – node capacity before a split (default DefaultMaxEntries).
// MinEntries – minimum node fill after a split, derived as ⌈0.4·MaxEntries⌉.
type Options struct {
	MaxEntries int
	MinEntries int
}

// Option is a functional option for configuring an Index.
type Option func(*Options)

// WithMaxEntries sets the node capacity. Values below 4 panic with
// ErrBadFanout: a quadratic split cannot honor minimum fill under that.
func WithMaxEntries(m int) Option {
	if m < minAllowedEntries {
		panic(ErrBadFanout.Error())
	}
	return func(o *Options) {
		o.MaxEntries = m
		o.MinEntries = minFill(m)
	}
}

// DefaultOptions returns the Options an Index uses when no overrides
// are supplied.
func DefaultOptions() Options {
	return Options{
		MaxEntries: DefaultMaxEntries,
		MinEntries: minFill(DefaultMaxEntries),
	}
}

// minFill derives the minimum node occupancy from the capacity.
func minFill(max int) int {
	m := (max*2 + 4) / 5 // ⌈0.4·max⌉ in integer arithmetic
	if m < 2 {
		m = 2
	}

	return m
}
