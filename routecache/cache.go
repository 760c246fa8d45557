package routecache

import (
	"errors"
	"math"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/archicomm/wirepath/geom"
)

// ErrBadCapacity indicates a cache capacity below 1.
var ErrBadCapacity = errors.New("routecache: capacity must be positive")

// DefaultCapacity is a reasonable ceiling for interactive canvases:
// large diagrams run a few hundred connections, so 512 entries covers a
// full layout with headroom for drag-preview variants.
const DefaultCapacity = 512

// quantum is the signature lattice step in canvas pixels. Endpoint
// coordinates are snapped to multiples of this before keying, so
// sub-half-pixel jitter still hits the cache.
const quantum = 0.5

// Signature identifies one routing problem: both endpoint boxes on the
// quantized lattice plus a fingerprint of the routing options. The
// routing time budget is deliberately not part of the fingerprint — a
// caller tightening its frame budget must keep hitting existing entries.
type Signature struct {
	SrcX, SrcY, SrcW, SrcH int64
	DstX, DstY, DstW, DstH int64
	Opts                   uint64
}

// MakeSignature builds the cache key for a src→dst routing problem.
// optsFP is the options fingerprint supplied by the router.
func MakeSignature(src, dst geom.Rect, optsFP uint64) Signature {
	return Signature{
		SrcX: quantize(src.X), SrcY: quantize(src.Y),
		SrcW: quantize(src.W), SrcH: quantize(src.H),
		DstX: quantize(dst.X), DstY: quantize(dst.Y),
		DstW: quantize(dst.W), DstH: quantize(dst.H),
		Opts: optsFP,
	}
}

// quantize snaps a coordinate to the half-pixel lattice.
func quantize(v float64) int64 {
	return int64(math.Round(v / quantum))
}

// Stats reports cumulative cache traffic. Evictions counts both
// capacity evictions and entries dropped by Purge.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Cache is a bounded LRU of computed routes (or any per-signature value).
// All methods are safe for concurrent use.
type Cache[V any] struct {
	lru       *lru.Cache[Signature, V]
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// New returns a Cache holding at most capacity entries.
func New[V any](capacity int) (*Cache[V], error) {
	if capacity < 1 {
		return nil, ErrBadCapacity
	}

	c := &Cache[V]{}
	inner, err := lru.NewWithEvict[Signature, V](capacity, func(Signature, V) {
		c.evictions.Add(1)
	})
	if err != nil {
		return nil, err
	}
	c.lru = inner

	return c, nil
}

// Get returns the cached value for sig, marking it most recently used.
func (c *Cache[V]) Get(sig Signature) (V, bool) {
	v, ok := c.lru.Get(sig)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}

	return v, ok
}

// Add stores the value for sig, evicting the least recently used entry
// when the cache is full.
func (c *Cache[V]) Add(sig Signature, v V) {
	c.lru.Add(sig, v)
}

// Purge drops every entry. Call it when obstacles move: a route keyed
// only by its own endpoints may be stale even though its key is not.
func (c *Cache[V]) Purge() {
	c.lru.Purge()
}

// Len returns the current number of cached entries.
func (c *Cache[V]) Len() int {
	return c.lru.Len()
}

// Stats returns a snapshot of cumulative cache traffic.
func (c *Cache[V]) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
