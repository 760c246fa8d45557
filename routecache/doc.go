// Package routecache provides the bounded LRU cache that lets the router
// skip recomputation while the canvas layout is unchanged.
//
// What:
//
//   - Signature: a comparable cache key derived from the two endpoint
//     boxes (quantized to a half-pixel lattice) and a fingerprint of the
//     routing options.
//   - Cache[V]: a fixed-capacity LRU keyed by Signature, with hit/miss/
//     eviction counters safe for concurrent use.
//
// Why:
//
//   - Dragging a shape re-routes only the connections it touches; every
//     other connection's endpoints are byte-identical and the canvas wants
//     the answer back in microseconds, not another path search.
//   - Quantizing endpoint geometry to 0.5 px absorbs the sub-pixel jitter
//     a zoomed canvas produces without changing what the user sees.
//
// Eviction is least-recently-used at capacity, delegated to
// hashicorp/golang-lru. Purge is the invalidation path for layout changes
// that move obstacles without moving a connection's own endpoints.
//
// Errors:
//
//   - ErrBadCapacity: New was given a capacity below 1.
package routecache
