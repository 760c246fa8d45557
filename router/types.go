package router

import (
	"encoding/binary"
	"errors"
	"hash/fnv"
	"math"
	"time"

	"github.com/archicomm/wirepath/geom"
	"github.com/archicomm/wirepath/routecache"
)

// Sentinel errors returned by Find and RouteAll.
var (
	// ErrInvalidEndpoint indicates a source or target box that is empty,
	// non-finite, or otherwise unusable as a routing endpoint.
	ErrInvalidEndpoint = errors.New("router: endpoint box is invalid")
	// ErrNilIndex indicates Find was called without an obstacle index.
	ErrNilIndex = errors.New("router: obstacle index is nil")
	// ErrBadClearance indicates WithClearance received a negative value.
	ErrBadClearance = errors.New("router: clearance must be non-negative")
	// ErrBadBudget indicates WithBudget received a non-positive duration.
	ErrBadBudget = errors.New("router: budget must be positive")
)

// Strategy identifies which route generator produced a path.
type Strategy int

const (
	// StrategyDirect is a straight line between the two ports.
	StrategyDirect Strategy = iota
	// StrategyOrthogonal is an L- or Z-shaped candidate with 1–2 bends.
	StrategyOrthogonal
	// StrategyManhattan is a grid-search route over obstacle corridors.
	StrategyManhattan
)

// String returns the lowercase strategy name used in CLI output and logs.
func (s Strategy) String() string {
	switch s {
	case StrategyDirect:
		return "direct"
	case StrategyOrthogonal:
		return "orthogonal"
	case StrategyManhattan:
		return "manhattan"
	default:
		return "unknown"
	}
}

// Route is the result of routing one connection.
type Route struct {
	// Points is the connector polyline, source port first.
	Points []geom.Point
	// Strategy names the generator that produced Points.
	Strategy Strategy
	// Collisions is the number of obstacle shapes the polyline still
	// crosses (endpoint shapes excluded).
	Collisions int
	// Length is the total polyline length.
	Length float64
	// Bends is the number of direction changes along the polyline.
	Bends int
	// Truncated reports that the time budget (or context) expired before
	// every strategy could run; Points is the best candidate found.
	Truncated bool
}

// cost is the scoring tiebreaker after collision count.
func (r Route) cost(bendPenalty float64) float64 {
	return r.Length + bendPenalty*float64(r.Bends)
}

// better reports whether r should replace s under
// (collisions, cost) ordering.
func (r Route) better(s Route, bendPenalty float64) bool {
	if r.Collisions != s.Collisions {
		return r.Collisions < s.Collisions
	}

	return r.cost(bendPenalty) < s.cost(bendPenalty)
}

// Default option values. The budget matches one 60 Hz frame, the
// clearance matches the canvas connector spacing.
const (
	DefaultClearance      = 12.0
	DefaultBendPenalty    = 40.0
	DefaultBudget         = 16 * time.Millisecond
	DefaultGridLimit      = 4096
	DefaultCollisionLimit = 32
)

// Options configures routing behavior.
//
// Clearance      – padding around obstacles the route keeps clear of.
// BendPenalty    – cost added per bend when ranking equal-collision routes.
// Budget         – wall-clock budget per Find call.
// GridLimit      – maximum Manhattan grid nodes; larger grids skip the
// Manhattan strategy rather than blow the budget.
// CollisionLimit – stop counting a candidate's collisions past this many.
// Exclude        – obstacle IDs ignored during collision checks (a
// connection's own endpoints, set automatically by RouteAll).
// Cache          – optional route cache consulted by RouteAll.
type Options struct {
	Clearance      float64
	BendPenalty    float64
	Budget         time.Duration
	GridLimit      int
	CollisionLimit int
	Exclude        []string
	Cache          *routecache.Cache[Route]
}

// Option is a functional option for configuring routing.
type Option func(*Options)

// WithClearance sets the obstacle padding in canvas pixels.
// Negative values panic with ErrBadClearance.
func WithClearance(px float64) Option {
	if px < 0 || math.IsNaN(px) {
		panic(ErrBadClearance.Error())
	}
	return func(o *Options) {
		o.Clearance = px
	}
}

// WithBendPenalty sets the per-bend cost used to rank candidates with
// equal collision counts.
func WithBendPenalty(w float64) Option {
	return func(o *Options) {
		o.BendPenalty = w
	}
}

// WithBudget sets the wall-clock budget for a single Find call.
// Non-positive durations panic with ErrBadBudget.
func WithBudget(d time.Duration) Option {
	if d <= 0 {
		panic(ErrBadBudget.Error())
	}
	return func(o *Options) {
		o.Budget = d
	}
}

// WithGridLimit caps the Manhattan grid size in nodes. Problems whose
// grid would exceed the cap skip the Manhattan strategy.
func WithGridLimit(n int) Option {
	return func(o *Options) {
		o.GridLimit = n
	}
}

// WithCollisionLimit stops counting a candidate's collisions past n.
// Candidates that bad lose to anything better anyway.
func WithCollisionLimit(n int) Option {
	return func(o *Options) {
		o.CollisionLimit = n
	}
}

// WithExclusions names obstacle IDs to ignore when counting collisions,
// typically the two endpoint shapes of the connection being routed.
func WithExclusions(ids ...string) Option {
	return func(o *Options) {
		o.Exclude = append(o.Exclude, ids...)
	}
}

// WithCache attaches a route cache. RouteAll consults it before routing
// each connection and stores fresh results.
func WithCache(c *routecache.Cache[Route]) Option {
	return func(o *Options) {
		o.Cache = c
	}
}

// DefaultOptions returns the Options Find uses when no overrides are
// supplied.
func DefaultOptions() Options {
	return Options{
		Clearance:      DefaultClearance,
		BendPenalty:    DefaultBendPenalty,
		Budget:         DefaultBudget,
		GridLimit:      DefaultGridLimit,
		CollisionLimit: DefaultCollisionLimit,
	}
}

// Fingerprint hashes the options that change a route's geometry, for use
// in cache signatures. The budget is excluded on purpose: a tighter frame
// budget must not fragment the cache, it only affects how far the search
// gets. Exclusions are excluded as well — RouteAll derives them from the
// endpoint boxes already present in the signature.
func (o Options) Fingerprint() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	for _, f := range [...]float64{o.Clearance, o.BendPenalty} {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = h.Write(buf[:])
	}
	for _, n := range [...]int{o.GridLimit, o.CollisionLimit} {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(n)))
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}
