package router

import (
	"context"
	"fmt"
	"time"

	"github.com/archicomm/wirepath/geom"
	"github.com/archicomm/wirepath/spatial"
)

// Find computes a connector path from src to dst around the indexed
// obstacles.
//
// Preconditions, in validation order:
//  1. src and dst must be valid, non-empty boxes (ErrInvalidEndpoint).
//  2. obstacles must be non-nil (ErrNilIndex); an empty index is fine.
//
// The connection's own endpoint shapes should be excluded from collision
// checks via WithExclusions when they are present in the index; RouteAll
// does this automatically.
//
// Find always returns a usable path on valid input: when the budget or
// ctx expires before a collision-free candidate is found, the best
// candidate so far comes back with Truncated set.
func Find(ctx context.Context, src, dst geom.Rect, obstacles *spatial.Index, opts ...Option) (Route, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !src.Valid() || src.Empty() {
		return Route{}, fmt.Errorf("%w: source %+v", ErrInvalidEndpoint, src)
	}
	if !dst.Valid() || dst.Empty() {
		return Route{}, fmt.Errorf("%w: target %+v", ErrInvalidEndpoint, dst)
	}
	if obstacles == nil {
		return Route{}, ErrNilIndex
	}

	deadline := time.Now().Add(cfg.Budget)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	exclude := make(map[string]struct{}, len(cfg.Exclude))
	for _, id := range cfg.Exclude {
		exclude[id] = struct{}{}
	}

	// Self-connection: a loop stub off the right face.
	if src == dst {
		rt := makeRoute(selfLoopPath(src, cfg.Clearance), StrategyOrthogonal, obstacles, exclude, &cfg)

		return rt, nil
	}

	sf, df := chooseFaces(src, dst)
	sp := portPoint(src, sf)
	dp := portPoint(dst, df)

	// Strategy 1: direct. Always computed — it doubles as the fallback
	// of last resort.
	best := makeRoute([]geom.Point{sp, dp}, StrategyDirect, obstacles, exclude, &cfg)
	if best.Collisions == 0 {
		return best, nil
	}

	// Overlapping endpoints leave no channel for orthogonal candidates;
	// the direct stub is the honest answer.
	if src.Intersects(dst) {
		return best, nil
	}

	if expired(ctx, deadline) {
		best.Truncated = true

		return best, nil
	}

	// Strategy 2: L/Z orthogonal candidates through the channel.
	for _, cand := range orthoCandidates(sp, dp, sf) {
		rt := makeRoute(cand, StrategyOrthogonal, obstacles, exclude, &cfg)
		if rt.better(best, cfg.BendPenalty) {
			best = rt
		}
		if best.Collisions == 0 {
			return best, nil
		}
	}

	if expired(ctx, deadline) {
		best.Truncated = true

		return best, nil
	}

	// Strategy 3: Manhattan grid search.
	points, found, truncated := manhattanRoute(deadline, src, dst, sp, dp, sf, df, obstacles, exclude, &cfg)
	if found {
		rt := makeRoute(points, StrategyManhattan, obstacles, exclude, &cfg)
		if rt.better(best, cfg.BendPenalty) {
			best = rt
		}
	}
	best.Truncated = best.Truncated || truncated

	return best, nil
}

// expired reports whether the context is done or the deadline has passed.
func expired(ctx context.Context, deadline time.Time) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}

	return time.Now().After(deadline)
}
