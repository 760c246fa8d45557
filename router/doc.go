// Package router computes collision-aware connector paths between diagram
// shapes: the "smart edge" engine behind a tidy canvas.
//
// What:
//
//   - Find answers a single src→dst problem against an obstacle index,
//     returning the polyline, the strategy that produced it, the number of
//     obstacle shapes the line still crosses, and the path cost.
//   - RouteAll routes every connection of a diagram in one call, building
//     the spatial index once and consulting an optional route cache.
//
// How — three strategies, cheapest first, each scored by
// (collisions, then length + BendPenalty·bends); the first strategy to
// produce a collision-free candidate wins:
//
//  1. Direct: a straight line between facing ports. Free to compute and
//     correct for the common case of nothing in between.
//  2. Orthogonal: L- and Z-shaped candidates through the channel between
//     the shapes — one or two bends, still O(1) candidates.
//  3. Manhattan: a sparse orthogonal grid built from obstacle edges padded
//     by the clearance, searched with a modified Dijkstra whose states
//     carry entry orientation so cost can rank (length, bends)
//     lexicographically. Finds a collision-free route whenever one exists
//     on the grid.
//
// Every Find call runs under a time budget (default 16ms — one frame).
// The budget is checked between strategies and inside the grid search; on
// exhaustion the best candidate found so far is returned with
// Truncated=true. A direct fallback always exists, so Find never returns
// an empty path for valid input.
//
// Complexity:
//
//   - Direct/Orthogonal: O(k log n) for k candidates against an index of
//     n obstacles.
//   - Manhattan: O(g log g) over g grid nodes, g capped by WithGridLimit.
//
// Errors:
//
//   - ErrInvalidEndpoint: src or dst box is invalid or empty.
//   - ErrNilIndex:        no obstacle index was supplied.
package router
