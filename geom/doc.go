// Package geom provides the 2-D primitives shared by the wirepath
// spatial index, router, and viewport culler.
//
// What:
//
//   - Point: a position on the canvas plane.
//   - Rect: an axis-aligned rectangle (top-left corner + extent), the
//     bounding-box currency of the whole library.
//   - Segment: a directed line segment with rectangle-intersection tests
//     (Liang–Barsky clipping).
//   - Polyline helpers: PathLength, PathBounds, PathIntersections.
//
// Why:
//
//   - Every wirepath subsystem speaks in bounding boxes: the R-tree stores
//     them, the router dodges them, the culler clips against them.
//     Keeping the geometry in one dependency-free package lets each
//     subsystem stay focused on its own algorithm.
//
// Conventions:
//
//   - Y grows downward (screen coordinates), matching diagram canvases.
//   - All operations are value-based and never mutate their receivers.
//   - A Rect with non-finite coordinates or negative extent is invalid;
//     callers gate on Valid before indexing or routing.
//
// Complexity: every operation in this package is O(1) except the polyline
// helpers, which are linear in the number of path points.
package geom
