// Package viewport culls a diagram down to what the visible canvas
// actually needs to render.
//
// What:
//
//   - View describes the visible window in world coordinates: pan offset,
//     screen extent, and zoom factor.
//   - Cull filters shapes and connections against the padded view
//     rectangle using the spatial index, returning sorted visible ID sets
//     plus before/after counts.
//   - Quantize snaps pan and zoom to a lattice so that consecutive
//     near-identical viewports produce identical cull results (and
//     identical cache keys downstream).
//
// Why:
//
//   - Large diagrams hold thousands of shapes; rendering them all while a
//     handful are on screen wastes the frame budget. Culling caps the
//     rendered set at what intersects the viewport plus a padding margin,
//     so panning reveals pre-rendered neighbors instead of pop-in.
//
// Rules:
//
//   - A shape survives when its box intersects the padded view rect.
//   - A connection survives when either endpoint shape survives, or when
//     the endpoint-to-endpoint bounding box cuts the padded view (a long
//     edge crossing the screen stays visible even with both ends off it).
//
// Complexity: O(log n + k) for the shape query, O(c) over connections.
//
// Errors:
//
//   - ErrBadZoom:    zoom is zero, negative, or non-finite.
//   - ErrBadPadding: WithPadding was given a negative ratio.
package viewport
