// Package render emits a routed diagram as a standalone SVG document:
// shapes as rounded rectangles with centered labels, connector routes as
// polylines with an arrowhead marker.
//
// The output is deterministic — shapes and routes are emitted in input
// order, never from map iteration — so renders diff cleanly and tests
// can assert on substrings.
//
// Options:
//
//   - WithPadding(px): canvas margin around the diagram bounds (default 24).
//   - WithPalette(map): fill color per shape kind; unknown kinds fall back
//     to the default card color.
package render
