// Package diagram holds the document model the wirepath library operates
// on: a named set of shapes (boxes on the canvas) and the connections
// between them.
//
// What:
//
//   - Shape, Connection, Diagram — the wire-format types, with snake_case
//     JSON and YAML tags matching the ArchiComm export format.
//   - Codecs: DecodeJSON/EncodeJSON, DecodeYAML/EncodeYAML, and
//     Load/Save switching on the file extension.
//   - Normalize — assigns UUIDv4 identifiers to shapes and connections
//     that arrive without one and applies the default shape size.
//   - Validate — structural checks before indexing or routing: unique
//     IDs, resolvable connection endpoints, finite bounds.
//   - Export — the timestamped pretty-JSON envelope used for sharing a
//     diagram outside the editor.
//
// Why:
//
//   - The routing contract is "shape list + connection list in, path per
//     connection out"; this package is the in half of that contract and
//     keeps every consumer (index, router, culler, renderer, CLI) off
//     hand-rolled maps.
//
// Errors:
//
//   - ErrDuplicateID:    two shapes or two connections share an ID.
//   - ErrUnknownEndpoint: a connection references a missing shape.
//   - ErrInvalidBounds:  a shape has NaN/Inf coordinates or negative extent.
//   - ErrUnknownFormat:  Load/Save met a file extension it cannot map.
package diagram
