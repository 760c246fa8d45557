// Package wirepath keeps diagram connectors tidy: spatial indexing,
// collision-aware orthogonal routing, route caching, and viewport culling
// for system-design canvases — independent of any UI framework.
//
// 🚀 What is wirepath?
//
//	The geometry engine extracted from the ArchiComm canvas:
//		• Spatial index: an R-tree over shape bounding boxes with
//		  range queries and fast packed rebuilds on layout change
//		• Smart routing: direct, then L/Z orthogonal, then Manhattan
//		  grid search — scored by collision count and path cost,
//		  bounded by a per-route time budget
//		• Route cache: a bounded LRU keyed by quantized endpoint
//		  geometry and routing options
//		• Viewport culling: clip thousands of shapes and connections
//		  down to what the visible canvas needs
//
// ✨ The contract
//
//	Shape list + connection list + options in;
//	per-connection path + collision count out.
//
// Everything is organized under flat subpackages:
//
//	geom/       — points, rectangles, segments, polyline helpers
//	spatial/    — the R-tree index
//	router/     — the strategy cascade and RouteAll
//	routecache/ — the LRU route cache
//	viewport/   — culling and viewport quantization
//	diagram/    — the document model and codecs
//	render/     — SVG export
//	cmd/        — the wirepath CLI
//
// Quick ASCII example:
//
//	┌───────┐      ┌───────┐
//	│  api  │──┐   │  db   │
//	└───────┘  └──▶└───────┘
//
//	a routed connection bends around whatever stands between.
//
//	go get github.com/archicomm/wirepath
package wirepath
