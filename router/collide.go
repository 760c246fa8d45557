package router

import (
	"github.com/archicomm/wirepath/geom"
	"github.com/archicomm/wirepath/spatial"
)

// countCollisions returns how many distinct obstacle shapes the polyline
// crosses, capped at limit. Excluded IDs (the connection's own endpoints)
// and zero-area boxes never count.
//
// Only one index query happens per call: obstacles are fetched for the
// path's bounding box, then each candidate box is tested against the
// path segments until one hit is found.
func countCollisions(points []geom.Point, idx *spatial.Index, exclude map[string]struct{}, limit int) int {
	if len(points) < 2 || idx == nil || idx.Len() == 0 {
		return 0
	}

	candidates := idx.Search(geom.PathBounds(points).Expand(1))

	var hits int
	for _, cand := range candidates {
		if _, skip := exclude[cand.ID]; skip {
			continue
		}
		if cand.Box.Empty() {
			continue
		}
		for i := 1; i < len(points); i++ {
			seg := geom.Segment{A: points[i-1], B: points[i]}
			if seg.A == seg.B {
				continue
			}
			if seg.IntersectsRect(cand.Box) {
				hits++

				break
			}
		}
		if hits >= limit {
			return hits
		}
	}

	return hits
}

// makeRoute assembles a scored Route from a candidate polyline.
func makeRoute(points []geom.Point, strategy Strategy, idx *spatial.Index, exclude map[string]struct{}, cfg *Options) Route {
	points = simplify(points)

	return Route{
		Points:     points,
		Strategy:   strategy,
		Collisions: countCollisions(points, idx, exclude, cfg.CollisionLimit),
		Length:     geom.PathLength(points),
		Bends:      countBends(points),
	}
}

// simplify removes consecutive duplicates and collinear interior points
// from an axis-aligned or straight polyline.
func simplify(points []geom.Point) []geom.Point {
	if len(points) < 3 {
		return points
	}

	out := make([]geom.Point, 0, len(points))
	out = append(out, points[0])
	for i := 1; i < len(points); i++ {
		p := points[i]
		if p == out[len(out)-1] {
			continue
		}
		// Drop the middle point of a collinear run.
		if len(out) >= 2 {
			a, b := out[len(out)-2], out[len(out)-1]
			if collinear(a, b, p) {
				out[len(out)-1] = p

				continue
			}
		}
		out = append(out, p)
	}

	return out
}

// collinear reports whether b lies on the straight line through a and c.
func collinear(a, b, c geom.Point) bool {
	return (b.X-a.X)*(c.Y-a.Y) == (c.X-a.X)*(b.Y-a.Y)
}

// countBends counts direction changes along the polyline.
func countBends(points []geom.Point) int {
	var bends int
	for i := 2; i < len(points); i++ {
		if !collinear(points[i-2], points[i-1], points[i]) {
			bends++
		}
	}

	return bends
}
