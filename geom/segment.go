package geom

import "math"

// Segment is a directed line segment from A to B.
type Segment struct {
	A, B Point
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.A.DistanceTo(s.B)
}

// Horizontal reports whether the segment is axis-aligned horizontal.
func (s Segment) Horizontal() bool { return s.A.Y == s.B.Y }

// Vertical reports whether the segment is axis-aligned vertical.
func (s Segment) Vertical() bool { return s.A.X == s.B.X }

// IntersectsRect reports whether any part of the segment lies inside r,
// boundary included. Implemented as Liang–Barsky clipping: the segment is
// parameterized as A + t·(B−A), t ∈ [0,1], and clipped against each of the
// four half-planes; a non-empty parameter interval means intersection.
//
// A degenerate (zero-length) segment intersects iff its point is inside r.
func (s Segment) IntersectsRect(r Rect) bool {
	if r.Empty() {
		return false
	}

	dx := s.B.X - s.A.X
	dy := s.B.Y - s.A.Y

	if dx == 0 && dy == 0 {
		return r.ContainsPoint(s.A)
	}

	t0, t1 := 0.0, 1.0

	// Each (p, q) pair clips the parameter interval against one edge:
	// p is the direction component toward the edge, q the signed distance.
	clips := [4][2]float64{
		{-dx, s.A.X - r.Left()},   // left
		{dx, r.Right() - s.A.X},   // right
		{-dy, s.A.Y - r.Top()},    // top
		{dy, r.Bottom() - s.A.Y},  // bottom
	}

	for _, c := range clips {
		p, q := c[0], c[1]
		if p == 0 {
			if q < 0 {
				return false // parallel and fully outside this edge
			}

			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
	}

	return t0 <= t1
}

// Bounds returns the tight bounding box of the segment.
func (s Segment) Bounds() Rect {
	return RectFromPoints(s.A, s.B)
}

// PathLength returns the total polyline length over consecutive points.
// Paths with fewer than two points have zero length.
func PathLength(points []Point) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += points[i-1].DistanceTo(points[i])
	}

	return total
}

// PathBounds returns the tight bounding box of all path points.
// An empty path yields the zero (empty) Rect.
func PathBounds(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// PathIntersections counts how many segments of the polyline cut r.
// Consecutive duplicate points contribute nothing.
func PathIntersections(points []Point, r Rect) int {
	var hits int
	for i := 1; i < len(points); i++ {
		seg := Segment{A: points[i-1], B: points[i]}
		if seg.A == seg.B {
			continue
		}
		if seg.IntersectsRect(r) {
			hits++
		}
	}

	return hits
}
