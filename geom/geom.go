package geom

import "math"

// Point is a position on the canvas plane. Y grows downward.
type Point struct {
	X, Y float64
}

// Add returns the point translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Rect is an axis-aligned rectangle described by its top-left corner
// and extent. The zero Rect is empty and valid.
type Rect struct {
	X, Y, W, H float64
}

// RectFromPoints returns the tight bounding box of two corner points.
func RectFromPoints(a, b Point) Rect {
	x0, x1 := math.Min(a.X, b.X), math.Max(a.X, b.X)
	y0, y1 := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)

	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Left returns the minimum X edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the maximum X edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the minimum Y edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the maximum Y edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal midpoint.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical midpoint.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point { return Point{X: r.CenterX(), Y: r.CenterY()} }

// Area returns W×H. Empty rectangles have zero area.
func (r Rect) Area() float64 { return r.W * r.H }

// Empty reports whether the rectangle encloses no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Valid reports whether all coordinates are finite and the extent is
// non-negative. Indexing and routing reject invalid rectangles up front.
func (r Rect) Valid() bool {
	for _, v := range [4]float64{r.X, r.Y, r.W, r.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return r.W >= 0 && r.H >= 0
}

// Expand grows the rectangle by pad on every side. Negative pad shrinks;
// the result clamps at a degenerate zero-extent rectangle around the center.
func (r Rect) Expand(pad float64) Rect {
	w := r.W + 2*pad
	h := r.H + 2*pad
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Rect{
		X: r.CenterX() - w/2,
		Y: r.CenterY() - h/2,
		W: w,
		H: h,
	}
}

// Union returns the smallest rectangle covering both r and s.
// Union with an empty rectangle returns the other operand unchanged.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	x0 := math.Min(r.Left(), s.Left())
	y0 := math.Min(r.Top(), s.Top())
	x1 := math.Max(r.Right(), s.Right())
	y1 := math.Max(r.Bottom(), s.Bottom())

	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Intersects reports whether r and s share any point, edges included.
// Empty rectangles never intersect anything.
func (r Rect) Intersects(s Rect) bool {
	if r.Empty() || s.Empty() {
		return false
	}

	return r.Left() <= s.Right() && s.Left() <= r.Right() &&
		r.Top() <= s.Bottom() && s.Top() <= r.Bottom()
}

// ContainsPoint reports whether p lies inside r, boundary included.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Contains reports whether s lies entirely inside r, boundary included.
func (r Rect) Contains(s Rect) bool {
	if r.Empty() {
		return false
	}

	return s.Left() >= r.Left() && s.Right() <= r.Right() &&
		s.Top() >= r.Top() && s.Bottom() <= r.Bottom()
}

// EnlargementTo returns how much r's area must grow to also cover s.
// The R-tree choose-subtree step minimizes this quantity.
func (r Rect) EnlargementTo(s Rect) float64 {
	return r.Union(s).Area() - r.Area()
}
