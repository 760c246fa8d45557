package router

import "github.com/archicomm/wirepath/geom"

// face is a side of a shape's bounding box.
type face int

const (
	faceRight face = iota
	faceLeft
	faceTop
	faceBottom
)

// chooseFaces picks the exit face on src and the entry face on dst from
// the dominant axis of the center-to-center delta: horizontally separated
// shapes connect right→left, vertically separated ones bottom→top.
// Ties favor the horizontal axis, matching how wide component cards read.
func chooseFaces(src, dst geom.Rect) (face, face) {
	dx := dst.CenterX() - src.CenterX()
	dy := dst.CenterY() - src.CenterY()

	if abs(dx) >= abs(dy) {
		if dx >= 0 {
			return faceRight, faceLeft
		}

		return faceLeft, faceRight
	}
	if dy >= 0 {
		return faceBottom, faceTop
	}

	return faceTop, faceBottom
}

// portPoint returns the midpoint of the given face.
func portPoint(r geom.Rect, f face) geom.Point {
	switch f {
	case faceRight:
		return geom.Point{X: r.Right(), Y: r.CenterY()}
	case faceLeft:
		return geom.Point{X: r.Left(), Y: r.CenterY()}
	case faceTop:
		return geom.Point{X: r.CenterX(), Y: r.Top()}
	default: // faceBottom
		return geom.Point{X: r.CenterX(), Y: r.Bottom()}
	}
}

// horizontalFace reports whether f is a left/right face, i.e. whether a
// route leaves it traveling horizontally.
func horizontalFace(f face) bool {
	return f == faceRight || f == faceLeft
}

// selfLoopPath builds the stub used when a connection starts and ends on
// the same shape: exit the right face above center, swing out by the
// clearance, and re-enter below center.
func selfLoopPath(r geom.Rect, clearance float64) []geom.Point {
	out := r.Right() + clearance
	yTop := r.CenterY() - r.H/4
	yBot := r.CenterY() + r.H/4

	return []geom.Point{
		{X: r.Right(), Y: yTop},
		{X: out, Y: yTop},
		{X: out, Y: yBot},
		{X: r.Right(), Y: yBot},
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
