package router

import "github.com/archicomm/wirepath/geom"

// zSweep is the set of channel fractions the Z-candidate mid-line sweeps
// through. The center first: it is the likeliest to clear both shapes.
var zSweep = [...]float64{0.5, 0.25, 0.75, 0.1, 0.9}

// orthoCandidates generates the L- and Z-shaped polylines between the two
// ports. Candidates are raw (unscored); the caller ranks them.
//
// Shapes of the candidates, for a horizontal exit face:
//
//	L:  sp ─────┐         and the transposed bend order
//	            │ dp
//	Z:  sp ──┐
//	         │
//	         └───── dp    mid-line swept across the channel
func orthoCandidates(sp, dp geom.Point, sf face) [][]geom.Point {
	var out [][]geom.Point

	// Straight orthogonal line: ports already aligned.
	if sp.X == dp.X || sp.Y == dp.Y {
		out = append(out, []geom.Point{sp, dp})

		return out
	}

	// Both L bend orders: horizontal-then-vertical and vertical-then-
	// horizontal. The exit face decides which is tried first so the route
	// leaves the shape perpendicular to it.
	hvCorner := geom.Point{X: dp.X, Y: sp.Y}
	vhCorner := geom.Point{X: sp.X, Y: dp.Y}
	if horizontalFace(sf) {
		out = append(out,
			[]geom.Point{sp, hvCorner, dp},
			[]geom.Point{sp, vhCorner, dp},
		)
	} else {
		out = append(out,
			[]geom.Point{sp, vhCorner, dp},
			[]geom.Point{sp, hvCorner, dp},
		)
	}

	// Z candidates: two bends through a swept mid-line.
	if horizontalFace(sf) {
		for _, t := range zSweep {
			mx := sp.X + (dp.X-sp.X)*t
			out = append(out, []geom.Point{
				sp,
				{X: mx, Y: sp.Y},
				{X: mx, Y: dp.Y},
				dp,
			})
		}
	} else {
		for _, t := range zSweep {
			my := sp.Y + (dp.Y-sp.Y)*t
			out = append(out, []geom.Point{
				sp,
				{X: sp.X, Y: my},
				{X: dp.X, Y: my},
				dp,
			})
		}
	}

	return out
}
