package router

import (
	"container/heap"
	"math"
	"sort"
	"time"

	"github.com/archicomm/wirepath/geom"
	"github.com/archicomm/wirepath/spatial"
)

// The Manhattan strategy routes over a sparse orthogonal grid whose lines
// are the padded edges of nearby obstacles plus the two escape points in
// front of the ports. A modified Dijkstra with (length, bends)
// lexicographic cost picks the route; states carry the entry orientation
// so a direction change can be priced.

// blockEps shrinks blocker boxes so that grid lines lying exactly on the
// padded obstacle edge remain passable.
const blockEps = 1e-6

// budgetCheckMask controls how often the search loop reads the clock:
// every 128 heap pops.
const budgetCheckMask = 127

// gridOrient is the travel orientation of a grid edge.
type gridOrient int

const (
	orientH gridOrient = iota
	orientV
)

// manhattanRoute attempts a collision-free orthogonal route.
// It returns the polyline, whether a route was found, and whether the
// deadline cut the search short.
func manhattanRoute(deadline time.Time, src, dst geom.Rect, sp, dp geom.Point, sf, df face, idx *spatial.Index, exclude map[string]struct{}, cfg *Options) ([]geom.Point, bool, bool) {
	c := cfg.Clearance
	if c == 0 {
		c = 1 // a zero-clearance grid would sit exactly on obstacle edges
	}

	// Escape points one clearance in front of each port.
	spOut := escapePoint(sp, sf, c)
	dpOut := escapePoint(dp, df, c)

	// Routing region: the endpoint corridor padded enough to walk around
	// anything adjacent to it. Obstacles beyond the region cannot grow
	// the grid, so pathological layouts degrade to the orthogonal
	// fallback instead of an unbounded search.
	region := src.Union(dst).Expand(4*c + 64)

	// Blockers: padded boxes of every non-excluded obstacle in the
	// region, plus the endpoint shapes themselves so the route hugs
	// their outline instead of cutting through.
	blockers := make([]geom.Rect, 0, 16)
	for _, it := range idx.Search(region) {
		if _, skip := exclude[it.ID]; skip {
			continue
		}
		if it.Box.Empty() {
			continue
		}
		blockers = append(blockers, it.Box.Expand(c-blockEps))
	}
	blockers = append(blockers, src.Expand(c-blockEps), dst.Expand(c-blockEps))

	// Candidate grid lines.
	xs := []float64{spOut.X, dpOut.X, sp.X, dp.X}
	ys := []float64{spOut.Y, dpOut.Y, sp.Y, dp.Y}
	for _, b := range blockers {
		xs = append(xs, b.Left(), b.Right())
		ys = append(ys, b.Top(), b.Bottom())
	}
	xs = dedupeSorted(xs)
	ys = dedupeSorted(ys)

	w, h := len(xs), len(ys)
	if w*h > cfg.GridLimit {
		return nil, false, false
	}

	g := buildGrid(xs, ys, blockers)

	start, ok := g.nodeAt(spOut)
	if !ok {
		return nil, false, false
	}
	goal, ok := g.nodeAt(dpOut)
	if !ok {
		return nil, false, false
	}

	startOrient := orientV
	if horizontalFace(sf) {
		startOrient = orientH
	}

	nodes, truncated := g.dijkstra(start, goal, startOrient, cfg.BendPenalty, deadline)
	if nodes == nil {
		return nil, false, truncated
	}

	points := make([]geom.Point, 0, len(nodes)+2)
	points = append(points, sp)
	for _, n := range nodes {
		points = append(points, g.point(n))
	}
	points = append(points, dp)

	return points, true, truncated
}

// escapePoint pushes a port one clearance away from its face.
func escapePoint(p geom.Point, f face, c float64) geom.Point {
	switch f {
	case faceRight:
		return geom.Point{X: p.X + c, Y: p.Y}
	case faceLeft:
		return geom.Point{X: p.X - c, Y: p.Y}
	case faceTop:
		return geom.Point{X: p.X, Y: p.Y - c}
	default: // faceBottom
		return geom.Point{X: p.X, Y: p.Y + c}
	}
}

// dedupeSorted sorts the coordinate list and merges values closer than
// blockEps, which otherwise create near-zero grid cells.
func dedupeSorted(vs []float64) []float64 {
	sort.Float64s(vs)
	out := vs[:0]
	for _, v := range vs {
		if len(out) == 0 || v-out[len(out)-1] > blockEps {
			out = append(out, v)
		}
	}

	return out
}

// grid is the sparse routing lattice. Nodes are indexed row-major:
// id = j·len(xs) + i for the point (xs[i], ys[j]).
type grid struct {
	xs, ys   []float64
	passable []bool
	blockers []geom.Rect
}

func buildGrid(xs, ys []float64, blockers []geom.Rect) *grid {
	g := &grid{
		xs:       xs,
		ys:       ys,
		passable: make([]bool, len(xs)*len(ys)),
		blockers: blockers,
	}
	for j, y := range ys {
		for i, x := range xs {
			g.passable[j*len(xs)+i] = !pointBlocked(geom.Point{X: x, Y: y}, blockers)
		}
	}

	return g
}

// pointBlocked reports whether p lies strictly inside any blocker.
// Points exactly on a padded edge stay passable.
func pointBlocked(p geom.Point, blockers []geom.Rect) bool {
	for _, b := range blockers {
		if p.X > b.Left() && p.X < b.Right() && p.Y > b.Top() && p.Y < b.Bottom() {
			return true
		}
	}

	return false
}

// point returns the canvas position of a node.
func (g *grid) point(id int) geom.Point {
	w := len(g.xs)

	return geom.Point{X: g.xs[id%w], Y: g.ys[id/w]}
}

// nodeAt returns the node id of the grid point at p, which must coincide
// with a lattice intersection. False when p is off-lattice or blocked.
func (g *grid) nodeAt(p geom.Point) (int, bool) {
	i := searchCoord(g.xs, p.X)
	j := searchCoord(g.ys, p.Y)
	if i < 0 || j < 0 {
		return 0, false
	}
	id := j*len(g.xs) + i
	if !g.passable[id] {
		return 0, false
	}

	return id, true
}

// searchCoord finds v in the sorted coordinate list within blockEps.
func searchCoord(vs []float64, v float64) int {
	i := sort.SearchFloat64s(vs, v-blockEps)
	if i < len(vs) && math.Abs(vs[i]-v) <= blockEps {
		return i
	}

	return -1
}

// gridState is one Dijkstra state: a node entered with an orientation.
type gridState struct {
	node   int
	orient gridOrient
	length float64
	bends  int
}

// less ranks states lexicographically: shorter first, then fewer bends.
// An epsilon guards the float comparison against accumulation noise.
func (a gridState) less(b gridState) bool {
	const eps = 1e-9
	if math.Abs(a.length-b.length) > eps {
		return a.length < b.length
	}

	return a.bends < b.bends
}

// stateKey identifies a (node, entry orientation) pair.
type stateKey struct {
	node   int
	orient gridOrient
}

// dijkstra runs the modified Dijkstra from start to goal.
// Returns the node path including both endpoints, or nil when
// unreachable; the second result reports deadline truncation.
//
// The priority uses length + bendPenalty·bends so the heap order agrees
// with the final route scoring; the lexicographic less handles exact
// ties deterministically.
func (g *grid) dijkstra(start, goal int, startOrient gridOrient, bendPenalty float64, deadline time.Time) ([]int, bool) {
	best := make(map[stateKey]gridState)
	parent := make(map[stateKey]stateKey)
	visited := make(map[stateKey]bool)

	pq := &statePQ{penalty: bendPenalty}
	heap.Init(pq)

	s0 := gridState{node: start, orient: startOrient}
	best[stateKey{start, startOrient}] = s0
	heap.Push(pq, s0)

	var pops int
	for pq.Len() > 0 {
		pops++
		if pops&budgetCheckMask == 0 && time.Now().After(deadline) {
			return nil, true
		}

		cur := heap.Pop(pq).(gridState)
		curKey := stateKey{cur.node, cur.orient}
		if visited[curKey] {
			continue
		}
		visited[curKey] = true

		if cur.node == goal {
			return g.tracePath(parent, curKey, start), false
		}

		for _, nb := range g.neighbors(cur.node) {
			bends := cur.bends
			if nb.orient != cur.orient {
				bends++
			}
			next := gridState{
				node:   nb.node,
				orient: nb.orient,
				length: cur.length + nb.dist,
				bends:  bends,
			}
			key := stateKey{nb.node, nb.orient}
			if visited[key] {
				continue
			}
			if prev, seen := best[key]; seen && !next.less(prev) {
				continue
			}
			best[key] = next
			parent[key] = curKey
			heap.Push(pq, next)
		}
	}

	return nil, false
}

// neighbor is one passable step from a node.
type neighbor struct {
	node   int
	orient gridOrient
	dist   float64
}

// neighbors yields the up-to-four adjacent passable lattice nodes.
// Both endpoints must be passable, and so must the step's midpoint:
// a blocker whose padded edges are adjacent lattice lines would otherwise
// be tunneled through by a step whose endpoints sit exactly on its
// boundary. Blockers are convex and their edges are lattice lines, so a
// clear midpoint guarantees a clear interior.
func (g *grid) neighbors(id int) []neighbor {
	w := len(g.xs)
	i, j := id%w, id/w

	out := make([]neighbor, 0, 4)
	if i > 0 && g.passable[id-1] && g.stepClear(id-1, id) {
		out = append(out, neighbor{node: id - 1, orient: orientH, dist: g.xs[i] - g.xs[i-1]})
	}
	if i < w-1 && g.passable[id+1] && g.stepClear(id, id+1) {
		out = append(out, neighbor{node: id + 1, orient: orientH, dist: g.xs[i+1] - g.xs[i]})
	}
	if j > 0 && g.passable[id-w] && g.stepClear(id-w, id) {
		out = append(out, neighbor{node: id - w, orient: orientV, dist: g.ys[j] - g.ys[j-1]})
	}
	if j < len(g.ys)-1 && g.passable[id+w] && g.stepClear(id, id+w) {
		out = append(out, neighbor{node: id + w, orient: orientV, dist: g.ys[j+1] - g.ys[j]})
	}

	return out
}

// stepClear reports whether the midpoint between two adjacent nodes is
// outside every blocker.
func (g *grid) stepClear(a, b int) bool {
	pa, pb := g.point(a), g.point(b)
	mid := geom.Point{X: (pa.X + pb.X) / 2, Y: (pa.Y + pb.Y) / 2}

	return !pointBlocked(mid, g.blockers)
}

// tracePath walks the parent links back from the goal state.
func (g *grid) tracePath(parent map[stateKey]stateKey, end stateKey, start int) []int {
	var rev []int
	cur := end
	for {
		rev = append(rev, cur.node)
		if cur.node == start {
			break
		}
		prev, ok := parent[cur]
		if !ok {
			break
		}
		cur = prev
	}

	out := make([]int, len(rev))
	for i, n := range rev {
		out[len(rev)-1-i] = n
	}

	return out
}

// statePQ is the Dijkstra priority queue, ordered by priced cost.
type statePQ struct {
	items   []gridState
	penalty float64
}

func (pq *statePQ) Len() int { return len(pq.items) }

func (pq *statePQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	ca := a.length + pq.penalty*float64(a.bends)
	cb := b.length + pq.penalty*float64(b.bends)
	if ca != cb {
		return ca < cb
	}

	return a.less(b)
}

func (pq *statePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *statePQ) Push(x interface{}) { pq.items = append(pq.items, x.(gridState)) }

func (pq *statePQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	it := old[n-1]
	pq.items = old[:n-1]

	return it
}
