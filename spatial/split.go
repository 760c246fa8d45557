package spatial

import "github.com/archicomm/wirepath/geom"

// Quadratic split per Guttman. Both leaf and inner variants share the same
// seed/assign logic over covering boxes, specialized by entry kind.

// splitLeaf redistributes an overflowing leaf into two leaves.
func (ix *Index) splitLeaf(n *node) (*node, *node) {
	boxes := make([]geom.Rect, len(n.items))
	for i, it := range n.items {
		boxes[i] = it.Box
	}
	g1, g2 := ix.assignGroups(boxes)

	a := &node{leaf: true}
	for _, i := range g1 {
		a.items = append(a.items, n.items[i])
		a.box = a.box.Union(n.items[i].Box)
	}
	b := &node{leaf: true}
	for _, i := range g2 {
		b.items = append(b.items, n.items[i])
		b.box = b.box.Union(n.items[i].Box)
	}

	return a, b
}

// splitInner redistributes an overflowing inner node into two inner nodes.
func (ix *Index) splitInner(n *node) (*node, *node) {
	boxes := make([]geom.Rect, len(n.children))
	for i, c := range n.children {
		boxes[i] = c.box
	}
	g1, g2 := ix.assignGroups(boxes)

	a := &node{}
	for _, i := range g1 {
		a.children = append(a.children, n.children[i])
		a.box = a.box.Union(n.children[i].box)
	}
	b := &node{}
	for _, i := range g2 {
		b.children = append(b.children, n.children[i])
		b.box = b.box.Union(n.children[i].box)
	}

	return a, b
}

// assignGroups partitions box indices into two groups:
//
//  1. Pick-seeds: the pair wasting the most area when paired
//     (area of union minus both areas).
//  2. Pick-next: repeatedly assign the box with the greatest preference
//     difference between the two groups, to the group it enlarges less.
//  3. Minimum fill: once a group must absorb all remaining boxes to reach
//     MinEntries, it does.
func (ix *Index) assignGroups(boxes []geom.Rect) ([]int, []int) {
	s1, s2 := pickSeeds(boxes)

	g1 := []int{s1}
	g2 := []int{s2}
	box1 := boxes[s1]
	box2 := boxes[s2]

	remaining := make([]int, 0, len(boxes)-2)
	for i := range boxes {
		if i != s1 && i != s2 {
			remaining = append(remaining, i)
		}
	}

	for len(remaining) > 0 {
		// Honor minimum fill before preference.
		if len(g1)+len(remaining) == ix.opts.MinEntries {
			for _, i := range remaining {
				g1 = append(g1, i)
				box1 = box1.Union(boxes[i])
			}

			break
		}
		if len(g2)+len(remaining) == ix.opts.MinEntries {
			for _, i := range remaining {
				g2 = append(g2, i)
				box2 = box2.Union(boxes[i])
			}

			break
		}

		// Pick-next: strongest preference first.
		bestIdx, bestDiff := 0, -1.0
		for pos, i := range remaining {
			d1 := box1.EnlargementTo(boxes[i])
			d2 := box2.EnlargementTo(boxes[i])
			diff := d1 - d2
			if diff < 0 {
				diff = -diff
			}
			if diff > bestDiff {
				bestDiff = diff
				bestIdx = pos
			}
		}

		i := remaining[bestIdx]
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)

		d1 := box1.EnlargementTo(boxes[i])
		d2 := box2.EnlargementTo(boxes[i])
		switch {
		case d1 < d2:
			g1 = append(g1, i)
			box1 = box1.Union(boxes[i])
		case d2 < d1:
			g2 = append(g2, i)
			box2 = box2.Union(boxes[i])
		case len(g1) <= len(g2): // tie: smaller group
			g1 = append(g1, i)
			box1 = box1.Union(boxes[i])
		default:
			g2 = append(g2, i)
			box2 = box2.Union(boxes[i])
		}
	}

	return g1, g2
}

// pickSeeds returns the index pair with maximal dead area when unioned.
func pickSeeds(boxes []geom.Rect) (int, int) {
	s1, s2 := 0, 1
	worst := -1.0
	for i := 0; i < len(boxes); i++ {
		for j := i + 1; j < len(boxes); j++ {
			dead := boxes[i].Union(boxes[j]).Area() - boxes[i].Area() - boxes[j].Area()
			if dead > worst {
				worst = dead
				s1, s2 = i, j
			}
		}
	}

	return s1, s2
}
