package spatial

import (
	"fmt"
	"math"
	"sort"
)

// Bulk builds a packed index from a complete item list using
// Sort-Tile-Recursive: items are sorted by center X, cut into vertical
// slabs, each slab sorted by center Y and packed into full leaves. The
// same tiling repeats one level up until a single root remains.
//
// This is the rebuild path for layout changes: packing n items costs
// O(n log n) and produces near-minimal overlap, so subsequent Search
// calls stay cheap even for dense canvases.
//
// Validation matches Insert: ErrEmptyID, ErrInvalidBox, and ErrDuplicateID
// are reported with the offending ID. An empty slice yields an empty index.
func Bulk(items []Item, opts ...Option) (*Index, error) {
	ix := New(opts...)

	for _, it := range items {
		if it.ID == "" {
			return nil, ErrEmptyID
		}
		if !it.Box.Valid() {
			return nil, fmt.Errorf("%w: id %q", ErrInvalidBox, it.ID)
		}
		if _, dup := ix.ids[it.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, it.ID)
		}
		ix.ids[it.ID] = struct{}{}
	}

	if len(items) == 0 {
		return ix, nil
	}

	// Pack leaves from a private copy; callers keep their slice.
	sorted := make([]Item, len(items))
	copy(sorted, items)

	leaves := packLeaves(sorted, ix.opts.MaxEntries)
	ix.root = packUpward(leaves, ix.opts.MaxEntries)

	return ix, nil
}

// packLeaves tiles the item list into full leaves.
func packLeaves(items []Item, max int) []*node {
	sort.Slice(items, func(i, j int) bool {
		return items[i].Box.CenterX() < items[j].Box.CenterX()
	})

	slabSize := strSlabSize(len(items), max)
	var leaves []*node
	for start := 0; start < len(items); start += slabSize {
		end := start + slabSize
		if end > len(items) {
			end = len(items)
		}
		slab := items[start:end]
		sort.Slice(slab, func(i, j int) bool {
			return slab[i].Box.CenterY() < slab[j].Box.CenterY()
		})

		for ls := 0; ls < len(slab); ls += max {
			le := ls + max
			if le > len(slab) {
				le = len(slab)
			}
			leaf := &node{leaf: true}
			for _, it := range slab[ls:le] {
				leaf.items = append(leaf.items, it)
				leaf.box = leaf.box.Union(it.Box)
			}
			leaves = append(leaves, leaf)
		}
	}

	return leaves
}

// packUpward tiles nodes into parents until one root remains.
func packUpward(nodes []*node, max int) *node {
	for len(nodes) > 1 {
		sort.Slice(nodes, func(i, j int) bool {
			return nodes[i].box.CenterX() < nodes[j].box.CenterX()
		})

		slabSize := strSlabSize(len(nodes), max)
		var parents []*node
		for start := 0; start < len(nodes); start += slabSize {
			end := start + slabSize
			if end > len(nodes) {
				end = len(nodes)
			}
			slab := nodes[start:end]
			sort.Slice(slab, func(i, j int) bool {
				return slab[i].box.CenterY() < slab[j].box.CenterY()
			})

			for ls := 0; ls < len(slab); ls += max {
				le := ls + max
				if le > len(slab) {
					le = len(slab)
				}
				parent := &node{}
				for _, c := range slab[ls:le] {
					parent.children = append(parent.children, c)
					parent.box = parent.box.Union(c.box)
				}
				parents = append(parents, parent)
			}
		}
		nodes = parents
	}

	return nodes[0]
}

// strSlabSize returns how many entries each vertical slab receives:
// with P = ⌈n/max⌉ pages arranged in an S×S tile grid, S = ⌈√P⌉ and a
// slab carries S·max entries.
func strSlabSize(n, max int) int {
	pages := (n + max - 1) / max
	s := int(math.Ceil(math.Sqrt(float64(pages))))
	if s < 1 {
		s = 1
	}

	return s * max
}
