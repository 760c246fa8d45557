package spatial

// Guttman R-tree insertion and search. The tree keeps two node kinds
// behind one struct: leaves hold items, inner nodes hold children. Every
// node carries the tight covering box of its contents; Search prunes any
// subtree whose box misses the query.

import (
	"fmt"
	"sort"

	"github.com/archicomm/wirepath/geom"
)

// Index is an R-tree over identified bounding boxes.
// It is not safe for concurrent mutation; build once per layout and share
// read-only (Search and Covering do not mutate).
type Index struct {
	opts Options
	root *node
	ids  map[string]struct{}
}

// node is a single R-tree node. Exactly one of items/children is used,
// selected by leaf.
type node struct {
	leaf     bool
	box      geom.Rect
	items    []Item
	children []*node
}

// New returns an empty Index configured by the supplied options.
func New(opts ...Option) *Index {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Index{
		opts: cfg,
		ids:  make(map[string]struct{}),
	}
}

// Len returns the number of indexed items.
func (ix *Index) Len() int { return len(ix.ids) }

// Bounds returns the covering box of every indexed item.
// An empty index yields the zero Rect.
func (ix *Index) Bounds() geom.Rect {
	if ix.root == nil {
		return geom.Rect{}
	}

	return ix.root.box
}

// Insert adds one identified box to the index.
//
// Validation order: ID presence (ErrEmptyID), box validity (ErrInvalidBox),
// uniqueness (ErrDuplicateID, wrapped with the offending ID).
func (ix *Index) Insert(id string, box geom.Rect) error {
	if id == "" {
		return ErrEmptyID
	}
	if !box.Valid() {
		return fmt.Errorf("%w: id %q", ErrInvalidBox, id)
	}
	if _, dup := ix.ids[id]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}

	ix.ids[id] = struct{}{}
	it := Item{ID: id, Box: box}

	if ix.root == nil {
		ix.root = &node{leaf: true, box: box, items: []Item{it}}

		return nil
	}

	n1, n2 := ix.insert(ix.root, it)
	if n2 != nil {
		// Root overflow: grow the tree by one level.
		ix.root = &node{
			leaf:     false,
			box:      n1.box.Union(n2.box),
			children: []*node{n1, n2},
		}
	}

	return nil
}

// insert descends to a leaf, places the item, and propagates splits upward.
// It returns the (possibly re-split) node and a second node when n overflowed.
func (ix *Index) insert(n *node, it Item) (*node, *node) {
	if n.leaf {
		n.items = append(n.items, it)
		n.box = n.box.Union(it.Box)
		if len(n.items) > ix.opts.MaxEntries {
			return ix.splitLeaf(n)
		}

		return n, nil
	}

	// Choose-subtree: least area enlargement, ties broken by smaller area.
	best := 0
	bestEnl := n.children[0].box.EnlargementTo(it.Box)
	for i := 1; i < len(n.children); i++ {
		enl := n.children[i].box.EnlargementTo(it.Box)
		if enl < bestEnl ||
			(enl == bestEnl && n.children[i].box.Area() < n.children[best].box.Area()) {
			best = i
			bestEnl = enl
		}
	}

	c1, c2 := ix.insert(n.children[best], it)
	n.children[best] = c1
	if c2 != nil {
		n.children = append(n.children, c2)
	}
	n.box = n.box.Union(it.Box)

	if len(n.children) > ix.opts.MaxEntries {
		return ix.splitInner(n)
	}

	return n, nil
}

// Search returns every item whose box intersects query, sorted by ID so
// callers see a deterministic order regardless of tree shape.
func (ix *Index) Search(query geom.Rect) []Item {
	if ix.root == nil || query.Empty() {
		return nil
	}

	var out []Item
	searchNode(ix.root, query, &out)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

func searchNode(n *node, query geom.Rect, out *[]Item) {
	if !n.box.Intersects(query) {
		return
	}
	if n.leaf {
		for _, it := range n.items {
			if it.Box.Intersects(query) {
				*out = append(*out, it)
			}
		}

		return
	}
	for _, c := range n.children {
		searchNode(c, query, out)
	}
}

// Covering returns every item whose box contains p, sorted by ID.
// Unlike Search it matches degenerate queries: a point on a box boundary
// still counts as covered.
func (ix *Index) Covering(p geom.Point) []Item {
	if ix.root == nil {
		return nil
	}

	var out []Item
	coveringNode(ix.root, p, &out)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

func coveringNode(n *node, p geom.Point, out *[]Item) {
	if !n.box.ContainsPoint(p) {
		return
	}
	if n.leaf {
		for _, it := range n.items {
			if it.Box.ContainsPoint(p) {
				*out = append(*out, it)
			}
		}

		return
	}
	for _, c := range n.children {
		coveringNode(c, p, out)
	}
}
