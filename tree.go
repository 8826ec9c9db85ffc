// Copyright 2023 The strtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package strtree

// Config supplies the strategies a concrete index injects into the
// generic engine.
type Config[B Bounds[B], I comparable] struct {
	// Empty is the bounds value of a tree holding no items. It is what
	// Bounds returns after building an itemless tree.
	Empty B
	// Compare orders elements during a packing pass. It must define a
	// total order over bounds values, returning a negative number, zero
	// or a positive number as a sorts before, equal to or after b. It
	// may not be nil.
	Compare func(a, b B) int
	// Pack optionally replaces the default single-pass grouping used to
	// build each tree level. Leave nil unless the index needs a
	// multi-pass arrangement; see PackFunc.
	Pack PackFunc[B, I]
}

// A Tree is a generic STR-packed spatial index over bounds type B and
// item type I. The zero value is not usable; obtain a Tree from New.
//
// A Tree is built exactly once, by Build or implicitly by the first
// call to Count, Depth, Query, QueryFunc or Remove. Insert is only
// legal before the build; everything except Remove is read-only after
// it.
type Tree[B Bounds[B], I comparable] struct {
	nodeCapacity int
	cfg          Config[B, I]
	built        bool
	pending      []Boundable[B]
	root         *Node[B, I]
}

// New creates an empty tree with the given node capacity, the maximum
// number of children an interior node may hold. It returns an error if
// nodeCapacity is less than 2 or cfg.Compare is nil.
func New[B Bounds[B], I comparable](nodeCapacity int, cfg Config[B, I]) (*Tree[B, I], error) {
	if nodeCapacity < 2 {
		return nil, fmtErr("node capacity must be at least 2 (got %d)", nodeCapacity)
	}
	if cfg.Compare == nil {
		return nil, textErr("nil compare function")
	}
	return &Tree[B, I]{
		nodeCapacity: nodeCapacity,
		cfg:          cfg,
	}, nil
}

// NodeCapacity returns the maximum number of children an interior node
// may hold.
func (t *Tree[B, I]) NodeCapacity() int {
	return t.nodeCapacity
}

// Insert adds an item with the given bounds to the set the tree will
// be built from. It returns an error if the tree is already built.
func (t *Tree[B, I]) Insert(bounds B, item I) error {
	if t.built {
		return textErr("cannot insert: tree is already built")
	}
	t.pending = append(t.pending, NewLeaf[B](bounds, item))
	return nil
}

// Build packs all inserted items into the tree. It returns an error if
// the tree is already built, including when an earlier query built it
// implicitly. Building an itemless tree is legal and yields a tree
// whose Bounds is Config.Empty.
func (t *Tree[B, I]) Build() error {
	if t.built {
		return textErr("tree is already built")
	}
	t.build()
	return nil
}

func (t *Tree[B, I]) build() {
	if len(t.pending) == 0 {
		t.root = NewNode[B, I](0)
	} else {
		t.root = t.higherLevels(t.pending, leafLevel)
	}
	t.pending = nil
	t.built = true
}

func (t *Tree[B, I]) ensureBuilt() {
	if !t.built {
		t.build()
	}
}

// Bounds returns the aggregate bounds of every item in the tree, or
// Config.Empty if the tree holds no items. Unlike the other accessors
// it does not build implicitly: it returns an error if Build has not
// been called.
func (t *Tree[B, I]) Bounds() (B, error) {
	if !t.built {
		var zero B
		return zero, textErr("tree is not built")
	}
	if t.root.ChildCount() == 0 {
		return t.cfg.Empty, nil
	}
	return t.root.Bounds(), nil
}

// Count returns the number of items in the tree, building it first if
// necessary.
func (t *Tree[B, I]) Count() int {
	t.ensureBuilt()
	if t.root.ChildCount() == 0 {
		return 0
	}
	return t.root.count()
}

// Depth returns the number of interior levels of the tree: 0 for an
// itemless tree, otherwise at least 1. It builds the tree first if
// necessary.
func (t *Tree[B, I]) Depth() int {
	t.ensureBuilt()
	if t.root.ChildCount() == 0 {
		return 0
	}
	return t.root.depth()
}

// Query returns the items whose bounds intersect bounds. The order of
// the results is not defined. The result is a fresh slice per call;
// repeated calls are independent. Query builds the tree first if
// necessary.
func (t *Tree[B, I]) Query(bounds B) []I {
	return t.QueryFunc(bounds, nil)
}

// QueryFunc returns the items whose bounds intersect bounds and which
// keep accepts. A nil keep accepts every item. The order of the results
// is not defined. QueryFunc builds the tree first if necessary.
func (t *Tree[B, I]) QueryFunc(bounds B, keep func(item I) bool) []I {
	t.ensureBuilt()
	r := make([]I, 0)
	if t.root.ChildCount() == 0 || !t.root.Intersects(bounds) {
		return r
	}
	return t.root.query(bounds, keep, r)
}

// Remove deletes one occurrence of item from the tree, reporting
// whether one was found. The given bounds guide the descent and must
// intersect the bounds item was inserted under. Interior nodes emptied
// by the deletion are pruned from their parents; the root itself is
// never pruned. Remove builds the tree first if necessary.
func (t *Tree[B, I]) Remove(bounds B, item I) bool {
	t.ensureBuilt()
	if t.root.ChildCount() == 0 || !t.root.Intersects(bounds) {
		return false
	}
	return t.remove(bounds, item, t.root)
}

func (t *Tree[B, I]) remove(bounds B, item I, n *Node[B, I]) bool {
	// Prefer a match among the direct children before descending.
	if n.removeItem(item) {
		return true
	}
	for i, c := range n.children {
		child, ok := c.(*Node[B, I])
		if !ok || !child.Intersects(bounds) {
			continue
		}
		if t.remove(bounds, item, child) {
			if child.ChildCount() == 0 {
				n.removeChildAt(i)
			}
			return true
		}
	}
	return false
}

// Dispose releases the tree's contents: the root, the whole packed
// structure under it, and any items buffered before a build. It is
// idempotent. The tree must not be used after Dispose.
func (t *Tree[B, I]) Dispose() {
	t.root = nil
	t.pending = nil
}
