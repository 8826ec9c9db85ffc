// Copyright 2023 The strtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package strtree

// Bounds is the constraint a bounds type must satisfy to be indexed by
// a Tree. A bounds value describes the spatial extent of a tree
// element, for example an axis-aligned rectangle or a one-dimensional
// interval.
//
// The constraint is self-referential in the style of constraints.Ordered
// types: a bounds type B implements Bounds[B].
type Bounds[B any] interface {
	// Union returns the smallest bounds value covering both the
	// receiver and other.
	Union(other B) B
	// Intersects reports whether the receiver and other share at
	// least one point.
	Intersects(other B) bool
	// Contains reports whether other lies entirely within the
	// receiver.
	Contains(other B) bool
}

// A Boundable is one element of a Tree: either an interior *Node or an
// item-carrying *Leaf. The variant set is closed; no other type can
// implement Boundable.
type Boundable[B Bounds[B]] interface {
	// Bounds returns the element's bounds value. For a *Node this is
	// the aggregate bounds of the whole subtree rooted at the node.
	Bounds() B
	// Intersects reports whether the element's bounds intersect b.
	Intersects(b B) bool

	boundable()
}

// A Leaf wraps a single indexed item together with the bounds it was
// inserted under. Leaves sit at the bottom of the tree; their parent
// nodes are at level 0.
type Leaf[B Bounds[B], I comparable] struct {
	bounds B
	item   I
}

// NewLeaf wraps item and its bounds as a tree leaf.
func NewLeaf[B Bounds[B], I comparable](bounds B, item I) *Leaf[B, I] {
	return &Leaf[B, I]{bounds: bounds, item: item}
}

// Bounds returns the bounds the leaf's item was inserted under.
func (l *Leaf[B, I]) Bounds() B {
	return l.bounds
}

// Intersects reports whether the leaf's bounds intersect b.
func (l *Leaf[B, I]) Intersects(b B) bool {
	return l.bounds.Intersects(b)
}

// Item returns the indexed item.
func (l *Leaf[B, I]) Item() I {
	return l.item
}

func (l *Leaf[B, I]) boundable() {}
