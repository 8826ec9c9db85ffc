// Copyright 2023 The strtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package strtree

// A Node is an interior element of a Tree. It owns an ordered list of
// children, each of which is either another *Node or a *Leaf, and is
// tagged with the tree level it sits at: level 0 nodes are the parents
// of leaves, and levels increase toward the root.
//
// Nodes are created by the packing pass during Build. Capacity
// discipline is the packer's responsibility, not the Node's: AddChild
// appends unconditionally.
type Node[B Bounds[B], I comparable] struct {
	level      int
	children   []Boundable[B]
	bounds     B
	haveBounds bool
}

// NewNode creates an empty node at the given tree level. It is needed
// only by custom PackFunc implementations; ordinary use of the package
// never creates nodes directly.
func NewNode[B Bounds[B], I comparable](level int) *Node[B, I] {
	return &Node[B, I]{level: level}
}

// Level returns the node's tree level. Level 0 is the lowest interior
// level, directly above the leaves.
func (n *Node[B, I]) Level() int {
	return n.level
}

// ChildCount returns the number of direct children of the node.
func (n *Node[B, I]) ChildCount() int {
	return len(n.children)
}

// AddChild appends c to the node's children. The caller is responsible
// for respecting the tree's node capacity.
func (n *Node[B, I]) AddChild(c Boundable[B]) {
	n.children = append(n.children, c)
	n.haveBounds = false
}

// RemoveChild removes the child identical to c, reporting whether it
// was present.
func (n *Node[B, I]) RemoveChild(c Boundable[B]) bool {
	for i := range n.children {
		if n.children[i] == c {
			n.removeChildAt(i)
			return true
		}
	}
	return false
}

func (n *Node[B, I]) removeChildAt(i int) {
	n.children = append(n.children[:i], n.children[i+1:]...)
}

// Bounds returns the aggregate bounds of the node's subtree: the union
// of the bounds of all children. The result is computed on first use
// and cached. Removals do not shrink the cached value, so after a
// Remove the bounds may over-approximate the remaining children;
// queries stay correct because traversal only prunes on non-
// intersection.
//
// Bounds panics on a childless node. The only childless node a tree
// ever holds is the root of an itemless tree, and Tree.Bounds handles
// that case before reaching here.
func (n *Node[B, I]) Bounds() B {
	if !n.haveBounds {
		if len(n.children) == 0 {
			textPanic("empty node has no bounds")
		}
		b := n.children[0].Bounds()
		for _, c := range n.children[1:] {
			b = b.Union(c.Bounds())
		}
		n.bounds = b
		n.haveBounds = true
	}
	return n.bounds
}

// Intersects reports whether the node's aggregate bounds intersect b.
func (n *Node[B, I]) Intersects(b B) bool {
	return n.Bounds().Intersects(b)
}

func (n *Node[B, I]) boundable() {}

// count returns the number of leaves in the subtree rooted at n.
func (n *Node[B, I]) count() int {
	var total int
	for _, c := range n.children {
		switch c := c.(type) {
		case *Node[B, I]:
			total += c.count()
		case *Leaf[B, I]:
			total++
		default:
			fmtPanic("unsupported boundable type %T", c)
		}
	}
	return total
}

// depth returns the height of the subtree rooted at n. A node whose
// children are all leaves has depth 1.
func (n *Node[B, I]) depth() int {
	var deepest int
	for _, c := range n.children {
		if child, ok := c.(*Node[B, I]); ok {
			if d := child.depth(); d > deepest {
				deepest = d
			}
		}
	}
	return deepest + 1
}

// query appends to r the items of every leaf in n's subtree whose
// bounds intersect b and which keep accepts, pruning whole subtrees
// whose aggregate bounds miss b. A nil keep accepts everything.
func (n *Node[B, I]) query(b B, keep func(I) bool, r []I) []I {
	for _, c := range n.children {
		if !c.Intersects(b) {
			continue
		}
		switch c := c.(type) {
		case *Node[B, I]:
			r = c.query(b, keep, r)
		case *Leaf[B, I]:
			if keep == nil || keep(c.item) {
				r = append(r, c.item)
			}
		default:
			fmtPanic("unsupported boundable type %T", c)
		}
	}
	return r
}

// removeItem removes one direct leaf child holding item, reporting
// whether one was found. When several direct children match, the last
// one wins; the scan deliberately does not short-circuit.
func (n *Node[B, I]) removeItem(item I) bool {
	found := -1
	for i, c := range n.children {
		if leaf, ok := c.(*Leaf[B, I]); ok && leaf.item == item {
			found = i
		}
	}
	if found < 0 {
		return false
	}
	n.removeChildAt(found)
	return true
}
