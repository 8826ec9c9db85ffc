// Copyright 2023 The strtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package strtree

import "sort"

// leafLevel is the sentinel level passed to the packing loop when its
// input is the raw leaves rather than nodes of a real level.
const leafLevel = -1

// A PackFunc builds one level of parent nodes from the elements of the
// level below: it receives the children of the new level (leaves on the
// first pass, the previous pass's nodes afterward) and the level number
// the new parents will sit at, and returns the parents in packing
// order.
//
// Most indexes use the engine's default pass, which sorts by the
// configured comparator and groups runs of at most the node capacity;
// supply a PackFunc only for multi-pass schemes, such as the
// two-dimensional Sort-Tile-Recursive slicing the rtree package
// implements. An implementation may reorder children in place and
// should build its parents with Tree.PackSlice or NewNode/AddChild.
type PackFunc[B Bounds[B], I comparable] func(t *Tree[B, I], children []Boundable[B], level int) []Boundable[B]

// PackSlice runs one standard packing pass over children: it sorts
// them in place by cmp applied to their bounds (stably, so equal keys
// keep insertion order) and partitions the result into consecutive
// parent nodes of at most NodeCapacity children each, created at the
// given level. It panics if children is empty.
//
// PackSlice is exported for use by custom PackFunc implementations,
// which may call it once per slice of a larger arrangement.
func (t *Tree[B, I]) PackSlice(children []Boundable[B], level int, cmp func(a, b B) int) []Boundable[B] {
	if len(children) == 0 {
		textPanic("cannot pack an empty level")
	}
	sort.SliceStable(children, func(i, j int) bool {
		return cmp(children[i].Bounds(), children[j].Bounds()) < 0
	})
	parents := make([]Boundable[B], 0, (len(children)+t.nodeCapacity-1)/t.nodeCapacity)
	for start := 0; start < len(children); start += t.nodeCapacity {
		end := start + t.nodeCapacity
		if end > len(children) {
			end = len(children)
		}
		parent := NewNode[B, I](level)
		for _, c := range children[start:end] {
			parent.AddChild(c)
		}
		parents = append(parents, parent)
	}
	return parents
}

// packLevel builds the parents of one level using the configured
// PackFunc, or the default single comparator pass if none is set.
func (t *Tree[B, I]) packLevel(children []Boundable[B], level int) []Boundable[B] {
	if t.cfg.Pack != nil {
		return t.cfg.Pack(t, children, level)
	}
	return t.PackSlice(children, level, t.cfg.Compare)
}

// higherLevels packs level upon level until a single node remains, and
// returns it as the root. levelNum is the level of the input elements,
// leafLevel for raw leaves.
func (t *Tree[B, I]) higherLevels(children []Boundable[B], levelNum int) *Node[B, I] {
	parents := t.packLevel(children, levelNum+1)
	if len(parents) == 0 {
		textPanic("packing pass returned no parents")
	}
	if len(parents) == 1 {
		root, ok := parents[0].(*Node[B, I])
		if !ok {
			fmtPanic("packing pass returned non-node parent %T", parents[0])
		}
		return root
	}
	return t.higherLevels(parents, levelNum+1)
}
