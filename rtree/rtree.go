// Copyright 2023 The strtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package rtree provides a two-dimensional R-tree over axis-aligned
// bounding rectangles, bulk-loaded with the Sort-Tile-Recursive
// packing algorithm.
//
// The index is static: insert every item up front, then build (either
// explicitly with Build or implicitly with the first query) and the
// structure is frozen apart from single-item Remove. For the build
// lifecycle and concurrency contract see the strtree package, which
// supplies the underlying engine.
package rtree

import (
	"fmt"
	"math"
	"sort"

	"github.com/gogama/strtree"
)

// DefaultNodeCapacity is a good default for the maximum child count of
// an interior tree node.
const DefaultNodeCapacity = 10

// An RTree indexes items of type T by bounding rectangle and answers
// rectangle intersection queries. Obtain one from New; the zero value
// is not usable.
type RTree[T comparable] struct {
	tree *strtree.Tree[Box, T]
}

// New creates an empty R-tree with the given node capacity, the
// maximum number of children an interior node may hold.
// DefaultNodeCapacity is a reasonable choice. New returns an error if
// nodeCapacity is less than 2.
func New[T comparable](nodeCapacity int) (*RTree[T], error) {
	tree, err := strtree.New[Box, T](nodeCapacity, strtree.Config[Box, T]{
		Empty:   EmptyBox,
		Compare: compareCenterY,
		Pack:    pack[T],
	})
	if err != nil {
		return nil, err
	}
	return &RTree[T]{tree: tree}, nil
}

func compareCenterX(a, b Box) int {
	return compareFloat(a.CenterX(), b.CenterX())
}

func compareCenterY(a, b Box) int {
	return compareFloat(a.CenterY(), b.CenterY())
}

func compareFloat(a, b float64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// pack is the two-pass STR arrangement: order the level's children by
// center X-coordinate, cut the ordering into vertical slices, then run
// the engine's standard pass over each slice with a center-Y
// comparator. The parents of all slices together form the new level.
func pack[T comparable](t *strtree.Tree[Box, T], children []strtree.Boundable[Box], level int) []strtree.Boundable[Box] {
	nodeCount := int(math.Ceil(float64(len(children)) / float64(t.NodeCapacity())))
	sliceCount := int(math.Ceil(math.Sqrt(float64(nodeCount))))
	sliceCapacity := (len(children) + sliceCount - 1) / sliceCount
	sort.SliceStable(children, func(i, j int) bool {
		return compareCenterX(children[i].Bounds(), children[j].Bounds()) < 0
	})
	parents := make([]strtree.Boundable[Box], 0, nodeCount)
	for start := 0; start < len(children); start += sliceCapacity {
		end := start + sliceCapacity
		if end > len(children) {
			end = len(children)
		}
		parents = append(parents, t.PackSlice(children[start:end], level, compareCenterY)...)
	}
	return parents
}

// NodeCapacity returns the maximum number of children an interior node
// may hold.
func (t *RTree[T]) NodeCapacity() int {
	return t.tree.NodeCapacity()
}

// Insert adds an item with the given bounding rectangle to the set the
// index will be built from. It returns an error if the index is
// already built.
func (t *RTree[T]) Insert(bounds Box, item T) error {
	return t.tree.Insert(bounds, item)
}

// Build packs all inserted items into the index. It returns an error
// if the index is already built.
func (t *RTree[T]) Build() error {
	return t.tree.Build()
}

// Bounds returns the bounding rectangle around every indexed item, or
// EmptyBox if there are none. It returns an error if Build has not
// been called.
func (t *RTree[T]) Bounds() (Box, error) {
	return t.tree.Bounds()
}

// Count returns the number of indexed items, building the index first
// if necessary.
func (t *RTree[T]) Count() int {
	return t.tree.Count()
}

// Depth returns the number of interior levels of the tree: 0 when
// there are no items, otherwise at least 1. It builds the index first
// if necessary.
func (t *RTree[T]) Depth() int {
	return t.tree.Depth()
}

// Query returns the items whose bounding rectangles intersect bounds.
// The order of the results is not defined. Query builds the index
// first if necessary.
func (t *RTree[T]) Query(bounds Box) []T {
	return t.tree.Query(bounds)
}

// QueryFunc returns the items whose bounding rectangles intersect
// bounds and which keep accepts. A nil keep accepts every item.
// QueryFunc builds the index first if necessary.
func (t *RTree[T]) QueryFunc(bounds Box, keep func(item T) bool) []T {
	return t.tree.QueryFunc(bounds, keep)
}

// Remove deletes one occurrence of item from the index, reporting
// whether one was found. bounds must intersect the rectangle item was
// inserted under. Remove builds the index first if necessary.
func (t *RTree[T]) Remove(bounds Box, item T) bool {
	return t.tree.Remove(bounds, item)
}

// Dispose releases the index contents. It is idempotent, and the index
// must not be used afterward.
func (t *RTree[T]) Dispose() {
	t.tree.Dispose()
}

// String returns a summary description of the R-tree.
func (t *RTree[T]) String() string {
	b, err := t.tree.Bounds()
	if err != nil {
		return fmt.Sprintf("RTree{NodeCapacity:%d,Unbuilt}", t.tree.NodeCapacity())
	}
	return fmt.Sprintf("RTree{Bounds:%s,Count:%d,NodeCapacity:%d}", b, t.tree.Count(), t.tree.NodeCapacity())
}
