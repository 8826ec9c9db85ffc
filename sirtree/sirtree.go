// Copyright 2023 The strtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package sirtree provides a SIR-tree: a one-dimensional interval
// index bulk-loaded with STR packing.
//
// The index is static: insert every item up front, then build (either
// explicitly with Build or implicitly with the first query) and the
// structure is frozen apart from single-item Remove. For the build
// lifecycle and concurrency contract see the strtree package, which
// supplies the underlying engine.
package sirtree

import (
	"fmt"

	"github.com/gogama/strtree"
)

// DefaultNodeCapacity is a good default for the maximum child count of
// an interior tree node.
const DefaultNodeCapacity = 10

// A SIRTree indexes items of type T by interval and answers interval
// intersection queries. Obtain one from New; the zero value is not
// usable.
type SIRTree[T comparable] struct {
	tree *strtree.Tree[Interval, T]
}

// New creates an empty SIR-tree with the given node capacity, the
// maximum number of children an interior node may hold.
// DefaultNodeCapacity is a reasonable choice. New returns an error if
// nodeCapacity is less than 2.
func New[T comparable](nodeCapacity int) (*SIRTree[T], error) {
	tree, err := strtree.New[Interval, T](nodeCapacity, strtree.Config[Interval, T]{
		Empty:   EmptyInterval,
		Compare: compareCenter,
	})
	if err != nil {
		return nil, err
	}
	return &SIRTree[T]{tree: tree}, nil
}

// compareCenter orders intervals by midpoint, the one-dimensional STR
// sort key.
func compareCenter(a, b Interval) int {
	ac, bc := a.Center(), b.Center()
	if ac < bc {
		return -1
	}
	if ac > bc {
		return 1
	}
	return 0
}

// NodeCapacity returns the maximum number of children an interior node
// may hold.
func (t *SIRTree[T]) NodeCapacity() int {
	return t.tree.NodeCapacity()
}

// Insert adds an item with the given interval to the set the index
// will be built from. It returns an error if the index is already
// built.
func (t *SIRTree[T]) Insert(bounds Interval, item T) error {
	return t.tree.Insert(bounds, item)
}

// Build packs all inserted items into the index. It returns an error
// if the index is already built.
func (t *SIRTree[T]) Build() error {
	return t.tree.Build()
}

// Bounds returns the interval spanning every indexed item, or
// EmptyInterval if there are none. It returns an error if Build has
// not been called.
func (t *SIRTree[T]) Bounds() (Interval, error) {
	return t.tree.Bounds()
}

// Count returns the number of indexed items, building the index first
// if necessary.
func (t *SIRTree[T]) Count() int {
	return t.tree.Count()
}

// Depth returns the number of interior levels of the tree: 0 when
// there are no items, otherwise at least 1. It builds the index first
// if necessary.
func (t *SIRTree[T]) Depth() int {
	return t.tree.Depth()
}

// Query returns the items whose intervals intersect bounds. The order
// of the results is not defined. Query builds the index first if
// necessary.
func (t *SIRTree[T]) Query(bounds Interval) []T {
	return t.tree.Query(bounds)
}

// QueryFunc returns the items whose intervals intersect bounds and
// which keep accepts. A nil keep accepts every item. QueryFunc builds
// the index first if necessary.
func (t *SIRTree[T]) QueryFunc(bounds Interval, keep func(item T) bool) []T {
	return t.tree.QueryFunc(bounds, keep)
}

// Remove deletes one occurrence of item from the index, reporting
// whether one was found. bounds must intersect the interval item was
// inserted under. Remove builds the index first if necessary.
func (t *SIRTree[T]) Remove(bounds Interval, item T) bool {
	return t.tree.Remove(bounds, item)
}

// Dispose releases the index contents. It is idempotent, and the index
// must not be used afterward.
func (t *SIRTree[T]) Dispose() {
	t.tree.Dispose()
}

// String returns a summary description of the SIR-tree.
func (t *SIRTree[T]) String() string {
	b, err := t.tree.Bounds()
	if err != nil {
		return fmt.Sprintf("SIRTree{NodeCapacity:%d,Unbuilt}", t.tree.NodeCapacity())
	}
	return fmt.Sprintf("SIRTree{Bounds:%s,Count:%d,NodeCapacity:%d}", b, t.tree.Count(), t.tree.NodeCapacity())
}
