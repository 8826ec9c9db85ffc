// Copyright 2023 The strtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package strtree

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// span is a minimal one-dimensional bounds type used to exercise the
// generic engine without dragging in a concrete index package.
type span struct {
	lo, hi float64
}

var emptySpan = span{lo: math.Inf(1), hi: math.Inf(-1)}

func (s span) Union(o span) span {
	return span{lo: math.Min(s.lo, o.lo), hi: math.Max(s.hi, o.hi)}
}

func (s span) Intersects(o span) bool {
	return s.lo <= o.hi && s.hi >= o.lo
}

func (s span) Contains(o span) bool {
	return s.lo <= o.lo && s.hi >= o.hi
}

func compareSpanCenter(a, b span) int {
	ac, bc := a.lo+a.hi, b.lo+b.hi
	if ac < bc {
		return -1
	}
	if ac > bc {
		return 1
	}
	return 0
}

func newTestTree(t *testing.T, nodeCapacity int) *Tree[span, int] {
	tree, err := New[span, int](nodeCapacity, Config[span, int]{
		Empty:   emptySpan,
		Compare: compareSpanCenter,
	})
	require.NoError(t, err)
	return tree
}

// insertN inserts n unit-width spans [i, i+1] with items 0..n-1.
func insertN(t *testing.T, tree *Tree[span, int], n int) {
	for i := 0; i < n; i++ {
		require.NoError(t, tree.Insert(span{lo: float64(i), hi: float64(i) + 1}, i))
	}
}

// universalSpan covers every span insertN creates.
var universalSpan = span{lo: math.Inf(-1), hi: math.Inf(1)}

func TestNew(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		testCases := []struct {
			name         string
			nodeCapacity int
			compare      func(a, b span) int
			expected     string
		}{
			{
				name:         "Capacity.Negative",
				nodeCapacity: -1,
				compare:      compareSpanCenter,
				expected:     "strtree: node capacity must be at least 2 (got -1)",
			},
			{
				name:         "Capacity.Zero",
				nodeCapacity: 0,
				compare:      compareSpanCenter,
				expected:     "strtree: node capacity must be at least 2 (got 0)",
			},
			{
				name:         "Capacity.One",
				nodeCapacity: 1,
				compare:      compareSpanCenter,
				expected:     "strtree: node capacity must be at least 2 (got 1)",
			},
			{
				name:         "NilCompare",
				nodeCapacity: 2,
				compare:      nil,
				expected:     "strtree: nil compare function",
			},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				tree, err := New[span, int](testCase.nodeCapacity, Config[span, int]{
					Empty:   emptySpan,
					Compare: testCase.compare,
				})

				assert.Nil(t, tree)
				assert.EqualError(t, err, testCase.expected)
			})
		}
	})

	t.Run("Success", func(t *testing.T) {
		tree := newTestTree(t, 7)

		assert.Equal(t, 7, tree.NodeCapacity())
	})
}

func TestTree_Lifecycle(t *testing.T) {
	t.Run("InsertAfterBuild", func(t *testing.T) {
		tree := newTestTree(t, 4)
		insertN(t, tree, 3)
		require.NoError(t, tree.Build())

		err := tree.Insert(span{lo: 0, hi: 1}, 99)

		assert.EqualError(t, err, "strtree: cannot insert: tree is already built")
		assert.Equal(t, 3, tree.Count())
	})

	t.Run("BuildTwice", func(t *testing.T) {
		tree := newTestTree(t, 4)
		insertN(t, tree, 3)
		require.NoError(t, tree.Build())

		err := tree.Build()

		assert.EqualError(t, err, "strtree: tree is already built")
	})

	t.Run("BoundsBeforeBuild", func(t *testing.T) {
		tree := newTestTree(t, 4)
		insertN(t, tree, 3)

		_, err := tree.Bounds()

		assert.EqualError(t, err, "strtree: tree is not built")
	})

	t.Run("BoundsAfterBuild", func(t *testing.T) {
		tree := newTestTree(t, 4)
		insertN(t, tree, 3)
		require.NoError(t, tree.Build())

		b, err := tree.Bounds()

		require.NoError(t, err)
		assert.Equal(t, span{lo: 0, hi: 3}, b)
	})

	t.Run("ImplicitBuild", func(t *testing.T) {
		testCases := []struct {
			name  string
			build func(tree *Tree[span, int])
		}{
			{"Count", func(tree *Tree[span, int]) { tree.Count() }},
			{"Depth", func(tree *Tree[span, int]) { tree.Depth() }},
			{"Query", func(tree *Tree[span, int]) { tree.Query(universalSpan) }},
			{"QueryFunc", func(tree *Tree[span, int]) { tree.QueryFunc(universalSpan, nil) }},
			{"Remove", func(tree *Tree[span, int]) { tree.Remove(universalSpan, 0) }},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				tree := newTestTree(t, 4)
				insertN(t, tree, 3)

				testCase.build(tree)

				assert.EqualError(t, tree.Build(), "strtree: tree is already built")
				assert.EqualError(t, tree.Insert(span{}, 99), "strtree: cannot insert: tree is already built")
			})
		}
	})
}

// expectedDepth is the depth law from the STR packing: ceil(log base
// nodeCapacity of n) interior levels, except 0 for an itemless tree
// and 1 for a single item.
func expectedDepth(n, nodeCapacity int) int {
	if n == 0 {
		return 0
	}
	depth := 1
	for n > nodeCapacity {
		n = (n + nodeCapacity - 1) / nodeCapacity
		depth++
	}
	return depth
}

func TestTree_CountAndDepth(t *testing.T) {
	nodeCapacities := []int{2, 3, 4, 10}
	itemCounts := []int{0, 1, 2, 3, 4, 5, 9, 10, 11, 16, 17, 50, 100}

	for _, nodeCapacity := range nodeCapacities {
		for _, n := range itemCounts {
			name := fmt.Sprintf("Capacity%d.Items%d", nodeCapacity, n)
			t.Run(name, func(t *testing.T) {
				tree := newTestTree(t, nodeCapacity)
				insertN(t, tree, n)
				require.NoError(t, tree.Build())

				assert.Equal(t, n, tree.Count())
				assert.Equal(t, expectedDepth(n, nodeCapacity), tree.Depth())
			})
		}
	}
}

// TestTree_NodeInvariant checks that after building, every non-root
// node holds between 1 and nodeCapacity children.
func TestTree_NodeInvariant(t *testing.T) {
	nodeCapacities := []int{2, 3, 4, 10}
	itemCounts := []int{1, 2, 5, 10, 11, 33, 100}

	var walk func(t *testing.T, n *Node[span, int], nodeCapacity int, isRoot bool)
	walk = func(t *testing.T, n *Node[span, int], nodeCapacity int, isRoot bool) {
		if !isRoot {
			assert.GreaterOrEqual(t, n.ChildCount(), 1)
		}
		assert.LessOrEqual(t, n.ChildCount(), nodeCapacity)
		for _, c := range n.children {
			if child, ok := c.(*Node[span, int]); ok {
				assert.Equal(t, n.Level()-1, child.Level())
				walk(t, child, nodeCapacity, false)
			}
		}
	}

	for _, nodeCapacity := range nodeCapacities {
		for _, n := range itemCounts {
			name := fmt.Sprintf("Capacity%d.Items%d", nodeCapacity, n)
			t.Run(name, func(t *testing.T) {
				tree := newTestTree(t, nodeCapacity)
				insertN(t, tree, n)
				require.NoError(t, tree.Build())

				walk(t, tree.root, nodeCapacity, true)
			})
		}
	}
}

func TestTree_Query(t *testing.T) {
	t.Run("Universal", func(t *testing.T) {
		tree := newTestTree(t, 4)
		insertN(t, tree, 10)

		actual := tree.Query(universalSpan)

		expected := make([]int, 10)
		for i := range expected {
			expected[i] = i
		}
		assert.ElementsMatch(t, expected, actual)
	})

	t.Run("Disjoint", func(t *testing.T) {
		tree := newTestTree(t, 4)
		insertN(t, tree, 10)

		actual := tree.Query(span{lo: -100, hi: -50})

		assert.NotNil(t, actual)
		assert.Empty(t, actual)
	})

	t.Run("Partial", func(t *testing.T) {
		tree := newTestTree(t, 3)
		insertN(t, tree, 20)

		// Spans [i, i+1] for i in 0..19. The query [4.5, 6.5]
		// intersects spans for items 4, 5 and 6.
		actual := tree.Query(span{lo: 4.5, hi: 6.5})

		assert.ElementsMatch(t, []int{4, 5, 6}, actual)
	})

	t.Run("Touching", func(t *testing.T) {
		tree := newTestTree(t, 4)
		insertN(t, tree, 4)

		// Span endpoints are closed, so a query touching the edge of
		// item 2's span [2, 3] matches it.
		actual := tree.Query(span{lo: 3, hi: 3})

		assert.ElementsMatch(t, []int{2, 3}, actual)
	})

	t.Run("Filter", func(t *testing.T) {
		tree := newTestTree(t, 4)
		insertN(t, tree, 10)

		actual := tree.QueryFunc(universalSpan, func(item int) bool {
			return item%2 == 0
		})

		assert.ElementsMatch(t, []int{0, 2, 4, 6, 8}, actual)
	})

	t.Run("Restartable", func(t *testing.T) {
		tree := newTestTree(t, 4)
		insertN(t, tree, 10)

		first := tree.Query(universalSpan)
		second := tree.Query(universalSpan)

		assert.Len(t, second, 10)
		assert.ElementsMatch(t, first, second)
	})
}

func TestTree_Remove(t *testing.T) {
	t.Run("Present", func(t *testing.T) {
		tree := newTestTree(t, 4)
		insertN(t, tree, 10)
		require.Equal(t, 10, tree.Count())

		removed := tree.Remove(span{lo: 3, hi: 4}, 3)

		assert.True(t, removed)
		assert.Equal(t, 9, tree.Count())
		assert.NotContains(t, tree.Query(universalSpan), 3)
	})

	t.Run("Twice", func(t *testing.T) {
		tree := newTestTree(t, 4)
		insertN(t, tree, 10)
		require.True(t, tree.Remove(span{lo: 3, hi: 4}, 3))

		removed := tree.Remove(span{lo: 3, hi: 4}, 3)

		assert.False(t, removed)
		assert.Equal(t, 9, tree.Count())
	})

	t.Run("Absent", func(t *testing.T) {
		tree := newTestTree(t, 4)
		insertN(t, tree, 10)

		removed := tree.Remove(universalSpan, 99)

		assert.False(t, removed)
		assert.Equal(t, 10, tree.Count())
	})

	t.Run("DisjointBounds", func(t *testing.T) {
		tree := newTestTree(t, 4)
		insertN(t, tree, 10)

		// Item 3 exists, but the search bounds miss the whole tree, so
		// the traversal stops at the root.
		removed := tree.Remove(span{lo: -100, hi: -50}, 3)

		assert.False(t, removed)
		assert.Equal(t, 10, tree.Count())
	})

	t.Run("Duplicates", func(t *testing.T) {
		tree := newTestTree(t, 4)
		b := span{lo: 1, hi: 2}
		require.NoError(t, tree.Insert(b, 7))
		require.NoError(t, tree.Insert(b, 7))
		require.NoError(t, tree.Build())
		require.Equal(t, 2, tree.Count())

		removed := tree.Remove(b, 7)

		assert.True(t, removed)
		assert.Equal(t, 1, tree.Count())
		assert.ElementsMatch(t, []int{7}, tree.Query(universalSpan))
	})

	t.Run("All", func(t *testing.T) {
		tree := newTestTree(t, 2)
		insertN(t, tree, 9)

		for i := 0; i < 9; i++ {
			removed := tree.Remove(span{lo: float64(i), hi: float64(i) + 1}, i)
			assert.True(t, removed, "item %d", i)
			assert.Equal(t, 9-i-1, tree.Count())
		}

		assert.Empty(t, tree.Query(universalSpan))
		assert.False(t, tree.Remove(universalSpan, 0))
	})

	t.Run("PrunesEmptiedNodes", func(t *testing.T) {
		// Capacity 2 over 8 items gives three interior levels, so
		// removals empty whole subtrees. After each removal no
		// childless node may remain anywhere except, at the very end,
		// the root.
		tree := newTestTree(t, 2)
		insertN(t, tree, 8)
		require.NoError(t, tree.Build())

		var walk func(n *Node[span, int], isRoot bool)
		walk = func(n *Node[span, int], isRoot bool) {
			if !isRoot {
				assert.Greater(t, n.ChildCount(), 0)
			}
			for _, c := range n.children {
				if child, ok := c.(*Node[span, int]); ok {
					walk(child, false)
				}
			}
		}

		for i := 0; i < 8; i++ {
			require.True(t, tree.Remove(span{lo: float64(i), hi: float64(i) + 1}, i))
			walk(tree.root, true)
		}

		// The root is exempt from pruning and survives empty.
		assert.NotNil(t, tree.root)
		assert.Equal(t, 0, tree.root.ChildCount())
		assert.Equal(t, 0, tree.Count())
	})
}

func TestTree_Empty(t *testing.T) {
	tree := newTestTree(t, 4)
	require.NoError(t, tree.Build())

	b, err := tree.Bounds()

	require.NoError(t, err)
	assert.Equal(t, emptySpan, b)
	assert.Equal(t, 0, tree.Count())
	assert.Equal(t, 0, tree.Depth())
	assert.Empty(t, tree.Query(universalSpan))
	assert.False(t, tree.Remove(universalSpan, 0))
}

func TestTree_Dispose(t *testing.T) {
	t.Run("BeforeBuild", func(t *testing.T) {
		tree := newTestTree(t, 4)
		insertN(t, tree, 5)

		tree.Dispose()

		assert.Nil(t, tree.root)
		assert.Empty(t, tree.pending)
	})

	t.Run("AfterBuild", func(t *testing.T) {
		tree := newTestTree(t, 4)
		insertN(t, tree, 5)
		require.NoError(t, tree.Build())

		tree.Dispose()

		assert.Nil(t, tree.root)
	})

	t.Run("Idempotent", func(t *testing.T) {
		tree := newTestTree(t, 4)
		insertN(t, tree, 5)
		require.NoError(t, tree.Build())

		tree.Dispose()
		tree.Dispose()

		assert.Nil(t, tree.root)
	})
}
