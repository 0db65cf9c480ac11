// Copyright 2023 The ntree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package ntree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogama/ntree/region"
)

func TestTree_Check(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ntree")
	defer teardown()

	// newTree returns a tree with a split SW quadrant, i.e. nodes
	// 0 (root), 1 (SW branch), 2-4 (buckets), 5-8 (SW buckets).
	newTree := func() *Tree[region.Box, region.Point2] {
		tree := New[region.Box, region.Point2](square, 1)
		require.True(t, tree.Insert(pt(0, 0)))
		require.True(t, tree.Insert(pt(1, 1)))
		require.True(t, tree.Insert(pt(3, 3)))
		require.NoError(t, tree.Check())
		require.Equal(t, 9, tree.NumNodes())
		return tree
	}

	t.Run("Nil", func(t *testing.T) {
		var tree *Tree[region.Box, region.Point2]

		assert.ErrorIs(t, tree.Check(), ErrInvariant)
	})

	testCases := []struct {
		name     string
		corrupt  func(tree *Tree[region.Box, region.Point2])
		expected string
	}{
		{
			name: "RootIsBucket",
			corrupt: func(tree *Tree[region.Box, region.Point2]) {
				tree.nodes[0].kind = bucketKind
			},
			expected: "ntree: invariant violated: root is a Bucket, not a branch",
		},
		{
			name: "InvalidKind",
			corrupt: func(tree *Tree[region.Box, region.Point2]) {
				tree.nodes[3].kind = 0
			},
			expected: "ntree: invariant violated: node 3 has invalid kind nodeKind(0)",
		},
		{
			name: "OverCapacity",
			corrupt: func(tree *Tree[region.Box, region.Point2]) {
				tree.nodes[4].points = append(tree.nodes[4].points, pt(3.5, 3.5))
				tree.numPoints++
			},
			expected: "ntree: invariant violated: bucket 4 at depth 1 holds 2 points, capacity is 1",
		},
		{
			name: "PointOutsideBucket",
			corrupt: func(tree *Tree[region.Box, region.Point2]) {
				tree.nodes[2].points = append(tree.nodes[2].points, pt(1, 3))
				tree.numPoints++
			},
			expected: "ntree: invariant violated: bucket 2 region [2,0,4,2] does not contain point [1,3]",
		},
		{
			name: "PointOutsideAncestor",
			corrupt: func(tree *Tree[region.Box, region.Point2]) {
				tree.nodes[5].region = square
				tree.nodes[5].points[0] = pt(3, 0)
			},
			expected: "ntree: invariant violated: ancestor 1 region [0,0,2,2] of bucket 5 does not contain point [3,0]",
		},
		{
			name: "BranchWithPoints",
			corrupt: func(tree *Tree[region.Box, region.Point2]) {
				tree.nodes[1].points = []region.Point2{pt(0, 0)}
			},
			expected: "ntree: invariant violated: branch 1 holds 1 points",
		},
		{
			name: "BranchWithoutChildren",
			corrupt: func(tree *Tree[region.Box, region.Point2]) {
				tree.nodes[1].children = nil
			},
			expected: "ntree: invariant violated: branch 1 has no children",
		},
		{
			name: "SharedChild",
			corrupt: func(tree *Tree[region.Box, region.Point2]) {
				tree.nodes[1].children[1] = 5
			},
			expected: "ntree: invariant violated: node 5 is reachable more than once",
		},
		{
			name: "ChildOutOfRange",
			corrupt: func(tree *Tree[region.Box, region.Point2]) {
				tree.nodes[1].children[3] = 100
			},
			expected: "ntree: invariant violated: branch 1 has child index 100 out of range",
		},
		{
			name: "WrongDepth",
			corrupt: func(tree *Tree[region.Box, region.Point2]) {
				tree.nodes[6].depth = 7
			},
			expected: "ntree: invariant violated: child 6 of node 1 has depth 7, expected 2",
		},
		{
			name: "Unreachable",
			corrupt: func(tree *Tree[region.Box, region.Point2]) {
				tree.nodes = append(tree.nodes, node[region.Box, region.Point2]{region: square, kind: bucketKind, depth: 1})
			},
			expected: "ntree: invariant violated: node 9 is unreachable",
		},
		{
			name: "LenMismatch",
			corrupt: func(tree *Tree[region.Box, region.Point2]) {
				tree.numPoints = 2
			},
			expected: "ntree: invariant violated: tree has 3 points but Len is 2",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			tree := newTree()

			testCase.corrupt(tree)
			err := tree.Check()

			assert.ErrorIs(t, err, ErrInvariant)
			assert.EqualError(t, err, testCase.expected)
		})
	}
}
