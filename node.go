// Copyright 2023 The ntree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package ntree

import "strconv"

// A nodeKind discriminates between the two node variants.
type nodeKind uint8

const (
	// bucketKind is a leaf holding a capacity-bounded list of points.
	bucketKind nodeKind = iota + 1
	// branchKind is an interior node whose children partition its
	// region.
	branchKind
)

func (k nodeKind) String() string {
	switch k {
	case bucketKind:
		return "Bucket"
	case branchKind:
		return "Branch"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// A node is a single entry in a Tree's node arena. Nodes refer to each
// other by arena index, never by pointer, so a bucket can be rewritten
// into a branch in place without disturbing its parent.
//
// Only the fields belonging to the node's kind are meaningful: points
// for a bucket, children for a branch.
type node[R any, P any] struct {
	region R
	kind   nodeKind
	// depth is the distance from the root, which has depth 0.
	depth int
	// points are the points stored in a bucket.
	points []P
	// children are the arena indices of a branch's child nodes, in the
	// order returned by Split.
	children []int
}
