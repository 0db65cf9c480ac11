// Copyright 2023 The ntree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package ntree

// Region is the geometric capability every region type indexed by a
// Tree must provide. R is the concrete region type itself and P is the
// point type stored in the tree.
//
// Regions are treated as values: the tree copies them freely and never
// looks inside them.
//
// Implementations must honor the partition invariant: the sub-regions
// returned by Split must not overlap each other, and every point
// contained in the receiver must be contained in exactly one of them.
// The tree relies on this to find a unique home for each point and to
// traverse exhaustively. A Region that breaks the invariant causes the
// tree to panic.
type Region[R any, P any] interface {
	// Contains reports whether the point lies within the region.
	Contains(p P) bool
	// Split partitions the region into an ordered, non-empty list of
	// non-overlapping sub-regions which jointly cover it.
	Split() []R
	// Overlaps reports whether the region intersects another region.
	// It must be symmetric.
	Overlaps(other R) bool
}
