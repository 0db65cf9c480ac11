// Copyright 2023 The ntree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package ntree

import "fmt"

// DefaultMaxDepth is the maximum node depth of a Tree created without
// the WithMaxDepth option.
const DefaultMaxDepth = 32

// An Option configures optional Tree behavior in New.
type Option func(*options)

type options struct {
	maxDepth int
}

// WithMaxDepth limits the depth of the tree's buckets. The root has
// depth 0, so the shallowest bucket is at depth 1. Panics if n is less
// than 1.
//
// A full bucket at the maximum depth is not split. Instead it accepts
// further points beyond its capacity. This bounds the tree depth when
// many equal (or nearly equal) points are inserted, which would
// otherwise split the same sub-region over and over.
func WithMaxDepth(n int) Option {
	if n < 1 {
		fmtPanic("max depth must be at least 1, got %d", n)
	}
	return func(o *options) {
		o.maxDepth = n
	}
}

// Tree is an n-ary spatial index over points of type P within a
// covering region of type R.
//
// The tree owns all of its nodes, which are kept in a single arena and
// refer to one another by index. Node 0 is the root. Points are
// compared with == to locate them for removal.
type Tree[R Region[R, P], P comparable] struct {
	// nodes is the node arena. nodes[0] is the root, which is always a
	// branch.
	nodes []node[R, P]
	// capacity is the maximum number of points per bucket.
	capacity uint8
	// maxDepth is the depth at which buckets stop splitting.
	maxDepth int
	// numPoints is the number of points stored in all buckets.
	numPoints int
}

// New creates a tree covering region whose buckets hold at most
// capacity points. The root is split immediately, so a new tree is a
// single branch of empty buckets, one per sub-region returned by
// region.Split.
//
// The number of sub-regions returned by Split dictates the arity of
// the tree. Panics if capacity is zero or region.Split returns no
// sub-regions.
func New[R Region[R, P], P comparable](region R, capacity uint8, opts ...Option) *Tree[R, P] {
	if capacity == 0 {
		textPanic("capacity must be at least 1")
	}
	o := options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	t := &Tree[R, P]{
		nodes:    make([]node[R, P], 1, 16),
		capacity: capacity,
		maxDepth: o.maxDepth,
	}
	t.nodes[0] = node[R, P]{region: region, kind: bucketKind}
	t.split(0)
	return t
}

// Insert adds a point to the tree, returning true if the point lies
// within the tree's region and was inserted, and false otherwise. A
// false return leaves the tree unchanged.
//
// Equal points may be inserted more than once; each copy is stored.
// Insert invalidates any outstanding Cursor and any slice returned by
// Nearby.
func (t *Tree[R, P]) Insert(p P) bool {
	if !t.nodes[0].region.Contains(p) {
		return false
	}
	t.insertAt(0, p)
	t.numPoints++
	return true
}

// insertAt stores p in the subtree rooted at node i, whose region must
// contain p, splitting full buckets on the way as required.
func (t *Tree[R, P]) insertAt(i int, p P) {
	for {
		i = t.descend(i, p)
		b := &t.nodes[i]
		if len(b.points) < int(t.capacity) {
			b.points = append(b.points, p)
			return
		}
		if b.depth >= t.maxDepth {
			tracer().Infof("bucket %d at max depth %d overflows capacity %d (%d points)", i, b.depth, t.capacity, len(b.points)+1)
			b.points = append(b.points, p)
			return
		}
		// The bucket is full: turn it into a branch over the same
		// region, redistribute its points, then retry p from here.
		old := t.split(i)
		tracer().Debugf("split bucket %d at depth %d into %d, redistributing %d points", i, t.nodes[i].depth, len(t.nodes[i].children), len(old))
		for _, q := range old {
			t.insertAt(i, q)
		}
	}
}

// split rewrites node i, which must be a bucket, into a branch of empty
// buckets covering the sub-regions of its region. It returns the
// points the bucket held, which the caller must reinsert.
func (t *Tree[R, P]) split(i int) []P {
	if t.nodes[i].kind != bucketKind {
		fmtPanic("cannot split node %d: not a bucket but %s", i, t.nodes[i].kind)
	}
	subs := t.nodes[i].region.Split()
	if len(subs) == 0 {
		fmtPanic("region %v split into zero sub-regions", t.nodes[i].region)
	}
	// Take the points first. The arena may be reallocated by the
	// appends below, so t.nodes[i] is re-indexed afterward.
	old := t.nodes[i].points
	t.nodes[i].points = nil
	depth := t.nodes[i].depth
	children := make([]int, len(subs))
	for j := range subs {
		children[j] = len(t.nodes)
		t.nodes = append(t.nodes, node[R, P]{region: subs[j], kind: bucketKind, depth: depth + 1})
	}
	t.nodes[i].kind = branchKind
	t.nodes[i].children = children
	return old
}

// descend walks down from node i, whose region must contain p, to the
// bucket whose region contains p, and returns its arena index. Panics
// if the partition invariant is broken, i.e. no child of a branch
// contains p.
func (t *Tree[R, P]) descend(i int, p P) int {
	for {
		n := &t.nodes[i]
		switch n.kind {
		case bucketKind:
			return i
		case branchKind:
			next := -1
			for _, c := range n.children {
				if t.nodes[c].region.Contains(p) {
					next = c
					break
				}
			}
			if next < 0 {
				fmtPanic("partition invariant violated: no child of node %d (region %v) contains point %v", i, n.region, p)
			}
			i = next
		default:
			fmtPanic("logic error: node %d has invalid kind %s", i, n.kind)
		}
	}
}

// Remove deletes one point equal to p from the tree. It returns true if
// such a point was found and removed, and false otherwise.
//
// The order of the remaining points in the bucket is not preserved. A
// bucket emptied by Remove stays in the tree as an empty bucket; it is
// never merged with its siblings. Remove invalidates any outstanding
// Cursor and any slice returned by Nearby.
func (t *Tree[R, P]) Remove(p P) bool {
	if !t.nodes[0].region.Contains(p) {
		return false
	}
	b := &t.nodes[t.descend(0, p)]
	for j := range b.points {
		if b.points[j] != p {
			continue
		}
		last := len(b.points) - 1
		b.points[j] = b.points[last]
		var zero P
		b.points[last] = zero
		b.points = b.points[:last]
		t.numPoints--
		return true
	}
	return false
}

// Contains reports whether the point lies within the tree's region,
// i.e. whether Insert would accept it. It does not report whether the
// point is stored in the tree.
func (t *Tree[R, P]) Contains(p P) bool {
	return t.nodes[0].region.Contains(p)
}

// Nearby returns the points stored in the bucket whose region contains
// p. This is co-location, not a distance-ranked neighbor search: the
// result holds at most Capacity points (more only in an overflowing
// bucket at the maximum depth) and may be empty. The second return
// value is false if p is outside the tree's region.
//
// The returned slice aliases the tree's storage. It must not be
// modified, and is only valid until the next Insert or Remove. Its
// capacity equals its length, so appending to it copies.
func (t *Tree[R, P]) Nearby(p P) ([]P, bool) {
	if !t.nodes[0].region.Contains(p) {
		return nil, false
	}
	points := t.nodes[t.descend(0, p)].points
	return points[:len(points):len(points)], true
}

// Len returns the number of points stored in the tree.
func (t *Tree[R, P]) Len() int {
	return t.numPoints
}

// Region returns the region covered by the tree.
func (t *Tree[R, P]) Region() R {
	return t.nodes[0].region
}

// Capacity returns the maximum number of points per bucket.
func (t *Tree[R, P]) Capacity() uint8 {
	return t.capacity
}

// MaxDepth returns the depth at which buckets stop splitting.
func (t *Tree[R, P]) MaxDepth() int {
	return t.maxDepth
}

// NumNodes returns the number of nodes, branches and buckets alike, in
// the tree.
func (t *Tree[R, P]) NumNodes() int {
	return len(t.nodes)
}

// Depth returns the depth of the deepest node in the tree. Since the
// root is always split, the depth of a tree is at least 1.
func (t *Tree[R, P]) Depth() int {
	var d int
	for i := range t.nodes {
		if t.nodes[i].depth > d {
			d = t.nodes[i].depth
		}
	}
	return d
}

// String returns a summary description of the tree.
func (t *Tree[R, P]) String() string {
	return fmt.Sprintf("NTree{Region:%v,Len:%d,Capacity:%d,Nodes:%d,Depth:%d}", t.nodes[0].region, t.numPoints, t.capacity, len(t.nodes), t.Depth())
}
