// Copyright 2023 The ntree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package ntree

import "iter"

// siblings iterates over the children of one branch. pos is the index
// of the next child to visit.
type siblings struct {
	children []int
	pos      int
}

// Cursor lazily iterates over the points of a Tree lying within a
// query region. Create one with Tree.RangeQuery.
//
// The cursor walks the tree depth-first, left to right in Split order,
// skipping every subtree whose region does not overlap the query. It
// does not recurse and never builds the full result list: it keeps an
// explicit stack of partially visited sibling lists, plus the points
// of the bucket currently being filtered.
//
// A Cursor is consumed once. After Next returns false it keeps
// returning false. The tree must not be modified while a Cursor is in
// use.
type Cursor[R Region[R, P], P comparable] struct {
	tree  *Tree[R, P]
	query R
	// points are the candidate points of the current bucket and pos
	// is the index of the next one to test against query.
	points []P
	pos    int
	// stack holds the remaining siblings of every branch on the path
	// to the current bucket.
	stack   []siblings
	current *P
}

// RangeQuery returns a Cursor over all the points in the tree which lie
// within query. Points in buckets whose regions overlap query are
// filtered by query.Contains, so only points strictly within query are
// produced.
func (t *Tree[R, P]) RangeQuery(query R) *Cursor[R, P] {
	return &Cursor[R, P]{
		tree:  t,
		query: query,
		stack: []siblings{{children: []int{0}}},
	}
}

// Next advances the cursor to the next matching point, returning false
// when there are no more points.
func (c *Cursor[R, P]) Next() bool {
	for {
		// Try to find the next matching point in the current bucket.
		for c.pos < len(c.points) {
			p := &c.points[c.pos]
			c.pos++
			if c.query.Contains(*p) {
				c.current = p
				return true
			}
		}
		// No relevant points left, so find a new bucket.
		if !c.nextBucket() {
			c.points, c.pos, c.current = nil, 0, nil
			return false
		}
	}
}

// nextBucket makes the next bucket overlapping the query the source of
// candidate points. It returns false once the stack is exhausted.
func (c *Cursor[R, P]) nextBucket() bool {
	for len(c.stack) > 0 {
		s := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
		for s.pos < len(s.children) {
			n := &c.tree.nodes[s.children[s.pos]]
			s.pos++
			if !n.region.Overlaps(c.query) {
				continue
			}
			// Save the remaining siblings whether we step down into a
			// branch or stop at a bucket.
			c.stack = append(c.stack, s)
			switch n.kind {
			case bucketKind:
				c.points, c.pos = n.points, 0
				return true
			case branchKind:
				s = siblings{children: n.children}
			default:
				fmtPanic("logic error: node %d has invalid kind %s", s.children[s.pos-1], n.kind)
			}
		}
	}
	return false
}

// Point returns the current point. It points into the tree's storage
// and is only valid until the tree is modified. Returns nil before the
// first call to Next and after Next returns false.
func (c *Cursor[R, P]) Point() *P {
	return c.current
}

// All returns an iterator which drains the cursor. Like the cursor it
// can only be ranged over once.
func (c *Cursor[R, P]) All() iter.Seq[*P] {
	return func(yield func(*P) bool) {
		for c.Next() {
			if !yield(c.current) {
				return
			}
		}
	}
}

// Collect drains the cursor and returns copies of the remaining
// matching points.
func (c *Cursor[R, P]) Collect() []P {
	var r []P
	for c.Next() {
		r = append(r, *c.current)
	}
	return r
}
