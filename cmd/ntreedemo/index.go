// Copyright 2023 The ntree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"sync"

	"github.com/gogama/ntree"
	"github.com/gogama/ntree/region"
)

// index guards a quadtree for concurrent use: one writer or any number
// of readers at a time. Readers hold the read lock for the whole life
// of their cursor.
type index struct {
	mu   sync.RWMutex
	tree *ntree.Tree[region.Box, region.Point2]
}

func newIndex(b region.Box, capacity uint8, maxDepth int) *index {
	return &index{tree: ntree.New[region.Box, region.Point2](b, capacity, ntree.WithMaxDepth(maxDepth))}
}

func (x *index) insert(p region.Point2) bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.tree.Insert(p)
}

func (x *index) remove(p region.Point2) bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.tree.Remove(p)
}

// count returns the number of points within the query box.
func (x *index) count(query region.Box) int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	var n int
	for c := x.tree.RangeQuery(query); c.Next(); {
		n++
	}
	return n
}

// nearby returns a copy of the bucket the point falls into.
func (x *index) nearby(p region.Point2) []region.Point2 {
	x.mu.RLock()
	defer x.mu.RUnlock()
	near, _ := x.tree.Nearby(p)
	return append([]region.Point2(nil), near...)
}

func (x *index) check() error {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.tree.Check()
}

func (x *index) String() string {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.tree.String()
}
