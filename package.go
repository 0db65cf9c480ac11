// Copyright 2023 The ntree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package ntree provides a generic n-ary spatial index: a quadtree-like
// structure of arbitrary dimensionality and arbitrary branching factor.
//
// The tree never inspects geometry itself. All geometric reasoning is
// delegated to a user-supplied Region, which knows whether it contains
// a point, whether it overlaps another region, and how to split itself
// into sub-regions. The number of sub-regions returned by Split decides
// the arity of the tree, so the same code indexes intervals (2-way),
// boxes (4-way), cubes (8-way) or anything else. Ready-made regions
// live in the region sub-package.
//
// Points are kept in capacity-bounded leaf buckets. When a bucket
// overflows it is replaced in place by a branch over the same region
// and its points are redistributed. Buckets emptied by Remove are kept
// as they are: sibling buckets are never merged.
//
// A Tree is not safe for concurrent use. Insert and Remove require
// exclusive access, and a live Cursor must not overlap any mutation.
// Callers needing concurrency should guard the tree with a
// sync.RWMutex, holding the read lock for the entire life of a Cursor.
package ntree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'ntree'
func tracer() tracing.Trace {
	return tracing.Select("ntree")
}
