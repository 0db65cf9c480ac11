// Copyright 2023 The ntree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package region provides ready-made regions for use with ntree.Tree:
// a one-dimensional Interval, a two-dimensional Box and a
// three-dimensional Cube, which produce binary trees, quadtrees and
// octrees respectively.
//
// All regions are half-open: they contain their lower bounds but not
// their upper bounds. This makes splitting exact, since a point on a
// split line belongs to exactly one side.
package region
