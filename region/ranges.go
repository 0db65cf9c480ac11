// Copyright 2023 The ntree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package region

// overlaps reports whether the half-open ranges [lo1, hi1) and
// [lo2, hi2) have an intersection of positive length. An empty range
// overlaps nothing, not even a range containing it.
func overlaps(lo1, hi1, lo2, hi2 float64) bool {
	return max(lo1, lo2) < min(hi1, hi2)
}

// midpoint returns the middle of [lo, hi). Halving first keeps the sum
// finite for bounds near the limits of float64.
func midpoint(lo, hi float64) float64 {
	return lo/2 + hi/2
}
