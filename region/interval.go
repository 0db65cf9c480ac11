// Copyright 2023 The ntree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package region

// Interval is the half-open range [Min, Max) on the real line. Used as
// an ntree region it indexes float64 points with a binary tree.
type Interval struct {
	Min float64
	Max float64
}

// NewInterval returns the interval [min, max). Panics if min > max or
// either bound is NaN or infinite.
func NewInterval(min, max float64) Interval {
	checkRange("interval", min, max)
	return Interval{Min: min, Max: max}
}

// Width returns the length of the interval.
func (i Interval) Width() float64 {
	return i.Max - i.Min
}

func (i Interval) mid() float64 {
	return midpoint(i.Min, i.Max)
}

// Contains reports whether Min <= x < Max.
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x < i.Max
}

// Split divides the interval at its midpoint into a lower and an upper
// half.
func (i Interval) Split() []Interval {
	m := i.mid()
	return []Interval{{i.Min, m}, {m, i.Max}}
}

// Overlaps reports whether the two intervals share a range of positive
// length. An empty interval overlaps nothing.
func (i Interval) Overlaps(o Interval) bool {
	return overlaps(i.Min, i.Max, o.Min, o.Max)
}

// String returns the interval as "[Min,Max)".
func (i Interval) String() string {
	return "[" + ftoa(i.Min) + "," + ftoa(i.Max) + ")"
}
