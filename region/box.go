// Copyright 2023 The ntree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package region

// Point2 is a point in the plane.
type Point2 struct {
	X float64
	Y float64
}

// String returns the point as "[X,Y]".
func (p Point2) String() string {
	return list(p.X, p.Y)
}

// Box is the half-open rectangle [XMin, XMax) x [YMin, YMax). Used as an
// ntree region it indexes Point2 values with a quadtree.
type Box struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// NewBox returns the box [xMin, xMax) x [yMin, yMax). Panics if either
// range is inverted or has a NaN or infinite bound.
func NewBox(xMin, yMin, xMax, yMax float64) Box {
	checkRange("x", xMin, xMax)
	checkRange("y", yMin, yMax)
	return Box{XMin: xMin, YMin: yMin, XMax: xMax, YMax: yMax}
}

func (b Box) Width() float64 {
	return b.XMax - b.XMin
}

func (b Box) Height() float64 {
	return b.YMax - b.YMin
}

func (b Box) midX() float64 {
	return midpoint(b.XMin, b.XMax)
}

func (b Box) midY() float64 {
	return midpoint(b.YMin, b.YMax)
}

// Contains reports whether the point lies within the box. Points on the
// minimum edges are inside, points on the maximum edges are not.
func (b Box) Contains(p Point2) bool {
	return b.XMin <= p.X && p.X < b.XMax &&
		b.YMin <= p.Y && p.Y < b.YMax
}

// Split divides the box into four equal quadrants, in the order
// south-west, south-east, north-west, north-east.
func (b Box) Split() []Box {
	mx, my := b.midX(), b.midY()
	return []Box{
		{b.XMin, b.YMin, mx, my},
		{mx, b.YMin, b.XMax, my},
		{b.XMin, my, mx, b.YMax},
		{mx, my, b.XMax, b.YMax},
	}
}

// Overlaps reports whether the two boxes share an area of positive
// size. Boxes which merely touch along an edge do not overlap, and
// neither does a box of zero width or height.
func (b Box) Overlaps(o Box) bool {
	return overlaps(b.XMin, b.XMax, o.XMin, o.XMax) &&
		overlaps(b.YMin, b.YMax, o.YMin, o.YMax)
}

// String returns the box as "[XMin,YMin,XMax,YMax]".
func (b Box) String() string {
	return list(b.XMin, b.YMin, b.XMax, b.YMax)
}
