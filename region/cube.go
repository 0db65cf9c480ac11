// Copyright 2023 The ntree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package region

// Point3 is a point in space.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// String returns the point as "[X,Y,Z]".
func (p Point3) String() string {
	return list(p.X, p.Y, p.Z)
}

// Cube is the half-open axis-aligned cuboid spanning [Min.X, Max.X) x
// [Min.Y, Max.Y) x [Min.Z, Max.Z). Used as an ntree region it indexes
// Point3 values with an octree.
type Cube struct {
	Min Point3
	Max Point3
}

// NewCube returns the cuboid with corners min and max. Panics if any
// range is inverted or has a NaN or infinite bound.
func NewCube(min, max Point3) Cube {
	checkRange("x", min.X, max.X)
	checkRange("y", min.Y, max.Y)
	checkRange("z", min.Z, max.Z)
	return Cube{Min: min, Max: max}
}

// Contains reports whether the point lies within the cuboid.
func (c Cube) Contains(p Point3) bool {
	return c.Min.X <= p.X && p.X < c.Max.X &&
		c.Min.Y <= p.Y && p.Y < c.Max.Y &&
		c.Min.Z <= p.Z && p.Z < c.Max.Z
}

// Split divides the cuboid into eight equal octants. Octant i lies in
// the upper half of the x-axis if bit 0 of i is set, in the upper half
// of the y-axis if bit 1 is set, and in the upper half of the z-axis if
// bit 2 is set.
func (c Cube) Split() []Cube {
	m := Point3{
		X: midpoint(c.Min.X, c.Max.X),
		Y: midpoint(c.Min.Y, c.Max.Y),
		Z: midpoint(c.Min.Z, c.Max.Z),
	}
	octants := make([]Cube, 8)
	for i := range octants {
		o := &octants[i]
		o.Min, o.Max = c.Min, m
		if i&1 != 0 {
			o.Min.X, o.Max.X = m.X, c.Max.X
		}
		if i&2 != 0 {
			o.Min.Y, o.Max.Y = m.Y, c.Max.Y
		}
		if i&4 != 0 {
			o.Min.Z, o.Max.Z = m.Z, c.Max.Z
		}
	}
	return octants
}

// Overlaps reports whether the two cuboids share a volume of positive
// size. A cuboid that is flat along any axis overlaps nothing.
func (c Cube) Overlaps(o Cube) bool {
	return overlaps(c.Min.X, c.Max.X, o.Min.X, o.Max.X) &&
		overlaps(c.Min.Y, c.Max.Y, o.Min.Y, o.Max.Y) &&
		overlaps(c.Min.Z, c.Max.Z, o.Min.Z, o.Max.Z)
}

// String returns the cuboid as "[MinX,MinY,MinZ,MaxX,MaxY,MaxZ]".
func (c Cube) String() string {
	return list(c.Min.X, c.Min.Y, c.Min.Z, c.Max.X, c.Max.Y, c.Max.Z)
}
