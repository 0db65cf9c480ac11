// Copyright 2023 The ntree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package ntree

import "fmt"

// Check validates the structural invariants of the tree, returning an
// error wrapping ErrInvariant describing the first violation found.
//
// It verifies that every node is reachable from the root exactly once,
// that each child is one level deeper than its parent, that branches
// have children and no points, that no bucket holds more than Capacity
// points unless it is at the maximum depth, that every stored point is
// contained in its bucket's region and in the regions of all the
// bucket's ancestors, and that Len matches the number of stored points.
//
// Check does not verify that sibling regions partition their parent;
// that is the Region's responsibility.
func (t *Tree[R, P]) Check() error {
	if t == nil || len(t.nodes) == 0 {
		return fmt.Errorf("%w: uninitialized tree", ErrInvariant)
	}
	if t.nodes[0].kind != branchKind {
		return fmt.Errorf("%w: root is a %s, not a branch", ErrInvariant, t.nodes[0].kind)
	}
	if t.nodes[0].depth != 0 {
		return fmt.Errorf("%w: root has depth %d", ErrInvariant, t.nodes[0].depth)
	}
	visited := make([]bool, len(t.nodes))
	visited[0] = true
	n, err := t.checkNode(0, nil, visited)
	if err != nil {
		return err
	}
	for i := range visited {
		if !visited[i] {
			return fmt.Errorf("%w: node %d is unreachable", ErrInvariant, i)
		}
	}
	if n != t.numPoints {
		return fmt.Errorf("%w: tree has %d points but Len is %d", ErrInvariant, n, t.numPoints)
	}
	return nil
}

// checkNode checks the subtree rooted at node i, whose ancestors are
// given by path, and returns the number of points stored in it.
func (t *Tree[R, P]) checkNode(i int, path []int, visited []bool) (int, error) {
	n := &t.nodes[i]
	switch n.kind {
	case bucketKind:
		if len(n.children) > 0 {
			return 0, fmt.Errorf("%w: bucket %d has %d children", ErrInvariant, i, len(n.children))
		}
		if len(n.points) > int(t.capacity) && n.depth < t.maxDepth {
			return 0, fmt.Errorf("%w: bucket %d at depth %d holds %d points, capacity is %d",
				ErrInvariant, i, n.depth, len(n.points), t.capacity)
		}
		for _, p := range n.points {
			if !n.region.Contains(p) {
				return 0, fmt.Errorf("%w: bucket %d region %v does not contain point %v", ErrInvariant, i, n.region, p)
			}
			for _, a := range path {
				if !t.nodes[a].region.Contains(p) {
					return 0, fmt.Errorf("%w: ancestor %d region %v of bucket %d does not contain point %v",
						ErrInvariant, a, t.nodes[a].region, i, p)
				}
			}
		}
		return len(n.points), nil
	case branchKind:
		if len(n.points) > 0 {
			return 0, fmt.Errorf("%w: branch %d holds %d points", ErrInvariant, i, len(n.points))
		}
		if len(n.children) == 0 {
			return 0, fmt.Errorf("%w: branch %d has no children", ErrInvariant, i)
		}
		path = append(path, i)
		var total int
		for _, c := range n.children {
			if c <= 0 || c >= len(t.nodes) {
				return 0, fmt.Errorf("%w: branch %d has child index %d out of range", ErrInvariant, i, c)
			}
			if visited[c] {
				return 0, fmt.Errorf("%w: node %d is reachable more than once", ErrInvariant, c)
			}
			visited[c] = true
			if t.nodes[c].depth != n.depth+1 {
				return 0, fmt.Errorf("%w: child %d of node %d has depth %d, expected %d",
					ErrInvariant, c, i, t.nodes[c].depth, n.depth+1)
			}
			m, err := t.checkNode(c, path, visited)
			if err != nil {
				return 0, err
			}
			total += m
		}
		return total, nil
	default:
		return 0, fmt.Errorf("%w: node %d has invalid kind %s", ErrInvariant, i, n.kind)
	}
}
