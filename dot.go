// Copyright 2023 The ntree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package ntree

import (
	"fmt"
	"io"
	"strings"
)

// WriteDot outputs the internal structure of the tree in Graphviz DOT
// format (for debugging purposes). Branches are drawn as boxes and
// buckets as ellipses labelled with their occupancy.
func (t *Tree[R, P]) WriteDot(w io.Writer) error {
	if w == nil {
		textPanic("nil writer")
	}
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	var edges strings.Builder
	for i := range t.nodes {
		n := &t.nodes[i]
		region := dotEscape(fmt.Sprint(n.region))
		switch n.kind {
		case bucketKind:
			fmt.Fprintf(&b, "\t\"%d\" [label=\"%d/%d\\n%s\"];\n", i, len(n.points), t.capacity, region)
		case branchKind:
			fmt.Fprintf(&b, "\t\"%d\" [label=\"%s\" shape=box];\n", i, region)
			for _, c := range n.children {
				fmt.Fprintf(&edges, "\t\"%d\" -> \"%d\";\n", i, c)
			}
		default:
			fmtPanic("logic error: node %d has invalid kind %s", i, n.kind)
		}
	}
	b.WriteString(edges.String())
	b.WriteString("}\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return wrapErr("failed to write DOT graph", err)
	}
	return nil
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
