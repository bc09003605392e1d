package pdag

import (
	"fmt"
	"strings"
)

// DotExport renders the graph reachable from the root as a DOT
// document. It is §4.A's own export, distinct from the (out-of-scope)
// external fault-tree DOT emitter in §6: this one shows the
// normalized PDAG, complement bits included, for debugging the
// preprocessor rather than for presenting the original model.
func (g *Graph) DotExport() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var b strings.Builder
	b.WriteString("digraph pdag {\n")
	visited := make(map[Index]bool)
	var walk func(idx Index)
	walk = func(idx Index) {
		if visited[idx] {
			return
		}
		visited[idx] = true
		n := &g.nodes[idx]
		switch n.Kind {
		case KindFalse:
			fmt.Fprintf(&b, "  n%d [label=\"FALSE\", shape=box];\n", idx)
		case KindTrue:
			fmt.Fprintf(&b, "  n%d [label=\"TRUE\", shape=box];\n", idx)
		case KindVar:
			fmt.Fprintf(&b, "  n%d [label=%q, shape=ellipse];\n", idx, n.VarID)
		default:
			label := n.Kind.String()
			if n.Kind == KindAtLeast {
				label = fmt.Sprintf("ATLEAST(%d)", n.K)
			}
			fmt.Fprintf(&b, "  n%d [label=%q, shape=diamond];\n", idx, label)
			for _, a := range n.Args {
				style := "solid"
				if a.Neg {
					style = "dashed"
				}
				fmt.Fprintf(&b, "  n%d -> n%d [style=%s];\n", idx, a.Index, style)
				walk(a.Index)
			}
		}
	}
	walk(g.root.Index)
	style := "solid"
	if g.root.Neg {
		style = "dashed"
	}
	fmt.Fprintf(&b, "  root -> n%d [style=%s];\n", g.root.Index, style)
	b.WriteString("}\n")
	return b.String()
}
