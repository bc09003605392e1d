package pdag

// Eval evaluates e under assignment, a complete map from every
// variable id reachable from e to a truth value. It exists primarily
// to state and test the preprocessor's semantic-preservation property
// (§8): re-evaluating the original and the preprocessed graph under
// the same assignment must agree.
func (g *Graph) Eval(e Edge, assignment map[string]bool) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	memo := make(map[Index]bool, len(g.nodes))
	var walk func(idx Index) bool
	walk = func(idx Index) bool {
		if v, ok := memo[idx]; ok {
			return v
		}
		n := &g.nodes[idx]
		var v bool
		switch n.Kind {
		case KindFalse:
			v = false
		case KindTrue:
			v = true
		case KindVar:
			v = assignment[n.VarID]
		case KindAnd:
			v = true
			for _, a := range n.Args {
				if walk(a.Index) == a.Neg {
					v = false
					break
				}
			}
		case KindOr:
			v = false
			for _, a := range n.Args {
				if walk(a.Index) != a.Neg {
					v = true
					break
				}
			}
		case KindXor:
			v = false
			for _, a := range n.Args {
				if walk(a.Index) != a.Neg {
					v = !v
				}
			}
		case KindAtLeast:
			count := 0
			for _, a := range n.Args {
				if walk(a.Index) != a.Neg {
					count++
				}
			}
			v = count >= n.K
		}
		memo[idx] = v
		return v
	}
	v := walk(e.Index)
	if e.Neg {
		return !v
	}
	return v
}
