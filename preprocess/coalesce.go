package preprocess

import "github.com/scram-ng/scram-core/pdag"

// coalesce rebuilds g into a new graph, flattening nested same-
// connective AND/OR chains as it goes (§4.B pass 4) and relying on
// pdag.Graph.NewGate's own folding to also perform constant
// propagation, duplicate/complement absorption and structural hashing
// on the way (§4.B passes 2, 5 partial, 6) — there is no reason to
// write those three rewrites twice when NewGate already enforces them
// as graph invariants.
func coalesce(g *pdag.Graph) (*pdag.Graph, bool, error) {
	ng := pdag.NewGraph()
	memo := make(map[pdag.Index]pdag.Edge)
	changed := false

	var walk func(idx pdag.Index) (pdag.Edge, error)
	walk = func(idx pdag.Index) (pdag.Edge, error) {
		if e, ok := memo[idx]; ok {
			return e, nil
		}
		n, err := g.Node(idx)
		if err != nil {
			return pdag.Edge{}, err
		}
		var result pdag.Edge
		switch n.Kind {
		case pdag.KindFalse:
			result = pdag.Pos(pdag.FalseIndex)
		case pdag.KindTrue:
			result = pdag.Pos(pdag.TrueIndex)
		case pdag.KindVar:
			result, err = ng.NewVar(n.VarID, n.IsHouse)
			if err != nil {
				return pdag.Edge{}, err
			}
		case pdag.KindAnd, pdag.KindOr:
			args, flattened, err := flattenArgs(g, &n, n.Kind, walk)
			if err != nil {
				return pdag.Edge{}, err
			}
			if flattened {
				changed = true
			}
			result, err = ng.NewGate(n.Kind, 0, args)
			if err != nil {
				return pdag.Edge{}, err
			}
		case pdag.KindXor, pdag.KindAtLeast:
			args := make([]pdag.Edge, len(n.Args))
			for i, a := range n.Args {
				ce, err := walk(a.Index)
				if err != nil {
					return pdag.Edge{}, err
				}
				args[i] = maybeNeg(ce, a.Neg)
			}
			result, err = ng.NewGate(n.Kind, n.K, args)
			if err != nil {
				return pdag.Edge{}, err
			}
		}
		memo[idx] = result
		return result, nil
	}

	root, err := walk(g.Root().Index)
	if err != nil {
		return nil, false, err
	}
	root = maybeNeg(root, g.Root().Neg)
	ng.SetRoot(root)
	if err := ng.Freeze(); err != nil {
		return nil, false, err
	}
	return ng, changed, nil
}

// flattenArgs translates each argument of an AND/OR node and splices
// in the arguments of any non-negated child that shares the same
// connective, since AND(AND(x,y),z) == AND(x,y,z) and likewise for OR.
func flattenArgs(g *pdag.Graph, n *pdag.Node, kind pdag.Kind, walk func(pdag.Index) (pdag.Edge, error)) ([]pdag.Edge, bool, error) {
	var out []pdag.Edge
	flattened := false
	for _, a := range n.Args {
		child, err := g.Node(a.Index)
		if err != nil {
			return nil, false, err
		}
		if !a.Neg && child.Kind == kind {
			sub, _, err := flattenArgs(g, &child, kind, walk)
			if err != nil {
				return nil, false, err
			}
			out = append(out, sub...)
			flattened = true
			continue
		}
		ce, err := walk(a.Index)
		if err != nil {
			return nil, false, err
		}
		out = append(out, maybeNeg(ce, a.Neg))
	}
	return out, flattened, nil
}

func maybeNeg(e pdag.Edge, neg bool) pdag.Edge {
	if neg {
		return e.Not()
	}
	return e
}
