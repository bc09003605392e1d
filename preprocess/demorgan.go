package preprocess

import "github.com/scram-ng/scram-core/pdag"

// complementKey memoizes sinkComplements' walk on (source node, the
// polarity requested at this use site): the same AND/OR/XOR/ATLEAST
// node can be needed both straight and complemented from different
// parents, and those two uses build genuinely different result nodes.
type complementKey struct {
	idx pdag.Index
	neg bool
}

// sinkComplements rebuilds g pushing every complement edge that points
// at an AND/OR/ATLEAST/XOR node down to the literals below it (§4.B
// pass 3, De Morgan): pdag.Build turns NAND/NOR/IFF/IMPLY/NOT-of-a-gate
// into exactly such an edge (interior node kept AND/OR/XOR, the
// complement carried on the edge pointing at it), and the decision-
// diagram builders only know how to read a complement sitting on an
// edge into a variable or a terminal.
//
//	NOT(AND(a1..an)) = OR(NOT a1 .. NOT an)
//	NOT(OR(a1..an))  = AND(NOT a1 .. NOT an)
//	NOT(ATLEAST(k, a1..an)) = ATLEAST(n-k+1, NOT a1 .. NOT an)
//	NOT(XOR(a1..an)) = XOR(NOT a1, a2 .. an)
//
// The XOR case only negates the first argument: flipping any single
// literal's value toggles the parity of the whole XOR, which is
// exactly what complementing the gate means, so there is no need to
// negate every argument the way AND/OR/ATLEAST do.
func sinkComplements(g *pdag.Graph) (*pdag.Graph, bool, error) {
	ng := pdag.NewGraph()
	memo := make(map[complementKey]pdag.Edge)
	changed := false

	var walk func(idx pdag.Index, neg bool) (pdag.Edge, error)
	walk = func(idx pdag.Index, neg bool) (pdag.Edge, error) {
		key := complementKey{idx, neg}
		if e, ok := memo[key]; ok {
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
			if neg {
				result = pdag.Pos(pdag.TrueIndex)
			}
		case pdag.KindTrue:
			result = pdag.Pos(pdag.TrueIndex)
			if neg {
				result = pdag.Pos(pdag.FalseIndex)
			}
		case pdag.KindVar:
			v, verr := ng.NewVar(n.VarID, n.IsHouse)
			if verr != nil {
				return pdag.Edge{}, verr
			}
			result = maybeNeg(v, neg)
		case pdag.KindAnd, pdag.KindOr:
			kind := n.Kind
			if neg {
				changed = true
				if kind == pdag.KindAnd {
					kind = pdag.KindOr
				} else {
					kind = pdag.KindAnd
				}
			}
			args := make([]pdag.Edge, len(n.Args))
			for i, a := range n.Args {
				childNeg := a.Neg
				if neg {
					childNeg = !a.Neg
				}
				ce, werr := walk(a.Index, childNeg)
				if werr != nil {
					return pdag.Edge{}, werr
				}
				args[i] = ce
			}
			result, err = ng.NewGate(kind, 0, args)
			if err != nil {
				return pdag.Edge{}, err
			}
		case pdag.KindAtLeast:
			k := n.K
			if neg {
				changed = true
				k = len(n.Args) - n.K + 1
			}
			args := make([]pdag.Edge, len(n.Args))
			for i, a := range n.Args {
				childNeg := a.Neg
				if neg {
					childNeg = !a.Neg
				}
				ce, werr := walk(a.Index, childNeg)
				if werr != nil {
					return pdag.Edge{}, werr
				}
				args[i] = ce
			}
			result, err = ng.NewGate(pdag.KindAtLeast, k, args)
			if err != nil {
				return pdag.Edge{}, err
			}
		case pdag.KindXor:
			args := make([]pdag.Edge, len(n.Args))
			for i, a := range n.Args {
				childNeg := a.Neg
				if neg && i == 0 {
					childNeg = !a.Neg
					changed = true
				}
				ce, werr := walk(a.Index, childNeg)
				if werr != nil {
					return pdag.Edge{}, werr
				}
				args[i] = ce
			}
			result, err = ng.NewGate(pdag.KindXor, 0, args)
			if err != nil {
				return pdag.Edge{}, err
			}
		}

		memo[key] = result
		return result, nil
	}

	root := g.Root()
	sunk, err := walk(root.Index, root.Neg)
	if err != nil {
		return nil, false, err
	}
	ng.SetRoot(sunk)
	if err := ng.Freeze(); err != nil {
		return nil, false, err
	}
	return ng, changed, nil
}
