package preprocess

import "github.com/scram-ng/scram-core/pdag"

// distribute rebuilds g, applying one bounded factoring rule at each
// OR node (§4.B pass 7, "gate decomposition / distribution"): when
// every AND-shaped child of an OR shares one common literal factor L,
// rewrite OR(AND(L,x1),AND(L,x2),...) into AND(L, OR(x1,x2,...)),
// which both exposes common substructure to structural hashing and
// shrinks the node the ZBDD/MOCUS engines have to expand.
//
// The rewrite is attempted only when the OR node has at most
// cfg.MaxDistributionFanout AND-shaped children, since the classical
// distribution transform (the dual direction, AND-of-ORs expanding
// into an OR-of-ANDs) is exponential in the worst case; this pass only
// ever runs in the size-reducing direction and bails out rather than
// guessing when no single literal is common to every AND child.
func distribute(g *pdag.Graph, cfg Config) (*pdag.Graph, bool, error) {
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
		case pdag.KindOr:
			result, err = distributeOr(g, ng, &n, cfg, walk, &changed)
		default:
			args := make([]pdag.Edge, len(n.Args))
			for i, a := range n.Args {
				ce, werr := walk(a.Index)
				if werr != nil {
					return pdag.Edge{}, werr
				}
				args[i] = maybeNeg(ce, a.Neg)
			}
			result, err = ng.NewGate(n.Kind, n.K, args)
		}
		if err != nil {
			return pdag.Edge{}, err
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

func distributeOr(g, ng *pdag.Graph, n *pdag.Node, cfg Config, walk func(pdag.Index) (pdag.Edge, error), changed *bool) (pdag.Edge, error) {
	translateArgs := func() ([]pdag.Edge, error) {
		args := make([]pdag.Edge, len(n.Args))
		for i, a := range n.Args {
			ce, err := walk(a.Index)
			if err != nil {
				return nil, err
			}
			args[i] = maybeNeg(ce, a.Neg)
		}
		return args, nil
	}

	if cfg.MaxDistributionFanout <= 0 || len(n.Args) > cfg.MaxDistributionFanout || len(n.Args) < 2 {
		args, err := translateArgs()
		if err != nil {
			return pdag.Edge{}, err
		}
		return ng.NewGate(pdag.KindOr, 0, args)
	}

	type andChild struct {
		lits []pdag.Edge // original (old-graph) literal edges of this AND
	}
	children := make([]andChild, len(n.Args))
	allAnd := true
	for i, a := range n.Args {
		c, err := g.Node(a.Index)
		if err != nil {
			return pdag.Edge{}, err
		}
		if a.Neg || c.Kind != pdag.KindAnd {
			allAnd = false
			break
		}
		children[i] = andChild{lits: c.Args}
	}
	if !allAnd {
		args, err := translateArgs()
		if err != nil {
			return pdag.Edge{}, err
		}
		return ng.NewGate(pdag.KindOr, 0, args)
	}

	// Find a literal present (same index, same sign) in every AND child.
	common := pdag.Edge{}
	found := false
candidate:
	for _, cand := range children[0].lits {
		for _, ch := range children[1:] {
			has := false
			for _, lit := range ch.lits {
				if lit == cand {
					has = true
					break
				}
			}
			if !has {
				continue candidate
			}
		}
		common = cand
		found = true
		break
	}
	if !found {
		args, err := translateArgs()
		if err != nil {
			return pdag.Edge{}, err
		}
		return ng.NewGate(pdag.KindOr, 0, args)
	}

	*changed = true
	commonEdge, err := walk(common.Index)
	if err != nil {
		return pdag.Edge{}, err
	}
	commonEdge = maybeNeg(commonEdge, common.Neg)

	remainders := make([]pdag.Edge, len(children))
	for i, ch := range children {
		rest := make([]pdag.Edge, 0, len(ch.lits)-1)
		for _, lit := range ch.lits {
			if lit == common {
				continue
			}
			e, err := walk(lit.Index)
			if err != nil {
				return pdag.Edge{}, err
			}
			rest = append(rest, maybeNeg(e, lit.Neg))
		}
		re, err := ng.NewGate(pdag.KindAnd, 0, rest)
		if err != nil {
			return pdag.Edge{}, err
		}
		remainders[i] = re
	}
	orRest, err := ng.NewGate(pdag.KindOr, 0, remainders)
	if err != nil {
		return pdag.Edge{}, err
	}
	return ng.NewGate(pdag.KindAnd, 0, []pdag.Edge{commonEdge, orRest})
}
