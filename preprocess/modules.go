package preprocess

import "github.com/scram-ng/scram-core/pdag"

// ModuleInfo describes one module candidate: a non-root gate with
// exactly one parent edge and at least two variables in its support,
// treated as an atomic unit by downstream ordering heuristics (§4.B
// pass 5, "module extraction"). Whether those variables also occur
// outside the gate's subtree is not checked, so a reported module's
// support is not guaranteed to be disjoint from the rest of the tree.
type ModuleInfo struct {
	Root      pdag.Index
	Variables []string
}

// detectModules computes, for the graph rooted at g.Root(), every
// gate node whose in-degree (counted over the edges reachable from
// the root) is exactly one and whose subtree is non-trivial (more
// than one variable). Parent counts are computed in a single pass over
// the reachable node set, and variable support is memoized bottom-up.
func detectModules(g *pdag.Graph) ([]ModuleInfo, error) {
	order := g.TopologicalOrder()
	parents := make(map[pdag.Index]int, len(order))
	support := make(map[pdag.Index]map[string]struct{}, len(order))

	nodes := make(map[pdag.Index]pdag.Node, len(order))
	for _, idx := range order {
		n, err := g.Node(idx)
		if err != nil {
			return nil, err
		}
		nodes[idx] = n
		for _, a := range n.Args {
			parents[a.Index]++
		}
	}
	if root := g.Root().Index; parents[root] == 0 {
		parents[root] = 1 // the root itself is "used" by the analysis
	}

	for _, idx := range order {
		n := nodes[idx]
		if n.Kind == pdag.KindVar {
			support[idx] = map[string]struct{}{n.VarID: {}}
			continue
		}
		s := make(map[string]struct{})
		for _, a := range n.Args {
			for v := range support[a.Index] {
				s[v] = struct{}{}
			}
		}
		support[idx] = s
	}

	var modules []ModuleInfo
	for _, idx := range order {
		n := nodes[idx]
		if n.Kind == pdag.KindVar || n.Kind == pdag.KindTrue || n.Kind == pdag.KindFalse {
			continue
		}
		if idx == g.Root().Index {
			continue // the root is never reported as its own module
		}
		if parents[idx] != 1 {
			continue
		}
		vars := support[idx]
		if len(vars) < 2 {
			continue
		}
		list := make([]string, 0, len(vars))
		for v := range vars {
			list = append(list, v)
		}
		modules = append(modules, ModuleInfo{Root: idx, Variables: list})
	}
	return modules, nil
}
