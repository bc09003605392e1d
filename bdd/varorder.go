package bdd

import "github.com/scram-ng/scram-core/pdag"

// ModuleHint mirrors preprocess.ModuleInfo without importing package
// preprocess, keeping bdd's dependency graph one-directional
// (pdag -> bdd, preprocess -> pdag, engine wires bdd+preprocess
// together) instead of introducing a cycle.
type ModuleHint struct {
	Variables []string
}

// VariableOrder computes the heuristic fixed order required for BDD
// canonicity (§4.C): a depth-first first-occurrence walk of g, with
// each module's variables grouped into a contiguous block starting at
// the position of the module's first-occurring member.
func VariableOrder(g *pdag.Graph, modules []ModuleHint) []string {
	base := g.Variables()

	memberOfModule := make(map[string]int, len(base))
	for mi, mod := range modules {
		for _, v := range mod.Variables {
			if _, already := memberOfModule[v]; !already {
				memberOfModule[v] = mi
			}
		}
	}

	placed := make(map[string]bool, len(base))
	order := make([]string, 0, len(base))
	for _, v := range base {
		if placed[v] {
			continue
		}
		mi, inModule := memberOfModule[v]
		if !inModule {
			order = append(order, v)
			placed[v] = true
			continue
		}
		for _, mv := range modules[mi].Variables {
			if placed[mv] {
				continue
			}
			// Only place module members that actually occur in base;
			// a module built from a different graph snapshot could
			// name a variable this graph no longer references.
			if !containsString(base, mv) {
				continue
			}
			order = append(order, mv)
			placed[mv] = true
		}
	}
	return order
}

func containsString(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
