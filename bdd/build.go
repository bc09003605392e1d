package bdd

import "github.com/scram-ng/scram-core/pdag"

// Build constructs the BDD for the function rooted at g.Root() under
// varOrder, via a single post-order traversal of g: each PDAG gate
// becomes the Ite (or a fold of Apply) over its already-translated
// children, memoized by PDAG index so structurally shared PDAG
// subgraphs are translated once (§4.C, "Building: a post-order
// traversal of the preprocessed PDAG").
func Build(g *pdag.Graph, varOrder []string) (*Manager, Ref, error) {
	m := NewManager(varOrder)
	memo := make(map[pdag.Index]Ref)

	var walk func(idx pdag.Index) (Ref, error)
	walk = func(idx pdag.Index) (Ref, error) {
		if r, ok := memo[idx]; ok {
			return r, nil
		}
		n, err := g.Node(idx)
		if err != nil {
			return Ref{}, err
		}
		var result Ref
		switch n.Kind {
		case pdag.KindFalse:
			result = False
		case pdag.KindTrue:
			result = True
		case pdag.KindVar:
			result, err = m.Ithvar(n.VarID)
			if err != nil {
				return Ref{}, err
			}
		case pdag.KindAnd:
			result = True
			for _, a := range n.Args {
				child, err := walk(a.Index)
				if err != nil {
					return Ref{}, err
				}
				result = m.Apply(result, negIf(child, a.Neg), OpAnd)
			}
		case pdag.KindOr:
			result = False
			for _, a := range n.Args {
				child, err := walk(a.Index)
				if err != nil {
					return Ref{}, err
				}
				result = m.Apply(result, negIf(child, a.Neg), OpOr)
			}
		case pdag.KindXor:
			result = False
			for _, a := range n.Args {
				child, err := walk(a.Index)
				if err != nil {
					return Ref{}, err
				}
				result = m.Apply(result, negIf(child, a.Neg), OpXor)
			}
		case pdag.KindAtLeast:
			args := make([]Ref, len(n.Args))
			for i, a := range n.Args {
				child, err := walk(a.Index)
				if err != nil {
					return Ref{}, err
				}
				args[i] = negIf(child, a.Neg)
			}
			result = m.atLeast(args, n.K)
		}
		memo[idx] = result
		return result, nil
	}

	root, err := walk(g.Root().Index)
	if err != nil {
		return nil, Ref{}, err
	}
	root = negIf(root, g.Root().Neg)
	return m, root, nil
}

func negIf(r Ref, neg bool) Ref {
	if neg {
		return r.Not()
	}
	return r
}

type atLeastKey struct {
	from, k int
}

// atLeast builds the threshold function "at least k of refs[from:]
// are true" via the standard Pascal's-triangle recursion
// ite(refs[from], atLeast(from+1,k-1), atLeast(from+1,k)), memoized
// on (from, k) since the same suffix/threshold pair recurs along many
// paths.
func (m *Manager) atLeast(refs []Ref, k int) Ref {
	memo := make(map[atLeastKey]Ref)
	var rec func(from, k int) Ref
	rec = func(from, k int) Ref {
		remaining := len(refs) - from
		if k <= 0 {
			return True
		}
		if k > remaining {
			return False
		}
		key := atLeastKey{from: from, k: k}
		if v, ok := memo[key]; ok {
			return v
		}
		withFirst := rec(from+1, k-1)
		withoutFirst := rec(from+1, k)
		res := m.iteLocked(refs[from], withFirst, withoutFirst)
		memo[key] = res
		return res
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return rec(0, k)
}
