package zbdd

import "sort"

// Product is one element of a family: a conjunction of signed
// literals, reconstructed from a ZBDD path from root to Base.
type Product []Literal

// Products enumerates every product in the family rooted at idx, each
// sorted by the Manager's variable order for a deterministic String
// form. Intended for reporting (§6) and tests; not for hot paths —
// prefer staying in ZBDD form (Size, probability estimators) when the
// family may be large.
func (m *Manager) Products(idx Index) []Product {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Product
	var walk func(idx Index, acc []Literal)
	walk = func(idx Index, acc []Literal) {
		switch idx {
		case EmptyIndex:
			return
		case BaseIndex:
			p := make(Product, len(acc))
			copy(p, acc)
			out = append(out, p)
			return
		}
		n := m.nodes[idx]
		lit := m.varOrder[n.VarPos]
		walk(n.Then, append(acc, lit))
		walk(n.Else, acc)
	}
	walk(idx, nil)

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		for k := 0; k < len(a) && k < len(b); k++ {
			pa, pb := m.varPos[a[k]], m.varPos[b[k]]
			if pa != pb {
				return pa < pb
			}
		}
		return len(a) < len(b)
	})
	return out
}

// Count returns the number of products in the family rooted at idx
// without materializing them, walking the DAG with memoization.
func (m *Manager) Count(idx Index) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	memo := make(map[Index]int64)
	var count func(Index) int64
	count = func(idx Index) int64 {
		switch idx {
		case EmptyIndex:
			return 0
		case BaseIndex:
			return 1
		}
		if v, ok := memo[idx]; ok {
			return v
		}
		n := m.nodes[idx]
		v := count(n.Then) + count(n.Else)
		memo[idx] = v
		return v
	}
	return count(idx)
}
