package bdd

// Ite computes ite(f,g,h) = (f & g) | (!f & h), the single primitive
// every other binary operation (§4.C) is expressed in terms of. The
// recursion picks the topmost variable among f, g and h, cofactors
// each operand on it, recurses on both branches, and rebuilds through
// the unique table — memoized by the exact (f,g,h) triple in
// iteMemo, the apply-cache of §4.C.
func (m *Manager) Ite(f, g, h Ref) Ref {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.iteLocked(f, g, h)
}

func (m *Manager) iteLocked(f, g, h Ref) Ref {
	if f == True {
		return g
	}
	if f == False {
		return h
	}
	if g == h {
		return g
	}
	if g == True && h == False {
		return f
	}
	if g == False && h == True {
		return f.Not()
	}

	key := iteKey{f: f, g: g, h: h}
	if v, ok := m.iteMemo[key]; ok {
		return v
	}

	top := minInt(m.varPosOf(f.Index), minInt(m.varPosOf(g.Index), m.varPosOf(h.Index)))
	f0, f1 := m.cofactorRef(f, top)
	g0, g1 := m.cofactorRef(g, top)
	h0, h1 := m.cofactorRef(h, top)

	low := m.iteLocked(f0, g0, h0)
	high := m.iteLocked(f1, g1, h1)
	res := m.mkNodeLocked(top, low, high)
	m.iteMemo[key] = res
	return res
}

// cofactorRef splits ref into its (low, high) restriction on the
// variable at varPos: if ref does not depend on that variable, both
// cofactors equal ref unchanged.
func (m *Manager) cofactorRef(ref Ref, varPos int) (low, high Ref) {
	if m.varPosOf(ref.Index) != varPos {
		return ref, ref
	}
	n := m.nodes[ref.Index]
	lo := Ref{Index: n.Low}
	hi := n.High
	if ref.Comp {
		lo = lo.Not()
		hi = hi.Not()
	}
	return lo, hi
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Apply performs the basic binary operations over BDDs via Ite,
// matching the operator set an importance cofactor-differencing pass
// needs (OpAndNot, used to compute f & !g without first negating and
// re-ANDing).
func (m *Manager) Apply(left, right Ref, op Operator) Ref {
	switch op {
	case OpAnd:
		return m.Ite(left, right, False)
	case OpOr:
		return m.Ite(left, True, right)
	case OpXor:
		return m.Ite(left, right.Not(), right)
	case OpAndNot:
		return m.Ite(left, right.Not(), False)
	default:
		return False
	}
}

// And and Or are thin convenience wrappers over Apply; complement is
// Ref.Not.
func (m *Manager) And(refs ...Ref) Ref {
	if len(refs) == 0 {
		return True
	}
	acc := refs[0]
	for _, r := range refs[1:] {
		acc = m.Apply(acc, r, OpAnd)
	}
	return acc
}

func (m *Manager) Or(refs ...Ref) Ref {
	if len(refs) == 0 {
		return False
	}
	acc := refs[0]
	for _, r := range refs[1:] {
		acc = m.Apply(acc, r, OpOr)
	}
	return acc
}
