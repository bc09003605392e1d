package zbdd

// NonSupersetsOf removes from family a every product that is a
// superset of (or equal to) some product in b. It is the workhorse
// behind Minimize: a product is non-minimal exactly when some other
// product in the same family is one of its subsets.
func (m *Manager) NonSupersetsOf(a, b Index) Index {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.nonSuperLocked(a, b)
}

func (m *Manager) nonSuperLocked(a, b Index) Index {
	if a == EmptyIndex {
		return EmptyIndex
	}
	if b == EmptyIndex {
		return a
	}
	if b == BaseIndex {
		// Every product is a superset of the empty product; nothing survives.
		return EmptyIndex
	}
	if a == b {
		return EmptyIndex
	}
	if a == BaseIndex {
		// The empty product is a superset of nothing but itself, so it
		// survives unless b contains it too: following b's Else edges
		// ends at Base exactly when the empty product is in b.
		for b != EmptyIndex && b != BaseIndex {
			b = m.nodes[b].Else
		}
		if b == BaseIndex {
			return EmptyIndex
		}
		return BaseIndex
	}
	key := pairKey{a, b}
	if v, ok := m.nonSuperMemo[key]; ok {
		return v
	}
	aPos, bPos := m.varPosOf(a), m.varPosOf(b)
	var result Index
	switch {
	case aPos == bPos:
		an, bn := m.nodes[a], m.nodes[b]
		then := m.nonSuperLocked(m.nonSuperLocked(an.Then, bn.Then), bn.Else)
		els := m.nonSuperLocked(an.Else, bn.Else)
		result = m.mkNodeLocked(aPos, then, els)
	case aPos < bPos:
		an := m.nodes[a]
		result = m.mkNodeLocked(aPos, m.nonSuperLocked(an.Then, b), m.nonSuperLocked(an.Else, b))
	default:
		result = m.nonSuperLocked(a, m.nodes[b].Else)
	}
	m.nonSuperMemo[key] = result
	return result
}

// Minimize drops every non-minimal product from p, leaving the family
// of products none of which is a superset of another (§4.D, and the
// minimality property tested in §8).
func (m *Manager) Minimize(p Index) Index {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.minimizeLocked(p)
}

func (m *Manager) minimizeLocked(p Index) Index {
	if p == EmptyIndex || p == BaseIndex {
		return p
	}
	if v, ok := m.minimalMemo[p]; ok {
		return v
	}
	n := m.nodes[p]
	then := m.minimizeLocked(n.Then)
	els := m.minimizeLocked(n.Else)
	then = m.nonSuperLocked(then, els)
	result := m.mkNodeLocked(n.VarPos, then, els)
	m.minimalMemo[p] = result
	return result
}

// Subsume is an alias for Minimize kept for callers that think of the
// operation as "remove subsumed products" rather than "keep the
// minimal family" — both names appear in the ZDD literature.
func (m *Manager) Subsume(p Index) Index {
	return m.Minimize(p)
}
