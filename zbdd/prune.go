package zbdd

// Prune removes every product longer than maxSize literals from the
// family rooted at idx, reporting whether anything was discarded.
// MOCUS calls this between gate combinations to enforce
// model.Settings.ProductSizeLimit (§4.E: "cutoffs must be reported to
// the caller").
func (m *Manager) Prune(idx Index, maxSize int) (Index, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	memo := make(map[pruneKey]Index)
	cut := false
	result := m.pruneLocked(idx, maxSize, memo, &cut)
	if cut {
		m.markCutoff()
	}
	return result, cut
}

type pruneKey struct {
	idx     Index
	budget  int
}

func (m *Manager) pruneLocked(idx Index, budget int, memo map[pruneKey]Index, cut *bool) Index {
	if idx == EmptyIndex {
		return EmptyIndex
	}
	if idx == BaseIndex {
		return BaseIndex
	}
	if budget <= 0 {
		// Only the empty remainder still fits; keep it if this
		// sub-family holds it (its Else chain ends at Base).
		*cut = true
		for idx != EmptyIndex && idx != BaseIndex {
			idx = m.nodes[idx].Else
		}
		return idx
	}
	key := pruneKey{idx: idx, budget: budget}
	if v, ok := memo[key]; ok {
		return v
	}
	n := m.nodes[idx]
	then := m.pruneLocked(n.Then, budget-1, memo, cut)
	els := m.pruneLocked(n.Else, budget, memo, cut)
	result := m.mkNodeLocked(n.VarPos, then, els)
	memo[key] = result
	return result
}
