package bdd

// Probability computes the exact top-event probability of ref under
// the given per-variable probabilities (§4.C): P(1)=1, P(0)=0,
// P(ite(x,h,l)) = p(x)*P(h) + (1-p(x))*P(l), with the complement edge
// flipped on read. The recursion is linear in the live node count
// thanks to Manager's per-node probability cache, which is valid for
// one probability vector at a time — call InvalidateProbabilityCache
// between probability vectors (Monte Carlo does this once per trial).
func (m *Manager) Probability(ref Ref, probs map[string]float64) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.probCache == nil {
		m.probCache = make(map[Index]float64, len(m.nodes))
		m.probValid = true
	}
	p, err := m.probabilityOf(m.probCache, ref.Index, probs)
	if err != nil {
		return 0, err
	}
	if ref.Comp {
		return 1 - p, nil
	}
	return p, nil
}

// ProbabilityWithCache is Probability's concurrency-safe twin: it
// reads the Manager's structure under a shared lock but accumulates
// into the caller-owned cache instead of m.probCache, so independent
// goroutines evaluating independent probability vectors over the same
// immutable Manager (Monte Carlo trials) never contend on or
// corrupt each other's cached values.
func (m *Manager) ProbabilityWithCache(ref Ref, probs map[string]float64, cache map[Index]float64) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, err := m.probabilityOf(cache, ref.Index, probs)
	if err != nil {
		return 0, err
	}
	if ref.Comp {
		return 1 - p, nil
	}
	return p, nil
}

func (m *Manager) probabilityOf(cache map[Index]float64, idx Index, probs map[string]float64) (float64, error) {
	if idx == TerminalIndex {
		return 1.0, nil
	}
	if v, ok := cache[idx]; ok {
		return v, nil
	}
	n := m.nodes[idx]
	varID := m.varOrder[n.VarPos]
	p, ok := probs[varID]
	if !ok {
		return 0, ErrUnknownVar
	}
	pHigh, err := m.probabilityOf(cache, n.High.Index, probs)
	if err != nil {
		return 0, err
	}
	if n.High.Comp {
		pHigh = 1 - pHigh
	}
	pLow, err := m.probabilityOf(cache, n.Low, probs)
	if err != nil {
		return 0, err
	}
	result := p*pHigh + (1-p)*pLow
	cache[idx] = result
	return result, nil
}

// InvalidateProbabilityCache discards all cached per-node
// probabilities. Call this whenever the probability vector changes,
// e.g. between Monte Carlo trials or between SIL time buckets.
func (m *Manager) InvalidateProbabilityCache() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.probCache = nil
	m.probValid = false
}
