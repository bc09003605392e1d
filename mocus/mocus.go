package mocus

import (
	"context"

	"github.com/scram-ng/scram-core/errs"
	"github.com/scram-ng/scram-core/pdag"
	"github.com/scram-ng/scram-core/zbdd"
)

// Result carries the expanded, minimized cut-set family plus whatever
// the expansion had to report about itself.
type Result struct {
	Manager   *zbdd.Manager
	Family    zbdd.Index
	CutoffHit bool
}

// Expand computes the cut sets of g under a product-size limit.
//
// Steps:
//  1. Derive the signed ZBDD variable order from g.
//  2. Walk g bottom-up (post-order): AND nodes combine children by
//     zbdd.Product, OR nodes by zbdd.Union, ATLEAST/XOR nodes expand
//     the same way zbdd.Build does.
//  3. After every gate, minimize the intermediate family and prune any
//     product longer than maxProductSize, recording CutoffHit if
//     anything was discarded.
//  4. Check ctx between gates so a deadline or cancellation stops the
//     walk without a partial, misleadingly-complete result.
//
// With maxProductSize <= 0 (no limit), Expand's result is exactly
// zbdd.Minimize(zbdd.Build(g)) — the difference is only in how the
// intermediate ZBDDs are kept small along the way.
func Expand(ctx context.Context, g *pdag.Graph, maxProductSize int) (*Result, error) {
	order := zbdd.VariableOrder(g)
	m := zbdd.NewManager(order)
	memo := make(map[pdag.Index]zbdd.Index)
	cutoff := false

	idx, err := expand(ctx, m, g, g.Root(), memo, maxProductSize, &cutoff)
	if err != nil {
		return nil, err
	}

	return &Result{Manager: m, Family: idx, CutoffHit: cutoff}, nil
}

func expand(ctx context.Context, m *zbdd.Manager, g *pdag.Graph, e pdag.Edge, memo map[pdag.Index]zbdd.Index, maxSize int, cutoff *bool) (zbdd.Index, error) {
	if err := ctx.Err(); err != nil {
		return 0, errs.ErrCancelled
	}

	if e.Index == pdag.FalseIndex {
		return terminal(false, e.Neg), nil
	}
	if e.Index == pdag.TrueIndex {
		return terminal(true, e.Neg), nil
	}

	n, err := g.Node(e.Index)
	if err != nil {
		return 0, err
	}

	if n.Kind == pdag.KindVar {
		lit, err := m.Literal(zbdd.Literal{ID: n.VarID, Neg: e.Neg})
		if err != nil {
			return 0, errs.Logicf("mocus.expand", n.VarID, "variable not in ZBDD order: %v", err)
		}
		return lit, nil
	}

	if e.Neg {
		return 0, errs.Logicf("mocus.expand", n.VarID, "gate %d referenced with a complement edge", e.Index)
	}

	if cached, ok := memo[e.Index]; ok {
		return cached, nil
	}

	children := make([]zbdd.Index, len(n.Args))
	for i, arg := range n.Args {
		c, err := expand(ctx, m, g, arg, memo, maxSize, cutoff)
		if err != nil {
			return 0, err
		}
		children[i] = c
	}

	var result zbdd.Index
	switch n.Kind {
	case pdag.KindAnd:
		result = zbdd.BaseIndex
		for _, c := range children {
			result = m.Product(result, c)
			result = reduce(m, result, maxSize, cutoff)
		}
	case pdag.KindOr:
		result = zbdd.EmptyIndex
		for _, c := range children {
			result = m.Union(result, c)
		}
		result = reduce(m, result, maxSize, cutoff)
	case pdag.KindAtLeast:
		result = combineAtLeast(m, children, n.K, maxSize, cutoff)
	case pdag.KindXor:
		result = combineXor(m, children, maxSize, cutoff)
	default:
		return 0, errs.Logicf("mocus.expand", n.VarID, "unsupported gate kind %v", n.Kind)
	}

	memo[e.Index] = result
	return result, nil
}

// reduce minimizes a family and applies the size cutoff, the two
// housekeeping steps Expand runs after every gate combination.
func reduce(m *zbdd.Manager, idx zbdd.Index, maxSize int, cutoff *bool) zbdd.Index {
	idx = m.Minimize(idx)
	if maxSize > 0 {
		pruned, hit := m.Prune(idx, maxSize)
		if hit {
			*cutoff = true
		}
		idx = pruned
	}
	return idx
}

func combineAtLeast(m *zbdd.Manager, children []zbdd.Index, k, maxSize int, cutoff *bool) zbdd.Index {
	n := len(children)
	result := zbdd.EmptyIndex
	for mask := 0; mask < (1 << n); mask++ {
		if popcount(mask) != k {
			continue
		}
		product := zbdd.BaseIndex
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				product = m.Product(product, children[i])
			}
		}
		result = m.Union(result, product)
	}
	return reduce(m, result, maxSize, cutoff)
}

func combineXor(m *zbdd.Manager, children []zbdd.Index, maxSize int, cutoff *bool) zbdd.Index {
	n := len(children)
	result := zbdd.EmptyIndex
	for mask := 1; mask < (1 << n); mask++ {
		if popcount(mask)%2 == 0 {
			continue
		}
		product := zbdd.BaseIndex
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				product = m.Product(product, children[i])
			}
		}
		result = m.Union(result, product)
	}
	return reduce(m, result, maxSize, cutoff)
}

func popcount(mask int) int {
	count := 0
	for mask != 0 {
		mask &= mask - 1
		count++
	}
	return count
}

func terminal(value, neg bool) zbdd.Index {
	if value != neg {
		return zbdd.BaseIndex
	}
	return zbdd.EmptyIndex
}
