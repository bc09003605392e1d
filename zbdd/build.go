package zbdd

import (
	"math/bits"

	"github.com/scram-ng/scram-core/errs"
	"github.com/scram-ng/scram-core/pdag"
)

// VariableOrder derives the flat, signed ZBDD variable order from g:
// two Literals (positive and negative) per basic/house event, in
// g.Variables()' first-occurrence order. Unlike bdd.VariableOrder it
// does not group module variables into contiguous blocks, so the two
// orders differ when modules are passed to bdd.VariableOrder. Build requires this order, or one derived the same
// way, to be supplied up front (§4.D: "the variable order is fixed
// for the Manager's lifetime").
func VariableOrder(g *pdag.Graph) []Literal {
	ids := g.Variables()
	order := make([]Literal, 0, 2*len(ids))
	for _, id := range ids {
		order = append(order, Literal{ID: id}, Literal{ID: id, Neg: true})
	}
	return order
}

// Build translates g into a ZBDD over m representing, for the subtree
// rooted at g's root, the family of minimal-or-unreduced products
// (conjunctions of literals) satisfying it: AND becomes Product, OR
// becomes Union, ATLEAST(k,n) becomes the union of its C(n,k)
// k-subsets, and XOR becomes the union of the products of its
// odd-sized argument subsets (the arguments left out of a subset are
// not negated in that product). The
// result is NOT minimized; call Manager.Minimize on the returned
// Index to get minimal cut sets.
//
// Edge.Neg is only meaningful on edges into a KindVar node: by the
// time a graph reaches this package, preprocessing's De Morgan pass
// must already have sunk every other negation to a literal (§4.A). An
// edge into an AND/OR/ATLEAST/XOR node with Neg set is rejected.
func Build(g *pdag.Graph, order []Literal) (*Manager, Index, error) {
	m := NewManager(order)
	memo := make(map[pdag.Index]Index)
	idx, err := build(m, g, g.Root(), memo)
	if err != nil {
		return nil, 0, err
	}
	return m, idx, nil
}

func build(m *Manager, g *pdag.Graph, e pdag.Edge, memo map[pdag.Index]Index) (Index, error) {
	if e.Index == pdag.FalseIndex {
		return terminalIndex(false, e.Neg), nil
	}
	if e.Index == pdag.TrueIndex {
		return terminalIndex(true, e.Neg), nil
	}

	n, err := g.Node(e.Index)
	if err != nil {
		return 0, err
	}

	if n.Kind == pdag.KindVar {
		lit := Literal{ID: n.VarID, Neg: e.Neg}
		idx, err := m.Literal(lit)
		if err != nil {
			return 0, errs.Logicf("zbdd.build", n.VarID, "variable not in ZBDD order: %v", err)
		}
		return idx, nil
	}

	if e.Neg {
		return 0, errs.Logicf("zbdd.build", n.VarID, "gate %d referenced with a complement edge; De Morgan should have removed this", e.Index)
	}

	if cached, ok := memo[e.Index]; ok {
		return cached, nil
	}

	var result Index
	switch n.Kind {
	case pdag.KindAnd:
		result = BaseIndex
		for _, arg := range n.Args {
			child, err := build(m, g, arg, memo)
			if err != nil {
				return 0, err
			}
			result = m.Product(result, child)
		}
	case pdag.KindOr:
		result = EmptyIndex
		for _, arg := range n.Args {
			child, err := build(m, g, arg, memo)
			if err != nil {
				return 0, err
			}
			result = m.Union(result, child)
		}
	case pdag.KindAtLeast:
		children := make([]Index, len(n.Args))
		for i, arg := range n.Args {
			c, err := build(m, g, arg, memo)
			if err != nil {
				return 0, err
			}
			children[i] = c
		}
		result = atLeastUnion(m, children, n.K)
	case pdag.KindXor:
		children := make([]Index, len(n.Args))
		for i, arg := range n.Args {
			c, err := build(m, g, arg, memo)
			if err != nil {
				return 0, err
			}
			children[i] = c
		}
		result = xorParity(m, children)
	default:
		return 0, errs.Logicf("zbdd.build", n.VarID, "unsupported gate kind %v", n.Kind)
	}

	memo[e.Index] = result
	return result, nil
}

// atLeastUnion unions the products of every k-subset of children. It
// visits all 2^n argument masks; no arity bound is enforced on ATLEAST
// gates, so the cost grows exponentially with n. §4.D accepts the
// combinatorial cost here in exchange for not needing a dedicated
// threshold encoding.
func atLeastUnion(m *Manager, children []Index, k int) Index {
	n := len(children)
	result := EmptyIndex
	for mask := 0; mask < (1 << n); mask++ {
		if bits.OnesCount(uint(mask)) != k {
			continue
		}
		product := BaseIndex
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				product = m.Product(product, children[i])
			}
		}
		result = m.Union(result, product)
	}
	return result
}

// xorParity folds odd-arity-satisfied combinations of children: the
// union, over every subset of odd size, of the product of that
// subset's families.
func xorParity(m *Manager, children []Index) Index {
	n := len(children)
	result := EmptyIndex
	for mask := 1; mask < (1 << n); mask++ {
		if bits.OnesCount(uint(mask))%2 == 0 {
			continue
		}
		product := BaseIndex
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				product = m.Product(product, children[i])
			}
		}
		result = m.Union(result, product)
	}
	return result
}

// terminalIndex resolves a constant's Index, given its boolean value
// and whether the edge referencing it is complemented.
func terminalIndex(value, neg bool) Index {
	if value != neg {
		return BaseIndex
	}
	return EmptyIndex
}
