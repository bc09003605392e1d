package pdag

import (
	"fmt"
	"sort"
	"sync"
)

// Graph is the arena owning every Node of one analysis's propagation
// DAG. A Graph is built once, frozen, and then read by the
// preprocessor and decision-diagram engines; it is never shared
// across analyses (§5).
type Graph struct {
	mu       sync.RWMutex
	nodes    []Node
	hashcons map[string]Index
	varIndex map[string]Index // first-seen node index per variable id, for ordering hints
	root     Edge
	frozen   bool
}

// NewGraph returns an empty Graph with the two constant terminals
// pre-allocated at indices 0 (FALSE) and 1 (TRUE).
func NewGraph() *Graph {
	g := &Graph{
		hashcons: make(map[string]Index),
		varIndex: make(map[string]Index),
	}
	g.nodes = append(g.nodes, Node{Self: FalseIndex, Kind: KindFalse})
	g.nodes = append(g.nodes, Node{Self: TrueIndex, Kind: KindTrue})
	return g
}

func (g *Graph) node(i Index) *Node {
	return &g.nodes[i]
}

// Node returns a copy of the node at idx.
func (g *Graph) Node(idx Index) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if int(idx) < 0 || int(idx) >= len(g.nodes) {
		return Node{}, ErrUnknownNode
	}
	return g.nodes[idx], nil
}

// NumNodes returns the arena size, including the two terminals.
func (g *Graph) NumNodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// Root returns the edge to the top-event node. Meaningful only after
// SetRoot has been called (normally by Build).
func (g *Graph) Root() Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.root
}

// SetRoot designates e as the top-event edge.
func (g *Graph) SetRoot(e Edge) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.root = e
}

// NewVar returns the edge to the (structurally unique) leaf node for
// the given basic or house event id, allocating one on first use.
func (g *Graph) NewVar(id string, isHouse bool) (Edge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return Edge{}, ErrFrozen
	}
	key := fmt.Sprintf("V:%v:%s", isHouse, id)
	if idx, ok := g.hashcons[key]; ok {
		return Pos(idx), nil
	}
	idx := Index(len(g.nodes))
	g.nodes = append(g.nodes, Node{Self: idx, Kind: KindVar, VarID: id, IsHouse: isHouse})
	g.hashcons[key] = idx
	if _, seen := g.varIndex[id]; !seen {
		g.varIndex[id] = idx
	}
	return Pos(idx), nil
}

// NewGate folds constants and duplicate/complementary arguments, then
// looks the canonical (kind, k, sorted args) tuple up in the
// hash-cons table, returning the existing node's edge on a hit or
// allocating a new one on a miss. The returned Edge is never a
// reference to a NOT-shaped construct: NOT(x) is represented as
// Pos(x).Not() by the caller, never as its own node.
func (g *Graph) NewGate(kind Kind, k int, args []Edge) (Edge, error) {
	switch kind {
	case KindAnd, KindOr:
		return g.newAndOr(kind, args)
	case KindXor:
		return g.newXor(args)
	case KindAtLeast:
		return g.newAtLeast(k, args)
	default:
		return Edge{}, ErrBadArity
	}
}

func (g *Graph) newAndOr(kind Kind, args []Edge) (Edge, error) {
	identity, absorbing := TrueIndex, FalseIndex
	if kind == KindOr {
		identity, absorbing = FalseIndex, TrueIndex
	}

	filtered := args[:0:0]
	for _, a := range args {
		if a.Index == absorbing && !a.Neg || a.Index == identity && a.Neg {
			// literal equals the absorbing constant for this connective
			return Pos(absorbing), nil
		}
		if a.Index == identity && !a.Neg || a.Index == absorbing && a.Neg {
			// literal equals the identity constant: drop it
			continue
		}
		filtered = append(filtered, a)
	}

	// detect complementary pair -> whole gate collapses to the absorbing constant
	polarity := make(map[Index]bool, len(filtered))
	dedup := filtered[:0:0]
	for _, a := range filtered {
		if neg, ok := polarity[a.Index]; ok {
			if neg != a.Neg {
				return Pos(absorbing), nil
			}
			continue // exact duplicate, absorbed
		}
		polarity[a.Index] = a.Neg
		dedup = append(dedup, a)
	}

	if len(dedup) == 0 {
		return Pos(identity), nil
	}
	if len(dedup) == 1 {
		return dedup[0], nil
	}

	sort.Slice(dedup, func(i, j int) bool {
		if dedup[i].Index != dedup[j].Index {
			return dedup[i].Index < dedup[j].Index
		}
		return !dedup[i].Neg && dedup[j].Neg
	})

	return g.intern(kind, 0, dedup)
}

func (g *Graph) newXor(args []Edge) (Edge, error) {
	if len(args) == 0 {
		return Edge{}, ErrBadArity
	}
	// Fold constants: XOR with TRUE flips parity and removes the
	// constant; XOR with FALSE drops it.
	flip := false
	filtered := args[:0:0]
	for _, a := range args {
		if a.Index == TrueIndex {
			flip = !flip
			if a.Neg {
				flip = !flip
			}
			continue
		}
		if a.Index == FalseIndex {
			if a.Neg {
				flip = !flip
			}
			continue
		}
		filtered = append(filtered, a)
	}
	if len(filtered) == 0 {
		if flip {
			return Pos(TrueIndex), nil
		}
		return Pos(FalseIndex), nil
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].Index < filtered[j].Index })
	e, err := g.intern(KindXor, 0, filtered)
	if err != nil {
		return Edge{}, err
	}
	if flip {
		return e.Not(), nil
	}
	return e, nil
}

func (g *Graph) newAtLeast(k int, args []Edge) (Edge, error) {
	if k < 1 || k > len(args) {
		return Edge{}, ErrBadAtLeast
	}
	if k == 1 {
		return g.newAndOr(KindOr, args)
	}
	if k == len(args) {
		return g.newAndOr(KindAnd, args)
	}
	sorted := append(args[:0:0], args...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Index != sorted[j].Index {
			return sorted[i].Index < sorted[j].Index
		}
		return !sorted[i].Neg && sorted[j].Neg
	})
	return g.intern(KindAtLeast, k, sorted)
}

func (g *Graph) intern(kind Kind, k int, args []Edge) (Edge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return Edge{}, ErrFrozen
	}
	key := canonicalKey(kind, k, args)
	if idx, ok := g.hashcons[key]; ok {
		return Pos(idx), nil
	}
	idx := Index(len(g.nodes))
	g.nodes = append(g.nodes, Node{Self: idx, Kind: kind, K: k, Args: args})
	g.hashcons[key] = idx
	return Pos(idx), nil
}

func canonicalKey(kind Kind, k int, args []Edge) string {
	key := fmt.Sprintf("%d:%d", kind, k)
	for _, a := range args {
		key += fmt.Sprintf(":%d,%v", a.Index, a.Neg)
	}
	return key
}
