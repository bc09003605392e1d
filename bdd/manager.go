package bdd

import (
	"fmt"
	"sync"
)

// Manager owns one analysis's node arena, unique-table, apply-cache
// and probability-cache. Managers are never shared across analyses
// (§5) and are safe for single-threaded use only; the locks here are
// uniform defensive locking even though a single analysis is
// documented to be synchronous, not an invitation to build the BDD
// itself from multiple goroutines.
type Manager struct {
	mu       sync.RWMutex
	nodes    []Node
	unique   map[nodeKey]Index
	applyMemo map[applyKey]Ref
	iteMemo   map[iteKey]Ref
	probCache map[Index]float64
	probValid bool

	varOrder []string
	varPos   map[string]int
}

type nodeKey struct {
	varPos int
	low    Index
	high   Ref
}

type applyKey struct {
	op          Operator
	left, right Ref
}

type iteKey struct {
	f, g, h Ref
}

// NewManager returns a Manager fixing the given variable order for
// the lifetime of the analysis; canonicity depends on this order
// never changing (§4.C).
func NewManager(varOrder []string) *Manager {
	pos := make(map[string]int, len(varOrder))
	for i, v := range varOrder {
		pos[v] = i
	}
	m := &Manager{
		unique:    make(map[nodeKey]Index),
		applyMemo: make(map[applyKey]Ref),
		iteMemo:   make(map[iteKey]Ref),
		varOrder:  varOrder,
		varPos:    pos,
	}
	// Reserve index 0 for the shared terminal; VarPos is unused for it.
	m.nodes = append(m.nodes, Node{Self: TerminalIndex, VarPos: len(varOrder)})
	return m
}

// VarOrder returns the fixed variable order.
func (m *Manager) VarOrder() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.varOrder))
	copy(out, m.varOrder)
	return out
}

// Size returns the number of live nodes, terminal included.
func (m *Manager) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.nodes)
}

func (m *Manager) node(idx Index) Node {
	return m.nodes[idx]
}

// Node returns a copy of the node at idx.
func (m *Manager) Node(idx Index) (Node, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if int(idx) < 0 || int(idx) >= len(m.nodes) {
		return Node{}, ErrUnknownNode
	}
	return m.nodes[idx], nil
}

// Ithvar returns the Ref for the i'th variable in the fixed order.
func (m *Manager) Ithvar(varID string) (Ref, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pos, ok := m.varPos[varID]
	if !ok {
		return Ref{}, ErrUnknownVar
	}
	return m.mkNodeLocked(pos, False, True), nil
}

// mkNode creates (or retrieves, from the unique table) the node for
// ite(var at varPos, high, low), applying the two reduction rules
// that make a BDD canonical: a node whose two children denote the
// same function collapses to that function (no node allocated), and a
// node whose low edge would be complemented is instead built with
// both children complemented and the complement pushed onto the
// returned Ref, so Low is always a regular edge in the unique-table
// key (§3's "complement-edge flag on high only").
func (m *Manager) mkNode(varPos int, low, high Ref) Ref {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mkNodeLocked(varPos, low, high)
}

func (m *Manager) mkNodeLocked(varPos int, low, high Ref) Ref {
	if low == high {
		return low
	}
	comp := low.Comp
	if comp {
		low = low.Not()
		high = high.Not()
	}
	key := nodeKey{varPos: varPos, low: low.Index, high: high}
	if idx, ok := m.unique[key]; ok {
		if comp {
			return Ref{Index: idx}.Not()
		}
		return Ref{Index: idx}
	}
	idx := Index(len(m.nodes))
	m.nodes = append(m.nodes, Node{Self: idx, VarPos: varPos, Low: low.Index, High: high})
	m.unique[key] = idx
	m.probValid = false
	if comp {
		return Ref{Index: idx}.Not()
	}
	return Ref{Index: idx}
}

func (m *Manager) varPosOf(idx Index) int {
	if idx == TerminalIndex {
		return len(m.varOrder)
	}
	return m.nodes[idx].VarPos
}

func (m *Manager) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fmt.Sprintf("bdd.Manager{nodes=%d, vars=%d}", len(m.nodes), len(m.varOrder))
}
