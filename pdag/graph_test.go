package pdag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGate_AndOrFolding(t *testing.T) {
	g := NewGraph()
	a, err := g.NewVar("a", false)
	require.NoError(t, err)
	b, err := g.NewVar("b", false)
	require.NoError(t, err)

	and, err := g.NewGate(KindAnd, 0, []Edge{a, b})
	require.NoError(t, err)
	n, err := g.Node(and.Index)
	require.NoError(t, err)
	assert.Equal(t, KindAnd, n.Kind)
	assert.Len(t, n.Args, 2)

	// AND with a TRUE child folds the constant away.
	and2, err := g.NewGate(KindAnd, 0, []Edge{a, Pos(TrueIndex)})
	require.NoError(t, err)
	assert.Equal(t, a, and2)

	// AND containing a literal and its complement collapses to FALSE.
	contradiction, err := g.NewGate(KindAnd, 0, []Edge{a, a.Not()})
	require.NoError(t, err)
	assert.Equal(t, Pos(FalseIndex), contradiction)

	// OR containing a literal and its complement collapses to TRUE.
	tautology, err := g.NewGate(KindOr, 0, []Edge{b, b.Not()})
	require.NoError(t, err)
	assert.Equal(t, Pos(TrueIndex), tautology)
}

func TestNewGate_StructuralHashing(t *testing.T) {
	g := NewGraph()
	a, _ := g.NewVar("a", false)
	b, _ := g.NewVar("b", false)

	and1, err := g.NewGate(KindAnd, 0, []Edge{a, b})
	require.NoError(t, err)
	and2, err := g.NewGate(KindAnd, 0, []Edge{b, a})
	require.NoError(t, err)
	assert.Equal(t, and1, and2, "AND(a,b) and AND(b,a) must hash-cons to the same node")
}

func TestNewGate_AtLeastDegenerate(t *testing.T) {
	g := NewGraph()
	a, _ := g.NewVar("a", false)
	b, _ := g.NewVar("b", false)
	c, _ := g.NewVar("c", false)

	or1, err := g.NewGate(KindAtLeast, 1, []Edge{a, b, c})
	require.NoError(t, err)
	n, _ := g.Node(or1.Index)
	assert.Equal(t, KindOr, n.Kind)

	and1, err := g.NewGate(KindAtLeast, 3, []Edge{a, b, c})
	require.NoError(t, err)
	n2, _ := g.Node(and1.Index)
	assert.Equal(t, KindAnd, n2.Kind)

	_, err = g.NewGate(KindAtLeast, 0, []Edge{a, b, c})
	assert.ErrorIs(t, err, ErrBadAtLeast)
	_, err = g.NewGate(KindAtLeast, 4, []Edge{a, b, c})
	assert.ErrorIs(t, err, ErrBadAtLeast)
}

func TestFreeze_AcceptsSingleVariableRoot(t *testing.T) {
	g := NewGraph()
	a, _ := g.NewVar("a", false)
	g.SetRoot(a)
	require.NoError(t, g.Freeze())
	assert.True(t, g.IsFrozen())
}

func TestTopologicalOrder_ChildrenBeforeParents(t *testing.T) {
	g := NewGraph()
	a, _ := g.NewVar("a", false)
	b, _ := g.NewVar("b", false)
	and, err := g.NewGate(KindAnd, 0, []Edge{a, b})
	require.NoError(t, err)
	g.SetRoot(and)
	require.NoError(t, g.Freeze())

	order := g.TopologicalOrder()
	pos := make(map[Index]int, len(order))
	for i, idx := range order {
		pos[idx] = i
	}
	assert.Less(t, pos[a.Index], pos[and.Index])
	assert.Less(t, pos[b.Index], pos[and.Index])
}
