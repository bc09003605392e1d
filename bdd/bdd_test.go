package bdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scram-ng/scram-core/pdag"
)

func andGraph(t *testing.T) (*pdag.Graph, []string) {
	t.Helper()
	g := pdag.NewGraph()
	a, _ := g.NewVar("a", false)
	b, _ := g.NewVar("b", false)
	and, err := g.NewGate(pdag.KindAnd, 0, []pdag.Edge{a, b})
	require.NoError(t, err)
	g.SetRoot(and)
	require.NoError(t, g.Freeze())
	return g, []string{"a", "b"}
}

func orGraph(t *testing.T) (*pdag.Graph, []string) {
	t.Helper()
	g := pdag.NewGraph()
	a, _ := g.NewVar("a", false)
	b, _ := g.NewVar("b", false)
	or, err := g.NewGate(pdag.KindOr, 0, []pdag.Edge{a, b})
	require.NoError(t, err)
	g.SetRoot(or)
	require.NoError(t, g.Freeze())
	return g, []string{"a", "b"}
}

func TestBuild_AndProbability_Scenario1(t *testing.T) {
	g, order := andGraph(t)
	m, root, err := Build(g, order)
	require.NoError(t, err)
	p, err := m.Probability(root, map[string]float64{"a": 0.1, "b": 0.1})
	require.NoError(t, err)
	assert.InDelta(t, 0.01, p, 1e-9)
}

func TestBuild_OrProbability_Scenario2(t *testing.T) {
	g, order := orGraph(t)
	m, root, err := Build(g, order)
	require.NoError(t, err)
	p, err := m.Probability(root, map[string]float64{"a": 0.1, "b": 0.1})
	require.NoError(t, err)
	assert.InDelta(t, 0.19, p, 1e-9)
}

func TestBuild_NotProbability_Scenario5(t *testing.T) {
	g := pdag.NewGraph()
	a, _ := g.NewVar("a", false)
	g.SetRoot(a.Not())
	require.NoError(t, g.Freeze())
	m, root, err := Build(g, []string{"a"})
	require.NoError(t, err)
	p, err := m.Probability(root, map[string]float64{"a": 0.3})
	require.NoError(t, err)
	assert.InDelta(t, 0.7, p, 1e-9)
}

func TestCanonicity_SameFunctionSameRef(t *testing.T) {
	varOrder := []string{"a", "b"}
	m := NewManager(varOrder)
	a, err := m.Ithvar("a")
	require.NoError(t, err)
	b, err := m.Ithvar("b")
	require.NoError(t, err)

	ab1 := m.Apply(a, b, OpAnd)
	ba1 := m.Apply(b, a, OpAnd)
	assert.Equal(t, ab1, ba1, "AND(a,b) and AND(b,a) must be the same Ref")
}

func TestAtLeast_TwoOfThree(t *testing.T) {
	g := pdag.NewGraph()
	a, _ := g.NewVar("a", false)
	b, _ := g.NewVar("b", false)
	c, _ := g.NewVar("c", false)
	atl, err := g.NewGate(pdag.KindAtLeast, 2, []pdag.Edge{a, b, c})
	require.NoError(t, err)
	g.SetRoot(atl)
	require.NoError(t, g.Freeze())

	m, root, err := Build(g, []string{"a", "b", "c"})
	require.NoError(t, err)

	for _, tc := range []struct {
		a, b, c bool
		want    bool
	}{
		{true, true, false, true},
		{true, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
	} {
		m.InvalidateProbabilityCache()
		p, err := m.Probability(root, map[string]float64{
			"a": boolP(tc.a), "b": boolP(tc.b), "c": boolP(tc.c),
		})
		require.NoError(t, err)
		if tc.want {
			assert.Equal(t, 1.0, p)
		} else {
			assert.Equal(t, 0.0, p)
		}
	}
}

func boolP(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func TestCofactor_RestrictsVariable(t *testing.T) {
	g, order := andGraph(t)
	m, root, err := Build(g, order)
	require.NoError(t, err)

	restricted, err := m.Cofactor(root, "a", true)
	require.NoError(t, err)
	p, err := m.Probability(restricted, map[string]float64{"b": 0.4})
	require.NoError(t, err)
	assert.InDelta(t, 0.4, p, 1e-9)

	restrictedFalse, err := m.Cofactor(root, "a", false)
	require.NoError(t, err)
	p2, err := m.Probability(restrictedFalse, map[string]float64{"b": 0.4})
	require.NoError(t, err)
	assert.Equal(t, 0.0, p2)
}
