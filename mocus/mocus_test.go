package mocus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scram-ng/scram-core/pdag"
	"github.com/scram-ng/scram-core/zbdd"
)

func TestExpand_AndOr(t *testing.T) {
	g := pdag.NewGraph()
	a, _ := g.NewVar("a", false)
	b, _ := g.NewVar("b", false)
	c, _ := g.NewVar("c", false)
	and, err := g.NewGate(pdag.KindAnd, 0, []pdag.Edge{a, b})
	require.NoError(t, err)
	or, err := g.NewGate(pdag.KindOr, 0, []pdag.Edge{and, c})
	require.NoError(t, err)
	g.SetRoot(or)
	require.NoError(t, g.Freeze())

	res, err := Expand(context.Background(), g, 0)
	require.NoError(t, err)
	assert.False(t, res.CutoffHit)

	products := res.Manager.Products(res.Family)
	assert.ElementsMatch(t, []zbdd.Product{
		{{ID: "a"}, {ID: "b"}},
		{{ID: "c"}},
	}, products)
}

func TestExpand_CutoffReported(t *testing.T) {
	g := pdag.NewGraph()
	a, _ := g.NewVar("a", false)
	b, _ := g.NewVar("b", false)
	c, _ := g.NewVar("c", false)
	and, err := g.NewGate(pdag.KindAnd, 0, []pdag.Edge{a, b, c})
	require.NoError(t, err)
	g.SetRoot(and)
	require.NoError(t, g.Freeze())

	res, err := Expand(context.Background(), g, 2)
	require.NoError(t, err)
	assert.True(t, res.CutoffHit)
	assert.Empty(t, res.Manager.Products(res.Family))
}

func TestExpand_CancelledContext(t *testing.T) {
	g := pdag.NewGraph()
	a, _ := g.NewVar("a", false)
	g.SetRoot(a)
	require.NoError(t, g.Freeze())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Expand(ctx, g, 0)
	require.Error(t, err)
}

func TestExpand_MatchesFullMinimizeWithNoCutoff(t *testing.T) {
	g := pdag.NewGraph()
	a, _ := g.NewVar("a", false)
	b, _ := g.NewVar("b", false)
	c, _ := g.NewVar("c", false)
	ab, err := g.NewGate(pdag.KindAnd, 0, []pdag.Edge{a, b})
	require.NoError(t, err)
	abc, err := g.NewGate(pdag.KindAnd, 0, []pdag.Edge{ab, c})
	require.NoError(t, err)
	top, err := g.NewGate(pdag.KindOr, 0, []pdag.Edge{ab, abc})
	require.NoError(t, err)
	g.SetRoot(top)
	require.NoError(t, g.Freeze())

	res, err := Expand(context.Background(), g, 0)
	require.NoError(t, err)

	full, idx, err := zbdd.Build(g, zbdd.VariableOrder(g))
	require.NoError(t, err)
	want := full.Products(full.Minimize(idx))

	assert.ElementsMatch(t, want, res.Manager.Products(res.Family))
}
