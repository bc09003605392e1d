package importance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scram-ng/scram-core/bdd"
	"github.com/scram-ng/scram-core/mocus"
	"github.com/scram-ng/scram-core/pdag"
)

func buildOr(t *testing.T) (*pdag.Graph, []string) {
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

func TestFromBDD_OrGate(t *testing.T) {
	g, order := buildOr(t)
	bm, root, err := bdd.Build(g, order)
	require.NoError(t, err)

	probs := map[string]float64{"a": 0.1, "b": 0.1}
	top, err := bm.Probability(root, probs)
	require.NoError(t, err)
	bm.InvalidateProbabilityCache()

	f, err := FromBDD(bm, root, "a", 0.1, top, probs)
	require.NoError(t, err)

	// P(top|a=1)=1, P(top|a=0)=0.1, so MIF = 0.9.
	assert.InDelta(t, 0.9, f.MIF, 1e-9)
	assert.InDelta(t, 1.0, f.RAW*top, 1e-9)
	assert.InDelta(t, top/0.1, f.RRW, 1e-9)
}

func TestFussellVesely_OrGate(t *testing.T) {
	g, _ := buildOr(t)
	res, err := mocus.Expand(context.Background(), g, 0)
	require.NoError(t, err)

	probs := map[string]float64{"a": 0.1, "b": 0.1}
	top := 0.19
	dif, err := FussellVesely(res.Manager, res.Family, "a", probs, top)
	require.NoError(t, err)
	assert.InDelta(t, 0.1/top, dif, 1e-9)
}
