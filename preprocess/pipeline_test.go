package preprocess

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scram-ng/scram-core/model"
	"github.com/scram-ng/scram-core/pdag"
)

// buildDistributableTree assembles OR(AND(a,b), AND(a,c), AND(a,d)) so the
// distribution pass has a literal (a) common to every AND child.
func buildDistributableTree(t *testing.T) *pdag.Graph {
	t.Helper()
	g := pdag.NewGraph()
	a, _ := g.NewVar("a", false)
	b, _ := g.NewVar("b", false)
	c, _ := g.NewVar("c", false)
	d, _ := g.NewVar("d", false)

	and1, err := g.NewGate(pdag.KindAnd, 0, []pdag.Edge{a, b})
	require.NoError(t, err)
	and2, err := g.NewGate(pdag.KindAnd, 0, []pdag.Edge{a, c})
	require.NoError(t, err)
	and3, err := g.NewGate(pdag.KindAnd, 0, []pdag.Edge{a, d})
	require.NoError(t, err)
	root, err := g.NewGate(pdag.KindOr, 0, []pdag.Edge{and1, and2, and3})
	require.NoError(t, err)
	g.SetRoot(root)
	require.NoError(t, g.Freeze())
	return g
}

func TestRun_DistributionFactorsCommonLiteral(t *testing.T) {
	g := buildDistributableTree(t)
	res, err := Run(g, DefaultConfig())
	require.NoError(t, err)

	n, err := res.Graph.Node(res.Graph.Root().Index)
	require.NoError(t, err)
	assert.Equal(t, pdag.KindAnd, n.Kind, "common literal a should be factored to the top")
}

func TestRun_SemanticPreservation(t *testing.T) {
	g := buildDistributableTree(t)
	res, err := Run(g, DefaultConfig())
	require.NoError(t, err)

	vars := []string{"a", "b", "c", "d"}
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		assignment := make(map[string]bool, len(vars))
		for _, v := range vars {
			assignment[v] = rng.Intn(2) == 1
		}
		want := g.Eval(g.Root(), assignment)
		got := res.Graph.Eval(res.Graph.Root(), assignment)
		assert.Equal(t, want, got, "assignment %v", assignment)
	}
}

func TestRun_ModuleDetection(t *testing.T) {
	m := model.NewModel("t", "top")
	for _, id := range []string{"a", "b", "c", "d"} {
		_ = m.AddBasicEvent(&model.BasicEvent{ID: id, Probability: model.Constant{P: 0.1}})
	}
	_ = m.AddGate(&model.Gate{ID: "sub", Connective: model.OR, Args: []model.Reference{
		{Kind: model.RefBasicEvent, ID: "c"},
		{Kind: model.RefBasicEvent, ID: "d"},
	}})
	_ = m.AddGate(&model.Gate{ID: "top", Connective: model.AND, Args: []model.Reference{
		{Kind: model.RefBasicEvent, ID: "a"},
		{Kind: model.RefBasicEvent, ID: "b"},
		{Kind: model.RefGate, ID: "sub"},
	}})
	require.NoError(t, m.Validate())
	g, err := pdag.Build(m)
	require.NoError(t, err)

	res, err := Run(g, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, res.Modules, 1)
	assert.ElementsMatch(t, []string{"c", "d"}, res.Modules[0].Variables)
}

func TestRun_ShortCircuitsOnConstantTop(t *testing.T) {
	g := pdag.NewGraph()
	a, _ := g.NewVar("a", false)
	contradiction, err := g.NewGate(pdag.KindAnd, 0, []pdag.Edge{a, a.Not()})
	require.NoError(t, err)
	g.SetRoot(contradiction)
	require.NoError(t, g.Freeze())

	res, err := Run(g, DefaultConfig())
	require.NoError(t, err)
	assert.True(t, res.ShortCircuit)
}
