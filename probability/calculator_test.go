package probability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scram-ng/scram-core/bdd"
	"github.com/scram-ng/scram-core/mocus"
	"github.com/scram-ng/scram-core/model"
	"github.com/scram-ng/scram-core/pdag"
)

func buildAndOrModel(t *testing.T) (*model.Model, *pdag.Graph) {
	t.Helper()
	mdl := model.NewModel("t", "top")
	require.NoError(t, mdl.AddBasicEvent(&model.BasicEvent{ID: "a", Probability: model.Constant{P: 0.1}}))
	require.NoError(t, mdl.AddBasicEvent(&model.BasicEvent{ID: "b", Probability: model.Constant{P: 0.1}}))
	require.NoError(t, mdl.AddGate(&model.Gate{ID: "top", Connective: model.OR, Args: []model.Reference{
		{Kind: model.RefBasicEvent, ID: "a"},
		{Kind: model.RefBasicEvent, ID: "b"},
	}}))
	g, err := pdag.Build(mdl)
	require.NoError(t, err)
	require.NoError(t, g.Freeze())
	return mdl, g
}

func TestCalculate_ExactVsMCUB_Scenario2(t *testing.T) {
	mdl, g := buildAndOrModel(t)
	order := g.Variables()
	bm, root, err := bdd.Build(g, order)
	require.NoError(t, err)

	res, err := mocus.Expand(context.Background(), g, 0)
	require.NoError(t, err)

	settings := model.DefaultSettings()
	settings.Approximation = model.Exact
	exact, err := Calculate(settings, mdl, bm, root, res.Manager, res.Family, 1.0, false)
	require.NoError(t, err)
	assert.InDelta(t, 0.19, exact.Value, 1e-9)

	settings.Approximation = model.MCUB
	mcub, err := Calculate(settings, mdl, bm, root, res.Manager, res.Family, 1.0, false)
	require.NoError(t, err)
	assert.InDelta(t, 0.19, mcub.Value, 1e-9)

	settings.Approximation = model.RareEvent
	rare, err := Calculate(settings, mdl, bm, root, res.Manager, res.Family, 1.0, false)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, rare.Value, 1e-9)
}

func TestMission_StepsAcrossTime(t *testing.T) {
	mdl := model.NewModel("t", "top")
	require.NoError(t, mdl.AddBasicEvent(&model.BasicEvent{ID: "a", Probability: model.Exponential{Lambda: 0.1}}))
	require.NoError(t, mdl.AddGate(&model.Gate{ID: "top", Connective: model.NULLGate, Args: []model.Reference{
		{Kind: model.RefBasicEvent, ID: "a"},
	}}))
	g, err := pdag.Build(mdl)
	require.NoError(t, err)
	require.NoError(t, g.Freeze())

	bm, root, err := bdd.Build(g, g.Variables())
	require.NoError(t, err)

	profiles, err := Mission(mdl, bm, root, 10.0, 5)
	require.NoError(t, err)
	require.Len(t, profiles, 6)
	assert.Equal(t, 0.0, profiles[0].Time)
	assert.Equal(t, 10.0, profiles[5].Time)
	assert.Less(t, profiles[0].Value, profiles[5].Value)
}
