package pdag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scram-ng/scram-core/model"
)

func twoEventModel(connective model.Connective) *model.Model {
	m := model.NewModel("t", "top")
	_ = m.AddBasicEvent(&model.BasicEvent{ID: "a", Probability: model.Constant{P: 0.1}})
	_ = m.AddBasicEvent(&model.BasicEvent{ID: "b", Probability: model.Constant{P: 0.1}})
	_ = m.AddGate(&model.Gate{
		ID:         "top",
		Connective: connective,
		Args: []model.Reference{
			{Kind: model.RefBasicEvent, ID: "a"},
			{Kind: model.RefBasicEvent, ID: "b"},
		},
	})
	return m
}

func TestBuild_AndOr(t *testing.T) {
	for _, c := range []model.Connective{model.AND, model.OR} {
		m := twoEventModel(c)
		require.NoError(t, m.Validate())
		g, err := Build(m)
		require.NoError(t, err)
		assert.True(t, g.IsFrozen())
		n, err := g.Node(g.Root().Index)
		require.NoError(t, err)
		if c == model.AND {
			assert.Equal(t, KindAnd, n.Kind)
		} else {
			assert.Equal(t, KindOr, n.Kind)
		}
	}
}

func TestBuild_Not(t *testing.T) {
	m := model.NewModel("t", "top")
	_ = m.AddBasicEvent(&model.BasicEvent{ID: "a", Probability: model.Constant{P: 0.3}})
	_ = m.AddGate(&model.Gate{
		ID:         "top",
		Connective: model.NOT,
		Args:       []model.Reference{{Kind: model.RefBasicEvent, ID: "a"}},
	})
	g, err := Build(m)
	require.NoError(t, err)
	assert.True(t, g.Root().Neg)
}

func TestBuild_CycleDetected(t *testing.T) {
	m := model.NewModel("t", "g1")
	_ = m.AddGate(&model.Gate{ID: "g1", Connective: model.AND, Args: []model.Reference{
		{Kind: model.RefGate, ID: "g2"},
	}})
	_ = m.AddGate(&model.Gate{ID: "g2", Connective: model.AND, Args: []model.Reference{
		{Kind: model.RefGate, ID: "g1"},
	}})
	_, err := Build(m)
	require.Error(t, err)
}

func TestBuild_Imply(t *testing.T) {
	m := model.NewModel("t", "top")
	_ = m.AddBasicEvent(&model.BasicEvent{ID: "a", Probability: model.Constant{P: 0.2}})
	_ = m.AddBasicEvent(&model.BasicEvent{ID: "b", Probability: model.Constant{P: 0.2}})
	_ = m.AddGate(&model.Gate{
		ID:         "top",
		Connective: model.IMPLY,
		Args: []model.Reference{
			{Kind: model.RefBasicEvent, ID: "a"},
			{Kind: model.RefBasicEvent, ID: "b"},
		},
	})
	g, err := Build(m)
	require.NoError(t, err)
	n, err := g.Node(g.Root().Index)
	require.NoError(t, err)
	assert.Equal(t, KindOr, n.Kind)
}
