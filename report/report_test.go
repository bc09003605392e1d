package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scram-ng/scram-core/errs"
	"github.com/scram-ng/scram-core/mocus"
	"github.com/scram-ng/scram-core/model"
	"github.com/scram-ng/scram-core/pdag"
)

func TestBuildCutSets_OrderedByProbability(t *testing.T) {
	mdl := model.NewModel("t", "top")
	require.NoError(t, mdl.AddBasicEvent(&model.BasicEvent{ID: "a", Probability: model.Constant{P: 0.3}}))
	require.NoError(t, mdl.AddBasicEvent(&model.BasicEvent{ID: "b", Probability: model.Constant{P: 0.01}}))
	require.NoError(t, mdl.AddGate(&model.Gate{ID: "top", Connective: model.OR, Args: []model.Reference{
		{Kind: model.RefBasicEvent, ID: "a"},
		{Kind: model.RefBasicEvent, ID: "b"},
	}}))
	g, err := pdag.Build(mdl)
	require.NoError(t, err)
	require.NoError(t, g.Freeze())

	res, err := mocus.Expand(context.Background(), g, 0)
	require.NoError(t, err)

	probs := map[string]float64{"a": 0.3, "b": 0.01}
	cutsets := BuildCutSets(res.Manager, res.Family, probs, 0.307)
	require.Len(t, cutsets, 2)
	assert.Equal(t, []string{"a"}, cutsets[0].Literals)
	assert.InDelta(t, 0.3, cutsets[0].Probability, 1e-9)
}

func TestYAMLSink_WritesReport(t *testing.T) {
	r := New("demo", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	r.TopEventProbability = 0.19
	r.Approximation = model.Exact
	r.WithWarnings(errs.Warnings{{Code: errs.WarnClampedToOne, Detail: "test"}})

	var buf bytes.Buffer
	require.NoError(t, YAMLSink{W: &buf}.Write(r))
	assert.Contains(t, buf.String(), "top_event_probability")
	assert.Contains(t, buf.String(), "run_id")
}

func TestConsoleSink_WritesSummary(t *testing.T) {
	r := New("demo", time.Now())
	r.TopEventProbability = 0.01
	r.Approximation = model.Exact
	var buf bytes.Buffer
	require.NoError(t, ConsoleSink{W: &buf}.Write(r))
	assert.Contains(t, buf.String(), "demo")
}
