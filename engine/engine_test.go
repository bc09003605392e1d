package engine

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scram-ng/scram-core/model"
)

func buildSeriesModel(t *testing.T) *model.Model {
	t.Helper()
	mdl := model.NewModel("series", "top")
	require.NoError(t, mdl.AddBasicEvent(&model.BasicEvent{ID: "a", Probability: model.Constant{P: 0.1}}))
	require.NoError(t, mdl.AddBasicEvent(&model.BasicEvent{ID: "b", Probability: model.Constant{P: 0.2}}))
	require.NoError(t, mdl.AddGate(&model.Gate{ID: "top", Connective: model.OR, Args: []model.Reference{
		{Kind: model.RefBasicEvent, ID: "a"},
		{Kind: model.RefBasicEvent, ID: "b"},
	}}))
	return mdl
}

func TestEngine_FullLifecycle(t *testing.T) {
	mdl := buildSeriesModel(t)
	settings := model.DefaultSettings()
	settings.NumTrials = 20
	settings.SILBuckets = 2

	e, err := New(mdl, settings, ModeBDD, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, Built, e.State())

	ctx := context.Background()
	require.NoError(t, e.Preprocess(ctx))
	assert.Equal(t, Preprocessed, e.State())

	require.NoError(t, e.Compile(ctx))
	assert.Equal(t, Compiled, e.State())

	require.NoError(t, e.Analyze(ctx))
	assert.Equal(t, Analyzed, e.State())

	r, err := e.Report(time.Now())
	require.NoError(t, err)
	assert.Equal(t, Reported, e.State())
	assert.InDelta(t, 0.28, r.TopEventProbability, 1e-9)
	assert.NotEmpty(t, r.CutSets)
	assert.Len(t, r.Importance, 2)
	require.NotNil(t, r.Uncertainty)
	assert.Len(t, r.SIL, 2)
	assert.NotEmpty(t, r.SILFractions)
}

// buildNANDModel gives top = NAND(a, b): a non-coherent tree whose
// PDAG carries a complement edge into an AND node, exactly what
// sinkComplements must remove before mocus.Expand ever sees it.
func buildNANDModel(t *testing.T) *model.Model {
	t.Helper()
	mdl := model.NewModel("nand", "top")
	require.NoError(t, mdl.AddBasicEvent(&model.BasicEvent{ID: "a", Probability: model.Constant{P: 0.1}}))
	require.NoError(t, mdl.AddBasicEvent(&model.BasicEvent{ID: "b", Probability: model.Constant{P: 0.2}}))
	require.NoError(t, mdl.AddGate(&model.Gate{ID: "top", Connective: model.NAND, Args: []model.Reference{
		{Kind: model.RefBasicEvent, ID: "a"},
		{Kind: model.RefBasicEvent, ID: "b"},
	}}))
	return mdl
}

// TestEngine_NonCoherentNANDGate_CompilesAndReports exercises the
// default ModeBDD path, which routes cut-set extraction through
// mocus.Expand even when a BDD is also built: a NAND gate must not
// abort Compile with a LogicError, and the resulting cut sets and
// exact top-event probability must match NAND(a,b)'s truth table.
func TestEngine_NonCoherentNANDGate_CompilesAndReports(t *testing.T) {
	mdl := buildNANDModel(t)
	e, err := New(mdl, model.DefaultSettings(), ModeBDD, zerolog.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, e.Preprocess(ctx))
	require.NoError(t, e.Compile(ctx))
	require.NoError(t, e.Analyze(ctx))

	r, err := e.Report(time.Now())
	require.NoError(t, err)
	assert.InDelta(t, 1-0.1*0.2, r.TopEventProbability, 1e-9)
	assert.NotEmpty(t, r.CutSets)
}

// TestEngine_NonCoherentNORGate_ZBDDModeCompiles does the same for
// NOR under ModeZBDD, whose cut-set family is built by zbdd.Build
// rather than mocus.Expand, but hits the identical complement-edge
// rejection if sinkComplements did not already run.
func TestEngine_NonCoherentNORGate_ZBDDModeCompiles(t *testing.T) {
	mdl := model.NewModel("nor", "top")
	require.NoError(t, mdl.AddBasicEvent(&model.BasicEvent{ID: "a", Probability: model.Constant{P: 0.1}}))
	require.NoError(t, mdl.AddBasicEvent(&model.BasicEvent{ID: "b", Probability: model.Constant{P: 0.2}}))
	require.NoError(t, mdl.AddGate(&model.Gate{ID: "top", Connective: model.NOR, Args: []model.Reference{
		{Kind: model.RefBasicEvent, ID: "a"},
		{Kind: model.RefBasicEvent, ID: "b"},
	}}))

	e, err := New(mdl, model.DefaultSettings(), ModeZBDD, zerolog.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, e.Preprocess(ctx))
	require.NoError(t, e.Compile(ctx))
	require.NoError(t, e.Analyze(ctx))

	r, err := e.Report(time.Now())
	require.NoError(t, err)
	assert.InDelta(t, (1-0.1)*(1-0.2), r.TopEventProbability, 1e-9)
	assert.NotEmpty(t, r.CutSets)
}

func TestEngine_RejectsOutOfOrderTransition(t *testing.T) {
	mdl := buildSeriesModel(t)
	e, err := New(mdl, model.DefaultSettings(), ModeBDD, zerolog.Nop())
	require.NoError(t, err)

	err = e.Compile(context.Background())
	assert.Error(t, err)
	assert.Equal(t, Built, e.State())
}

func TestEngine_CancelledContextStopsPreprocess(t *testing.T) {
	mdl := buildSeriesModel(t)
	e, err := New(mdl, model.DefaultSettings(), ModeBDD, zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = e.Preprocess(ctx)
	require.Error(t, err)
	assert.Equal(t, Cancelled, e.State())
}
