package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/scram-ng/scram-core/bdd"
	"github.com/scram-ng/scram-core/ccf"
	"github.com/scram-ng/scram-core/errs"
	"github.com/scram-ng/scram-core/importance"
	"github.com/scram-ng/scram-core/mocus"
	"github.com/scram-ng/scram-core/model"
	"github.com/scram-ng/scram-core/pdag"
	"github.com/scram-ng/scram-core/preprocess"
	"github.com/scram-ng/scram-core/probability"
	"github.com/scram-ng/scram-core/report"
	"github.com/scram-ng/scram-core/uncertainty"
	"github.com/scram-ng/scram-core/zbdd"
)

// Engine drives one analysis from a resolved model.Model through
// §4's state machine to a report.Report. An Engine is single-use:
// once it reaches Reported or Cancelled it must be discarded, per
// §4's "re-entry requires a fresh engine".
type Engine struct {
	log      zerolog.Logger
	mdl      *model.Model
	settings model.Settings
	mode     DiagramMode

	state    State
	warnings errs.Warnings

	graph       *pdag.Graph
	pre         *preprocess.Result
	nonCoherent bool

	bm      *bdd.Manager
	bddRoot bdd.Ref
	zm      *zbdd.Manager
	family  zbdd.Index

	probResult probability.Result
	factors    []importance.Factors
	stats      *uncertainty.Statistics
	sil        []uncertainty.SILBucket
}

// New validates mdl, expands its CCF groups, and builds the initial
// PDAG, landing the Engine in state Built. logger may be the zero
// zerolog.Logger (writes nowhere); callers that want output configure
// it with zerolog.New(...) the way cmd/scram does.
func New(mdl *model.Model, settings model.Settings, mode DiagramMode, log zerolog.Logger) (*Engine, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if err := mdl.Validate(); err != nil {
		return nil, err
	}
	if err := ccf.Expand(mdl); err != nil {
		return nil, err
	}
	if err := mdl.Validate(); err != nil {
		return nil, err
	}

	g, err := pdag.Build(mdl)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		log:         log,
		mdl:         mdl,
		settings:    settings,
		mode:        mode,
		state:       Built,
		graph:       g,
		nonCoherent: isNonCoherent(mdl),
	}
	e.log.Debug().Str("model", mdl.Name).Int("gates", len(mdl.Gates)).Msg("engine built")
	return e, nil
}

// State reports the Engine's current lifecycle stage.
func (e *Engine) State() State { return e.state }

// Warnings returns every non-fatal condition accumulated so far.
func (e *Engine) Warnings() errs.Warnings { return e.warnings }

func checkDeadline(ctx context.Context, deadline time.Time) error {
	if err := ctx.Err(); err != nil {
		return errs.ErrCancelled
	}
	if !deadline.IsZero() && time.Now().After(deadline) {
		return errs.ErrCancelled
	}
	return nil
}

// Preprocess runs the rewrite pipeline to a fixpoint and freezes the
// resulting graph, advancing Built -> Preprocessed.
func (e *Engine) Preprocess(ctx context.Context) error {
	if e.state != Built {
		return errs.Logicf("engine.Preprocess", "", "expected state built, got %s", e.state)
	}
	if err := checkDeadline(ctx, e.settings.Deadline); err != nil {
		e.state = Cancelled
		return err
	}

	res, err := preprocess.Run(e.graph, preprocess.DefaultConfig())
	if err != nil {
		return err
	}
	if err := res.Graph.Freeze(); err != nil {
		return err
	}

	e.graph = res.Graph
	e.pre = res
	e.state = Preprocessed
	e.log.Debug().Int("passes", res.PassesRun).Int("modules", len(res.Modules)).
		Bool("short_circuit", res.ShortCircuit).Msg("preprocessing complete")
	return nil
}

func moduleHints(modules []preprocess.ModuleInfo) []bdd.ModuleHint {
	hints := make([]bdd.ModuleHint, len(modules))
	for i, mi := range modules {
		hints[i] = bdd.ModuleHint{Variables: mi.Variables}
	}
	return hints
}

// Compile builds the decision diagrams the rest of the pipeline needs:
// a BDD (for exact probability, cofactor-based importance, and Monte
// Carlo) and a ZBDD cut-set family (for reporting and the rare-event/
// mcub approximations). mode selects which construction method
// produces the cut-set family; a BDD is always built, since every
// downstream stage except rare-event/mcub depends on it. Advances
// Preprocessed -> Compiled.
func (e *Engine) Compile(ctx context.Context) error {
	if e.state != Preprocessed {
		return errs.Logicf("engine.Compile", "", "expected state preprocessed, got %s", e.state)
	}
	if err := checkDeadline(ctx, e.settings.Deadline); err != nil {
		e.state = Cancelled
		return err
	}

	order := bdd.VariableOrder(e.graph, moduleHints(e.pre.Modules))
	bm, root, err := bdd.Build(e.graph, order)
	if err != nil {
		return err
	}
	e.bm, e.bddRoot = bm, root

	var zm *zbdd.Manager
	var family zbdd.Index
	var cutoffHit bool
	switch e.mode {
	case ModeZBDD:
		zorder := zbdd.VariableOrder(e.graph)
		built, idx, err := zbdd.Build(e.graph, zorder)
		if err != nil {
			return err
		}
		family = built.Minimize(idx)
		if e.settings.ProductSizeLimit > 0 {
			family, cutoffHit = built.Prune(family, e.settings.ProductSizeLimit)
		}
		zm = built
	default: // ModeBDD and ModeMOCUS both route cut-set extraction through MOCUS
		res, err := mocus.Expand(ctx, e.graph, e.settings.ProductSizeLimit)
		if err != nil {
			return err
		}
		zm, family, cutoffHit = res.Manager, res.Family, res.CutoffHit
	}
	e.zm, e.family = zm, family
	if cutoffHit {
		e.warnings = e.warnings.Add(errs.WarnCutoffTruncated, "mocus product-size cutoff discarded cut sets")
	}

	e.state = Compiled
	e.log.Debug().Str("mode", e.mode.String()).Int("bdd_size", e.bm.Size()).
		Bool("cutoff_hit", cutoffHit).Msg("diagrams compiled")
	return nil
}

// Analyze computes the top-event probability, importance factors for
// every surviving basic event, and (when requested) Monte Carlo
// uncertainty and the SIL histogram. Advances Compiled -> Analyzed.
func (e *Engine) Analyze(ctx context.Context) error {
	if e.state != Compiled {
		return errs.Logicf("engine.Analyze", "", "expected state compiled, got %s", e.state)
	}
	if err := checkDeadline(ctx, e.settings.Deadline); err != nil {
		e.state = Cancelled
		return err
	}

	res, err := probability.Calculate(e.settings, e.mdl, e.bm, e.bddRoot, e.zm, e.family, e.settings.MissionTime, e.nonCoherent)
	if err != nil {
		return err
	}
	e.probResult = res
	e.warnings = append(e.warnings, res.Warnings...)

	probs := probability.EvaluateAt(e.mdl, e.settings.MissionTime)
	factors := make([]importance.Factors, 0, len(e.mdl.BasicEvents))
	inBDD := make(map[string]bool)
	for _, v := range e.bm.VarOrder() {
		inBDD[v] = true
	}
	for id := range e.mdl.BasicEvents {
		if !inBDD[id] {
			continue // removed by preprocessing or unreachable from the top event
		}
		f, err := importance.FromBDD(e.bm, e.bddRoot, id, probs[id], res.Value, probs)
		if err != nil {
			return err
		}
		dif, err := importance.FussellVesely(e.zm, e.family, id, probs, res.Value)
		if err != nil {
			return err
		}
		f.DIF = dif
		factors = append(factors, f)
	}
	e.factors = factors

	if e.settings.NumTrials > 0 {
		if err := checkDeadline(ctx, e.settings.Deadline); err != nil {
			e.state = Cancelled
			return err
		}
		stats, warn, err := uncertainty.Run(ctx, e.mdl, e.bm, e.bddRoot, e.settings, e.settings.MissionTime)
		if err != nil {
			if err == errs.ErrCancelled {
				e.state = Cancelled
				return err
			}
			return err
		}
		e.stats = &stats
		e.warnings = append(e.warnings, warn...)
	}

	if e.settings.SILBuckets > 0 {
		buckets, warn, err := uncertainty.Histogram(e.mdl, e.bm, e.bddRoot, e.settings, e.settings.MissionTime)
		if err != nil {
			return err
		}
		e.sil = buckets
		e.warnings = append(e.warnings, warn...)
	}

	e.state = Analyzed
	e.log.Debug().Float64("top_probability", res.Value).Str("approximation", res.Approximation.String()).
		Int("factors", len(factors)).Msg("analysis complete")
	return nil
}

// Report assembles the final report.Report, advancing Analyzed ->
// Reported. The returned Report is ready to hand to a report.Sink.
func (e *Engine) Report(now time.Time) (*report.Report, error) {
	if e.state != Analyzed {
		return nil, errs.Logicf("engine.Report", "", "expected state analyzed, got %s", e.state)
	}

	r := report.New(e.mdl.Name, now)
	r.TopEventProbability = e.probResult.Value
	r.Approximation = e.probResult.Approximation
	r.CutSets = report.BuildCutSets(e.zm, e.family, probability.EvaluateAt(e.mdl, e.settings.MissionTime), e.probResult.Value)
	r.Importance = e.factors
	r.Uncertainty = e.stats
	r.SIL = e.sil
	r.SILFractions = uncertainty.ClassFractions(e.sil)
	r.WithWarnings(e.warnings)

	e.state = Reported
	e.log.Info().Str("run_id", r.RunID).Msg("report ready")
	return r, nil
}

// isNonCoherent reports whether mdl's gates use a connective or a
// complemented reference that makes MCUB's upper-bound guarantee
// inapplicable (§4.F).
func isNonCoherent(mdl *model.Model) bool {
	for _, g := range mdl.Gates {
		switch g.Connective {
		case model.NOT, model.NAND, model.NOR, model.IMPLY, model.IFF:
			return true
		}
		for _, arg := range g.Args {
			if arg.Complement {
				return true
			}
		}
	}
	return false
}
