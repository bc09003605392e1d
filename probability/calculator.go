package probability

import (
	"github.com/scram-ng/scram-core/bdd"
	"github.com/scram-ng/scram-core/errs"
	"github.com/scram-ng/scram-core/model"
	"github.com/scram-ng/scram-core/zbdd"
)

// Result is the outcome of one top-event probability evaluation.
type Result struct {
	Value         float64
	Approximation model.Approximation
	Warnings      errs.Warnings
}

// Exact evaluates the top event's probability at mission time t by
// walking bm, the BDD compiled from the model, with the supplied
// per-event probabilities already evaluated at t (§4.F: "Exact mode
// requires a BDD").
func Exact(m *bdd.Manager, root bdd.Ref, probs map[string]float64) (Result, error) {
	v, err := m.Probability(root, probs)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: v, Approximation: model.Exact}, nil
}

// RareEvent evaluates the top event's probability as the clamped sum
// over zm's minimal cut sets (§4.F).
func RareEvent(zm *zbdd.Manager, family zbdd.Index, probs map[string]float64) (Result, error) {
	v, warnings, err := zm.RareEventProbability(family, probs)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: v, Approximation: model.RareEvent, Warnings: warnings}, nil
}

// MCUB evaluates the top event's probability with the min-cut-upper-
// bound formula over zm's minimal cut sets. nonCoherent should be set
// whenever the source fault tree contains a NOT/NAND/NOR/IMPLY/IFF
// connective or an ATLEAST gate with negated arguments, since MCUB is
// only a guaranteed upper bound on coherent trees (§4.F).
func MCUB(zm *zbdd.Manager, family zbdd.Index, probs map[string]float64, nonCoherent bool) (Result, error) {
	v, warnings, err := zm.MCUBProbability(family, probs, nonCoherent)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: v, Approximation: model.MCUB, Warnings: warnings}, nil
}

// Calculate dispatches to Exact, RareEvent or MCUB per settings'
// Approximation, building the probs map from m's basic events
// evaluated at the given mission time.
func Calculate(settings model.Settings, mdl *model.Model, bm *bdd.Manager, bddRoot bdd.Ref, zm *zbdd.Manager, family zbdd.Index, missionTime float64, nonCoherent bool) (Result, error) {
	probs := EvaluateAt(mdl, missionTime)
	switch settings.Approximation {
	case model.Exact:
		if bm == nil {
			return Result{}, errs.Logicf("probability.Calculate", "", "exact mode requires a compiled BDD")
		}
		return Exact(bm, bddRoot, probs)
	case model.RareEvent:
		if zm == nil {
			return Result{}, errs.Logicf("probability.Calculate", "", "rare-event mode requires a ZBDD cut-set family")
		}
		return RareEvent(zm, family, probs)
	case model.MCUB:
		if zm == nil {
			return Result{}, errs.Logicf("probability.Calculate", "", "mcub mode requires a ZBDD cut-set family")
		}
		return MCUB(zm, family, probs, nonCoherent)
	default:
		return Result{}, errs.Logicf("probability.Calculate", "", "unknown approximation %v", settings.Approximation)
	}
}

// EvaluateAt evaluates every basic event's Distribution at t,
// returning a map keyed by basic-event id suitable for bdd.Probability
// or zbdd.RareEventProbability/MCUBProbability.
func EvaluateAt(mdl *model.Model, t float64) map[string]float64 {
	probs := make(map[string]float64, len(mdl.BasicEvents))
	for id, be := range mdl.BasicEvents {
		probs[id] = be.Probability.MeanAt(t)
	}
	for id, he := range mdl.HouseEvents {
		if he.State {
			probs[id] = 1
		} else {
			probs[id] = 0
		}
	}
	return probs
}
