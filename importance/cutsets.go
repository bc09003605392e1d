package importance

import "github.com/scram-ng/scram-core/zbdd"

// FussellVesely computes DIF for eventID: the fraction of top-event
// probability (approximated by the rare-event sum) attributable to cut
// sets that contain eventID at all, in either polarity (§4.G).
func FussellVesely(zm *zbdd.Manager, family zbdd.Index, eventID string, probs map[string]float64, topProb float64) (float64, error) {
	if topProb <= 0 {
		return 0, nil
	}
	var sum float64
	for _, product := range zm.Products(family) {
		if !containsEvent(product, eventID) {
			continue
		}
		term := 1.0
		for _, lit := range product {
			p := probs[lit.ID]
			if lit.Neg {
				term *= 1 - p
			} else {
				term *= p
			}
		}
		sum += term
	}
	return sum / topProb, nil
}

func containsEvent(p zbdd.Product, eventID string) bool {
	for _, lit := range p {
		if lit.ID == eventID {
			return true
		}
	}
	return false
}

// ApproximateFromCutSets computes MIF/CIF/RAW/RRW from the ZBDD cut-set
// family alone, for callers that never compiled a BDD (e.g. an
// MCUB-only run). It approximates P(top|event=1) and P(top|event=0) by
// the rare-event sum restricted to cut sets that do/don't contain
// eventID, which is exact for coherent trees in the rare-event regime
// and otherwise carries the same accuracy caveat as RareEventProbability.
func ApproximateFromCutSets(zm *zbdd.Manager, family zbdd.Index, eventID string, p, topProb float64, probs map[string]float64) (Factors, error) {
	var withEvent, withoutEvent float64
	for _, product := range zm.Products(family) {
		term := 1.0
		hasEvent := false
		for _, lit := range product {
			pr := probs[lit.ID]
			if lit.Neg {
				term *= 1 - pr
			} else {
				term *= pr
			}
			if lit.ID == eventID {
				hasEvent = true
			}
		}
		if hasEvent {
			withEvent += term
		} else {
			withoutEvent += term
		}
	}

	pOn := withEvent/clampNonZero(p) + withoutEvent
	pOff := withoutEvent
	if pOn > 1 {
		pOn = 1
	}

	f := Factors{EventID: eventID, MIF: pOn - pOff}
	if topProb > 0 {
		f.CIF = f.MIF * p / topProb
		f.RAW = pOn / topProb
	}
	if pOff > 0 {
		f.RRW = topProb / pOff
	}
	dif, err := FussellVesely(zm, family, eventID, probs, topProb)
	if err != nil {
		return Factors{}, err
	}
	f.DIF = dif
	return f, nil
}

func clampNonZero(p float64) float64 {
	if p <= 0 {
		return 1
	}
	return p
}
