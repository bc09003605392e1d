package importance

import (
	"github.com/scram-ng/scram-core/bdd"
	"github.com/scram-ng/scram-core/errs"
)

// Factors collects every importance measure computed for one basic
// event at one mission time (§3, §4.G).
type Factors struct {
	EventID string
	MIF     float64 // Birnbaum measure: P(top|event=1) - P(top|event=0)
	CIF     float64 // criticality: MIF * p(event) / P(top)
	DIF     float64 // Fussell-Vesely: sum of cut-set probabilities containing event / P(top)
	RAW     float64 // risk achievement worth: P(top|event=1) / P(top)
	RRW     float64 // risk reduction worth: P(top) / P(top|event=0)
}

// FromBDD computes MIF, CIF, RAW and RRW for eventID from bm/root, the
// event's point probability p, and the already-computed top-event
// probability topProb.
//
// Cost is two Cofactor calls (each O(|BDD|)) plus two Probability
// evaluations, independent of how many basic events the caller
// ultimately asks for since each call only touches one variable's
// position (§4.G).
func FromBDD(bm *bdd.Manager, root bdd.Ref, eventID string, p, topProb float64, probs map[string]float64) (Factors, error) {
	if topProb <= 0 {
		return Factors{}, errs.Analysisf("importance.FromBDD", eventID, "top-event probability is zero; importance measures are undefined")
	}

	onRef, err := bm.Cofactor(root, eventID, true)
	if err != nil {
		return Factors{}, err
	}
	offRef, err := bm.Cofactor(root, eventID, false)
	if err != nil {
		return Factors{}, err
	}

	bm.InvalidateProbabilityCache()
	pOn, err := bm.Probability(onRef, probs)
	if err != nil {
		return Factors{}, err
	}
	pOff, err := bm.Probability(offRef, probs)
	if err != nil {
		return Factors{}, err
	}
	bm.InvalidateProbabilityCache()

	mif := pOn - pOff
	f := Factors{
		EventID: eventID,
		MIF:     mif,
		CIF:     mif * p / topProb,
		RAW:     pOn / topProb,
	}
	if pOff > 0 {
		f.RRW = topProb / pOff
	}
	return f, nil
}
