package zbdd

import (
	"fmt"

	"github.com/scram-ng/scram-core/errs"
)

// RareEventProbability approximates P(idx) as the sum, over every
// product in the family, of the product of its literals'
// probabilities (negated literals contributing 1-p). It over-estimates
// whenever products overlap, and is clamped to 1 with
// errs.WarnClampedToOne if the raw sum exceeds it (§4.F).
func (m *Manager) RareEventProbability(idx Index, probs map[string]float64) (float64, errs.Warnings, error) {
	products := m.Products(idx)
	var sum float64
	for _, p := range products {
		term := 1.0
		for _, lit := range p {
			pr, ok := probs[lit.ID]
			if !ok {
				return 0, nil, errs.Validityf("zbdd.RareEventProbability", lit.ID, "no probability supplied")
			}
			if lit.Neg {
				term *= 1 - pr
			} else {
				term *= pr
			}
		}
		sum += term
	}
	var warnings errs.Warnings
	if sum > 1 {
		warnings = warnings.Add(errs.WarnClampedToOne, fmt.Sprintf("rare-event sum %.6f clamped to 1", sum))
		sum = 1
	}
	return sum, warnings, nil
}

// MCUBProbability approximates P(idx) with the min-cut-upper-bound
// formula 1 - prod(1 - P(product)), treating the products as though
// independent. It is a true upper bound only for coherent trees;
// evaluated on a non-coherent family it is flagged with
// errs.WarnNonCoherentMCUB (§4.F).
func (m *Manager) MCUBProbability(idx Index, probs map[string]float64, nonCoherent bool) (float64, errs.Warnings, error) {
	products := m.Products(idx)
	complement := 1.0
	for _, p := range products {
		term := 1.0
		for _, lit := range p {
			pr, ok := probs[lit.ID]
			if !ok {
				return 0, nil, errs.Validityf("zbdd.MCUBProbability", lit.ID, "no probability supplied")
			}
			if lit.Neg {
				term *= 1 - pr
			} else {
				term *= pr
			}
		}
		complement *= 1 - term
	}
	var warnings errs.Warnings
	if nonCoherent {
		warnings = warnings.Add(errs.WarnNonCoherentMCUB, "MCUB computed on a non-coherent tree")
	}
	return 1 - complement, warnings, nil
}
