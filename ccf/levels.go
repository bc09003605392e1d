package ccf

import (
	"math"

	"github.com/scram-ng/scram-core/errs"
	"github.com/scram-ng/scram-core/model"
)

// levelProbabilities returns, for k=1..n, the fraction of a member's
// total failure probability assigned to one specific k-member
// combination: levelProb[1] is the independent-failure fraction for
// one member, levelProb[k] (k>=2) is the fraction assigned to any one
// of the C(n,k) combinations of k members. Index 0 is unused.
func levelProbabilities(group *model.CCFGroup, n int) ([]float64, error) {
	levelProb := make([]float64, n+1)
	switch group.Model {
	case model.CCFBetaFactor:
		if group.Beta < 0 || group.Beta > 1 {
			return nil, errs.Validityf("ccf.levelProbabilities", group.ID, "beta must be in [0,1]")
		}
		levelProb[1] = 1 - group.Beta
		levelProb[n] = group.Beta
	case model.CCFMultipleGreekLetter:
		// Factors holds the cumulative rho_2..rho_n fractions of Q_total
		// due to common causes affecting k or more members.
		rho := make([]float64, n+2) // rho[k] for k=2..n, rho[n+1]=0 sentinel
		for k := 2; k <= n; k++ {
			if k-2 < len(group.Factors) {
				rho[k] = group.Factors[k-2]
			}
		}
		levelProb[1] = 1 - rho[2]
		for k := 2; k <= n; k++ {
			next := 0.0
			if k+1 <= n {
				next = rho[k+1]
			}
			combos := binomial(n-1, k-1)
			if combos == 0 {
				continue
			}
			levelProb[k] = (rho[k] - next) / float64(combos)
		}
	case model.CCFAlphaFactor:
		alpha := paddedFactors(group.Factors, n)
		var weighted float64
		for k := 1; k <= n; k++ {
			weighted += float64(k) * alpha[k-1]
		}
		if weighted == 0 {
			return nil, errs.Validityf("ccf.levelProbabilities", group.ID, "alpha factors sum to zero")
		}
		for k := 1; k <= n; k++ {
			total := float64(k) * alpha[k-1] / weighted
			levelProb[k] = total / float64(binomial(n, k))
		}
	case model.CCFPhiFactor:
		phi := paddedFactors(group.Factors, n)
		for k := 1; k <= n; k++ {
			levelProb[k] = phi[k-1] / float64(binomial(n, k))
		}
	default:
		return nil, errs.Logicf("ccf.levelProbabilities", group.ID, "unknown CCF model %v", group.Model)
	}
	return levelProb, nil
}

// paddedFactors right-pads group.Factors with zeros to length n, for
// models where a caller may have supplied fewer levels than the group
// has members.
func paddedFactors(factors []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out, factors)
	return out
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	result := 1.0
	for i := 0; i < k; i++ {
		result *= float64(n-i) / float64(i+1)
	}
	return int(math.Round(result))
}
