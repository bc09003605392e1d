package report

import (
	"sort"

	"github.com/scram-ng/scram-core/zbdd"
)

// BuildCutSets evaluates every product in family against probs and
// returns them sorted by descending contribution to topProb, the form
// §6 specifies a Report's cut_sets section takes.
func BuildCutSets(zm *zbdd.Manager, family zbdd.Index, probs map[string]float64, topProb float64) []CutSet {
	products := zm.Products(family)
	out := make([]CutSet, 0, len(products))
	for _, p := range products {
		prob := 1.0
		literals := make([]string, len(p))
		for i, lit := range p {
			literals[i] = lit.String()
			if lit.Neg {
				prob *= 1 - probs[lit.ID]
			} else {
				prob *= probs[lit.ID]
			}
		}
		contribution := 0.0
		if topProb > 0 {
			contribution = prob / topProb
		}
		out = append(out, CutSet{Literals: literals, Probability: prob, Contribution: contribution})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Probability > out[j].Probability })
	return out
}
