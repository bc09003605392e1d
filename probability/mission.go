package probability

import (
	"github.com/scram-ng/scram-core/bdd"
	"github.com/scram-ng/scram-core/model"
)

// MissionProfile is one point of a time-dependent probability curve:
// the top-event probability at t, where t steps from 0 to MissionTime
// in N+1 equally-spaced points (§4.F: "time-dependent mission mode").
type MissionProfile struct {
	Time  float64
	Value float64
}

// Mission evaluates the top event's exact probability at N+1 equally
// spaced points across [0, missionTime], invalidating bm's probability
// cache between points since each point uses a distinct probability
// vector.
func Mission(mdl *model.Model, bm *bdd.Manager, root bdd.Ref, missionTime float64, steps int) ([]MissionProfile, error) {
	if steps < 1 {
		steps = 1
	}
	profiles := make([]MissionProfile, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := missionTime * float64(i) / float64(steps)
		probs := EvaluateAt(mdl, t)
		v, err := bm.Probability(root, probs)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, MissionProfile{Time: t, Value: v})
		bm.InvalidateProbabilityCache()
	}
	return profiles, nil
}
