package uncertainty

import "math/rand"

// trialSampler wraps a per-trial *rand.Rand so model.Sampler's single
// Float64 method is satisfied without exposing math/rand outside this
// package. Seeding it from settings.Seed and the trial index (rather
// than sharing one *rand.Rand across goroutines) is what makes the
// worker pool's output reproducible independent of how many workers
// actually ran and in what order.
type trialSampler struct{ r *rand.Rand }

func newTrialSampler(seed uint64, trial int) trialSampler {
	return trialSampler{r: rand.New(rand.NewSource(int64(seed) + int64(trial)*2654435761))}
}

func (s trialSampler) Float64() float64 { return s.r.Float64() }
