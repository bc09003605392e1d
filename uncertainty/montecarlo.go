package uncertainty

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/scram-ng/scram-core/bdd"
	"github.com/scram-ng/scram-core/errs"
	"github.com/scram-ng/scram-core/model"
)

// Statistics summarizes one Monte Carlo run's per-trial top-event
// probability values (§4.H).
type Statistics struct {
	Trials  int
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64
	P05     float64
	P50     float64
	P95     float64
	Samples []float64 // sorted ascending; retained for SIL/histogram reuse
}

// Run draws settings.NumTrials independent samples of every basic
// event's Distribution at missionTime, evaluates the top-event
// probability on bm/root for each, and reduces the results.
//
// Steps:
//  1. Partition [0, NumTrials) across a pool of at most 8 workers
//     (fewer when there are fewer trials), each worker owning a
//     private probability cache (bdd.ProbabilityWithCache) so workers
//     never contend.
//  2. Each worker samples every basic event once per trial with a
//     trial-indexed, independently-seeded RNG (deterministic
//     regardless of scheduling).
//  3. Each trial writes its value into its own slot of one shared
//     results slice; a single mutex guards only the first error.
//  4. Sort and reduce into Statistics.
//
// Run checks ctx and settings.Deadline before every trial. Once either
// has expired the remaining trials are skipped and Run returns
// errs.ErrCancelled with no Statistics; already-completed trials are
// discarded.
func Run(ctx context.Context, mdl *model.Model, bm *bdd.Manager, root bdd.Ref, settings model.Settings, missionTime float64) (Statistics, errs.Warnings, error) {
	if settings.NumTrials <= 0 {
		return Statistics{}, nil, errs.Validityf("uncertainty.Run", "", "num_trials must be > 0")
	}

	workers := numWorkers(settings.NumTrials)
	jobs := make(chan int)
	results := make([]float64, settings.NumTrials)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			cache := make(map[bdd.Index]float64)
			for trial := range jobs {
				expired := !settings.Deadline.IsZero() && time.Now().After(settings.Deadline)
				if ctx.Err() != nil || expired {
					mu.Lock()
					if firstErr == nil {
						firstErr = errs.ErrCancelled
					}
					mu.Unlock()
					continue
				}
				v, err := runTrial(mdl, bm, root, settings, missionTime, trial, cache)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}
				results[trial] = v
			}
		}()
	}

	for trial := 0; trial < settings.NumTrials; trial++ {
		jobs <- trial
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return Statistics{}, nil, firstErr
	}

	return reduce(results), nil, nil
}

func numWorkers(trials int) int {
	// A fixed, modest pool: the per-trial cost (one BDD walk) is small
	// enough that oversubscribing goroutines past a handful buys
	// nothing but scheduler overhead.
	const maxWorkers = 8
	if trials < maxWorkers {
		return trials
	}
	return maxWorkers
}

func runTrial(mdl *model.Model, bm *bdd.Manager, root bdd.Ref, settings model.Settings, missionTime float64, trial int, cache map[bdd.Index]float64) (float64, error) {
	sampler := newTrialSampler(settings.Seed, trial)
	probs := make(map[string]float64, len(mdl.BasicEvents))
	for id, be := range mdl.BasicEvents {
		probs[id] = be.Probability.Sample(missionTime, sampler)
	}
	for id, he := range mdl.HouseEvents {
		if he.State {
			probs[id] = 1
		} else {
			probs[id] = 0
		}
	}
	for k := range cache {
		delete(cache, k)
	}
	return bm.ProbabilityWithCache(root, probs, cache)
}

func reduce(samples []float64) Statistics {
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	n := len(sorted)
	stats := Statistics{Trials: n, Samples: sorted}
	if n == 0 {
		return stats
	}

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(n)

	var variance float64
	for _, v := range sorted {
		d := v - mean
		variance += d * d
	}
	if n > 1 {
		variance /= float64(n - 1)
	}

	stats.Mean = mean
	stats.StdDev = math.Sqrt(variance)
	stats.Min = sorted[0]
	stats.Max = sorted[n-1]
	stats.P05 = percentile(sorted, 0.05)
	stats.P50 = percentile(sorted, 0.50)
	stats.P95 = percentile(sorted, 0.95)
	return stats
}

func percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(q * float64(len(sorted)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

