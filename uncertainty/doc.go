// Package uncertainty implements the Monte Carlo uncertainty
// propagation and SIL histogram of §4.H: sample every basic event's
// Distribution M times, recompute the top-event probability on a
// per-worker BDD probability cache, and reduce the per-trial values
// into mean/standard deviation/quantiles and, separately, a PFD
// histogram over equal time buckets of the mission window.
//
// The fan-out is embarrassingly parallel (§5): each trial only needs
// its own random draws and a private view of the BDD's probability
// cache, so a fixed-size worker pool drains a channel of trial indices
// with sync.WaitGroup the way core's concurrency tests exercise
// Graph — one goroutine per worker, each trial writing its own slot of
// the results slice, and one mutex guarding the first error.
package uncertainty
