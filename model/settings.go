package model

import (
	"time"

	"github.com/scram-ng/scram-core/errs"
)

// Approximation selects the probability-calculation mode requested by
// the caller, per §3 Settings and §4.F.
type Approximation int

const (
	Exact Approximation = iota
	RareEvent
	MCUB
)

func (a Approximation) String() string {
	switch a {
	case Exact:
		return "exact"
	case RareEvent:
		return "rare-event"
	case MCUB:
		return "mcub"
	default:
		return "unknown"
	}
}

// Settings is the input to every engine, per §3. Zero value is not
// meaningful; use DefaultSettings and override.
type Settings struct {
	// MissionTime is the duration over which unavailability is
	// evaluated.
	MissionTime float64 `yaml:"mission_time"`

	// Approximation selects the probability-calculation mode.
	Approximation Approximation `yaml:"approximation"`

	// ProductSizeLimit bounds the literal count of any cut set kept
	// by ZBDD/MOCUS construction; 0 means unbounded.
	ProductSizeLimit int `yaml:"product_size_limit"`

	// ProbabilityCutoff is validated to lie in [0,1] and carried with
	// the settings; no engine reads it, so products are not filtered
	// by probability.
	ProbabilityCutoff float64 `yaml:"probability_cutoff"`

	// NumTrials is the number of Monte Carlo trials for uncertainty
	// propagation.
	NumTrials int `yaml:"num_trials"`

	// Seed seeds the Monte Carlo sampler for reproducibility.
	Seed uint64 `yaml:"seed"`

	// SILBuckets is the number of equal time buckets the mission
	// window [0, MissionTime] is partitioned into for the SIL
	// histogram.
	SILBuckets int `yaml:"sil_buckets"`

	// Deadline, if non-zero, bounds wall-clock time for a single
	// analysis; engines check it at the same granularity as
	// cancellation (§5).
	Deadline time.Time `yaml:"-"`
}

// DefaultSettings returns settings matching the benchmark expectations
// referenced in §8: exact probability, no cutoffs, a modest Monte
// Carlo trial count, and 8 SIL buckets.
func DefaultSettings() Settings {
	return Settings{
		MissionTime:       1.0,
		Approximation:     Exact,
		ProductSizeLimit:  0,
		ProbabilityCutoff: 0,
		NumTrials:         1000,
		Seed:              1,
		SILBuckets:        8,
	}
}

// Validate rejects settings that cannot drive a sound analysis.
func (s Settings) Validate() error {
	if s.MissionTime < 0 {
		return errs.Validityf("model.Settings.Validate", "mission_time", "must be >= 0")
	}
	if s.ProductSizeLimit < 0 {
		return errs.Validityf("model.Settings.Validate", "product_size_limit", "must be >= 0")
	}
	if s.ProbabilityCutoff < 0 || s.ProbabilityCutoff > 1 {
		return errs.Validityf("model.Settings.Validate", "probability_cutoff", "must be in [0,1]")
	}
	if s.NumTrials < 0 {
		return errs.Validityf("model.Settings.Validate", "num_trials", "must be >= 0")
	}
	if s.SILBuckets < 0 {
		return errs.Validityf("model.Settings.Validate", "sil_buckets", "must be >= 0")
	}
	return nil
}
