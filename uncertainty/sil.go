package uncertainty

import (
	"github.com/scram-ng/scram-core/bdd"
	"github.com/scram-ng/scram-core/errs"
	"github.com/scram-ng/scram-core/model"
)

// SILClass is an IEC 61508 safety integrity band, assigned from a
// bucket's average PFD under the low-demand-mode table (§4.H
// glossary: "SIL bands defined by IEC 61508 PFD/PFH ranges").
type SILClass int

const (
	// SILNone marks a PFDAvg of 1e-1 or worse: too high to meet SIL 1.
	SILNone SILClass = iota
	SIL1  // [1e-2, 1e-1)
	SIL2  // [1e-3, 1e-2)
	SIL3  // [1e-4, 1e-3)
	SIL4  // [1e-5, 1e-4)
	// SILBeyond4 marks a PFDAvg below 1e-5: better than SIL 4 requires.
	SILBeyond4
)

func (c SILClass) String() string {
	switch c {
	case SILNone:
		return "none"
	case SIL1:
		return "SIL1"
	case SIL2:
		return "SIL2"
	case SIL3:
		return "SIL3"
	case SIL4:
		return "SIL4"
	case SILBeyond4:
		return "beyond-SIL4"
	default:
		return "unknown-sil-class"
	}
}

// classifyPFD assigns the IEC 61508 low-demand SIL band a given
// average PFD falls into.
func classifyPFD(pfd float64) SILClass {
	switch {
	case pfd >= 1e-1:
		return SILNone
	case pfd >= 1e-2:
		return SIL1
	case pfd >= 1e-3:
		return SIL2
	case pfd >= 1e-4:
		return SIL3
	case pfd >= 1e-5:
		return SIL4
	default:
		return SILBeyond4
	}
}

// SILBucket is the average probability of failure on demand (PFD)
// over one equal-width slice of the mission window, its IEC 61508
// band, and a rough PFH (probability of failure per hour) figure
// (§4.H).
type SILBucket struct {
	Start, End float64
	PFDAvg     float64
	Class      SILClass
	PFH        float64
}

// SILFraction is the fraction of the mission window spent in one
// IEC 61508 SIL band, the deliverable §4.H calls "the fraction of
// time spent in each SIL class."
type SILFraction struct {
	Class    SILClass
	Fraction float64
}

// ClassFractions folds buckets (as returned by Histogram, all
// equal-width) into the fraction of mission time spent in each
// distinct SILClass they touch, sorted from the tightest band
// (SILBeyond4, then SIL4) to the loosest (SILNone).
func ClassFractions(buckets []SILBucket) []SILFraction {
	if len(buckets) == 0 {
		return nil
	}
	totals := make(map[SILClass]float64, len(buckets))
	var total float64
	for _, b := range buckets {
		width := b.End - b.Start
		totals[b.Class] += width
		total += width
	}
	if total <= 0 {
		return nil
	}
	order := []SILClass{SILBeyond4, SIL4, SIL3, SIL2, SIL1, SILNone}
	fractions := make([]SILFraction, 0, len(totals))
	for _, c := range order {
		if w, ok := totals[c]; ok {
			fractions = append(fractions, SILFraction{Class: c, Fraction: w / total})
		}
	}
	return fractions
}

// Histogram partitions [0, missionTime] into settings.SILBuckets equal
// slices and evaluates the exact top-event probability at each slice's
// midpoint as that slice's average PFD, classifying each bucket into
// its IEC 61508 SIL band. PFH is derived from the discrete derivative
// between consecutive bucket PFDs divided by the bucket width in
// hours; §4.H calls this a simplified approximation, not a proper
// frequency calculation, so the returned Warnings carry one
// errs.WarnSimplifiedPFH for the whole histogram.
func Histogram(mdl *model.Model, bm *bdd.Manager, root bdd.Ref, settings model.Settings, missionTime float64) ([]SILBucket, errs.Warnings, error) {
	if settings.SILBuckets <= 0 {
		return nil, nil, errs.Validityf("uncertainty.Histogram", "", "sil_buckets must be > 0")
	}
	width := missionTime / float64(settings.SILBuckets)
	buckets := make([]SILBucket, settings.SILBuckets)

	prev := 0.0
	for i := 0; i < settings.SILBuckets; i++ {
		start := float64(i) * width
		end := start + width
		mid := (start + end) / 2

		probs := make(map[string]float64, len(mdl.BasicEvents))
		for id, be := range mdl.BasicEvents {
			probs[id] = be.Probability.MeanAt(mid)
		}
		for id, he := range mdl.HouseEvents {
			if he.State {
				probs[id] = 1
			} else {
				probs[id] = 0
			}
		}
		bm.InvalidateProbabilityCache()
		pfd, err := bm.Probability(root, probs)
		if err != nil {
			return nil, nil, err
		}

		pfh := 0.0
		if width > 0 {
			pfh = (pfd - prev) / (width * 8760) // width is in mission-time units assumed to be years
			if pfh < 0 {
				pfh = 0
			}
		}
		prev = pfd

		buckets[i] = SILBucket{Start: start, End: end, PFDAvg: pfd, Class: classifyPFD(pfd), PFH: pfh}
	}

	var warnings errs.Warnings
	warnings = warnings.Add(errs.WarnSimplifiedPFH, "PFH derived from discrete PFD slope, not a renewal-process frequency calculation")
	return buckets, warnings, nil
}
