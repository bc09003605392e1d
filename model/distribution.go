// distribution.go implements the probability expressions named in §6:
// constant, exponential (two- and four-parameter), uniform, normal,
// log-normal, Weibull and histogram. Each Distribution is a pure
// function of mission time t and an optional Sampler draw, matching
// "Each expression is a pure function of mission time t and an
// optional sample draw."
package model

import (
	"math"
	"sort"
)

// Sampler draws a uniform(0,1) variate. Monte Carlo (package
// uncertainty) supplies a seeded, reproducible implementation;
// deterministic callers (probability, importance, SIL) never sample
// and use MeanAt only.
type Sampler interface {
	Float64() float64
}

// Distribution evaluates a basic event's failure probability.
type Distribution interface {
	// MeanAt returns the point-value probability at mission time t,
	// with no sampling. This is what every deterministic calculation
	// (BDD/ZBDD probability, importance) uses.
	MeanAt(t float64) float64
	// Sample draws one realization of the underlying random variable
	// at mission time t using s, for Monte Carlo uncertainty
	// propagation. Implementations must clamp the result to [0,1].
	Sample(t float64, s Sampler) float64
}

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Constant is a time- and sample-independent probability.
type Constant struct{ P float64 }

func (c Constant) MeanAt(float64) float64          { return clamp01(c.P) }
func (c Constant) Sample(float64, Sampler) float64 { return clamp01(c.P) }

// Scaled multiplies Base's value by Factor, clamping the result. CCF
// expansion uses this to turn one member's total failure distribution
// into its independent or shared-combination share without flattening
// a time-dependent Base into a point estimate.
type Scaled struct {
	Factor float64
	Base   Distribution
}

func (s Scaled) MeanAt(t float64) float64 { return clamp01(s.Factor * s.Base.MeanAt(t)) }

func (s Scaled) Sample(t float64, smp Sampler) float64 {
	return clamp01(s.Factor * s.Base.Sample(t, smp))
}

// Exponential is the two-parameter unavailability model
// 1 - exp(-lambda*t). Lambda is the failure rate.
type Exponential struct{ Lambda float64 }

func (e Exponential) MeanAt(t float64) float64 {
	if t <= 0 || e.Lambda <= 0 {
		return 0
	}
	return clamp01(1 - math.Exp(-e.Lambda*t))
}

func (e Exponential) Sample(t float64, s Sampler) float64 {
	// Point estimate only varies with t; lambda itself is not
	// resampled unless wrapped by a distribution over lambda upstream.
	return e.MeanAt(t)
}

// ExponentialDormant is the four-parameter model used for
// periodically-tested standby components: a mission-time exponential
// combined with a dormant (untested) failure fraction.
//
//	P(t) = 1 - exp(-lambda*mu*t/(mu+lambda)) applied across the
//	repair-rate mu and test-interval tau, approximated here as the
//	two-term mixture: tested fraction uses Lambda over t, the dormant
//	fraction uses LambdaDormant over Tau/2 (expected time to detection).
type ExponentialDormant struct {
	Lambda        float64
	LambdaDormant float64
	Mu            float64 // repair rate, informational
	Tau           float64 // periodic test interval
}

func (e ExponentialDormant) MeanAt(t float64) float64 {
	tested := 1 - math.Exp(-e.Lambda*t)
	dormantExposure := e.Tau / 2
	dormant := 1 - math.Exp(-e.LambdaDormant*dormantExposure)
	// Union of two independent contributing failure modes.
	return clamp01(tested + dormant - tested*dormant)
}

func (e ExponentialDormant) Sample(t float64, s Sampler) float64 { return e.MeanAt(t) }

// Uniform draws from U(Min, Max); MeanAt returns the distribution's
// mean, independent of t.
type Uniform struct{ Min, Max float64 }

func (u Uniform) MeanAt(float64) float64 { return clamp01((u.Min + u.Max) / 2) }

func (u Uniform) Sample(t float64, s Sampler) float64 {
	if s == nil {
		return u.MeanAt(t)
	}
	return clamp01(u.Min + s.Float64()*(u.Max-u.Min))
}

// Normal draws from N(Mu, Sigma^2) via the Box-Muller transform,
// clamped to [0,1] since it models a probability.
type Normal struct{ Mu, Sigma float64 }

func (n Normal) MeanAt(float64) float64 { return clamp01(n.Mu) }

func (n Normal) Sample(t float64, s Sampler) float64 {
	if s == nil {
		return n.MeanAt(t)
	}
	u1, u2 := s.Float64(), s.Float64()
	if u1 <= 0 {
		u1 = 1e-12
	}
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return clamp01(n.Mu + n.Sigma*z)
}

// LogNormal draws from a log-normal distribution parameterized by the
// underlying normal's Mu and Sigma (in log-space).
type LogNormal struct{ Mu, Sigma float64 }

func (l LogNormal) MeanAt(float64) float64 {
	return clamp01(math.Exp(l.Mu + l.Sigma*l.Sigma/2))
}

func (l LogNormal) Sample(t float64, s Sampler) float64 {
	if s == nil {
		return l.MeanAt(t)
	}
	n := Normal{Mu: l.Mu, Sigma: l.Sigma}
	return clamp01(math.Exp(n.Sample(t, s)))
}

// Weibull is the two-parameter Weibull unavailability model
// 1 - exp(-(t/Scale)^Shape).
type Weibull struct{ Shape, Scale float64 }

func (w Weibull) MeanAt(t float64) float64 {
	if t <= 0 || w.Scale <= 0 {
		return 0
	}
	return clamp01(1 - math.Exp(-math.Pow(t/w.Scale, w.Shape)))
}

func (w Weibull) Sample(t float64, s Sampler) float64 { return w.MeanAt(t) }

// HistogramBucket is one (upper bound, probability) pair of a
// piecewise-constant histogram distribution.
type HistogramBucket struct {
	UpperBound  float64
	Probability float64
}

// Histogram evaluates to the probability of the first bucket whose
// UpperBound is >= t; buckets must be sorted ascending by UpperBound.
type Histogram struct{ Buckets []HistogramBucket }

func (h Histogram) MeanAt(t float64) float64 {
	idx := sort.Search(len(h.Buckets), func(i int) bool {
		return h.Buckets[i].UpperBound >= t
	})
	if idx == len(h.Buckets) {
		if len(h.Buckets) == 0 {
			return 0
		}
		return clamp01(h.Buckets[len(h.Buckets)-1].Probability)
	}
	return clamp01(h.Buckets[idx].Probability)
}

func (h Histogram) Sample(t float64, s Sampler) float64 { return h.MeanAt(t) }
