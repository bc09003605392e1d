package uncertainty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPFD_BandBoundaries(t *testing.T) {
	cases := []struct {
		pfd  float64
		want SILClass
	}{
		{0.5, SILNone},
		{0.099, SIL1},
		{0.01, SIL1},
		{0.0099, SIL2},
		{0.001, SIL2},
		{0.00099, SIL3},
		{0.0001, SIL3},
		{0.000099, SIL4},
		{0.00001, SIL4},
		{0.0000099, SILBeyond4},
		{0, SILBeyond4},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, classifyPFD(c.pfd), "pfd=%v", c.pfd)
	}
}

func TestClassFractions_SplitsMissionTimeByBand(t *testing.T) {
	buckets := []SILBucket{
		{Start: 0, End: 1, PFDAvg: 0.05, Class: SIL1},
		{Start: 1, End: 2, PFDAvg: 0.05, Class: SIL1},
		{Start: 2, End: 4, PFDAvg: 0.0005, Class: SIL3},
	}
	fractions := ClassFractions(buckets)
	byClass := map[SILClass]float64{}
	for _, f := range fractions {
		byClass[f.Class] = f.Fraction
	}
	assert.InDelta(t, 0.5, byClass[SIL1], 1e-9)
	assert.InDelta(t, 0.5, byClass[SIL3], 1e-9)
	assert.Len(t, fractions, 2)
}

func TestClassFractions_EmptyInput(t *testing.T) {
	assert.Nil(t, ClassFractions(nil))
}
