package analysis

import (
	"math"
	"sort"
)

// Stats holds the descriptive statistics of one numeric column. Std is
// NaN below two samples; VarCoeff is NaN when the mean is numerically
// indistinguishable from zero. Degenerate inputs are never errors.
type Stats struct {
	Min      float64
	Max      float64
	Median   float64
	Mean     float64
	Std      float64
	VarCoeff float64
}

const zeroMeanEps = 1e-12

// Describe computes min/max/median/mean/sample standard deviation and the
// variation coefficient (std ÷ mean, ratio form) over values with nulls
// already dropped.
func Describe(values []float64) Stats {
	s := Stats{
		Min:      math.NaN(),
		Max:      math.NaN(),
		Median:   math.NaN(),
		Mean:     math.NaN(),
		Std:      math.NaN(),
		VarCoeff: math.NaN(),
	}
	n := len(values)
	if n == 0 {
		return s
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)
	s.Min = sorted[0]
	s.Max = sorted[n-1]
	s.Median = Quantile(sorted, 0.5)

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	s.Mean = sum / float64(n)

	if n >= 2 {
		ss := 0.0
		for _, v := range values {
			d := v - s.Mean
			ss += d * d
		}
		s.Std = math.Sqrt(ss / float64(n-1))
		if math.Abs(s.Mean) > zeroMeanEps {
			s.VarCoeff = s.Std / s.Mean
		}
	}
	return s
}

// Round rounds to the given decimal count; negative decimals means full
// precision. NaN passes through.
func Round(v float64, decimals int) float64 {
	if decimals < 0 || math.IsNaN(v) {
		return v
	}
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
