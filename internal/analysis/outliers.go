package analysis

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Quantile returns the q-quantile of an ascending-sorted slice using
// linear interpolation between the two nearest ranks.
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// Outliers flags values outside the IQR fence
// [Q1 - k·IQR, Q3 + k·IQR], k = opt.FenceMultiplier, strict comparison.
// The result preserves original order and duplicates. Fewer than
// opt.MinSamples values, or a zero IQR, never produce outliers: the fence
// is meaningless below four samples and a constant distribution would
// otherwise flag everything.
func Outliers(values []float64, opt Options) []float64 {
	if len(values) < opt.MinSamples {
		return nil
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	q1 := Quantile(sorted, 0.25)
	q3 := Quantile(sorted, 0.75)
	iqr := q3 - q1
	if iqr == 0 {
		return nil
	}
	lower := q1 - opt.FenceMultiplier*iqr
	upper := q3 + opt.FenceMultiplier*iqr

	var outs []float64
	for _, v := range values {
		if v < lower || v > upper {
			outs = append(outs, v)
		}
	}
	return outs
}

// FormatOutliers renders an outlier list for a report cell. With dedup
// set, duplicates collapse and values sort ascending. An empty list
// renders as the explicit "No Outliers" marker.
func FormatOutliers(outs []float64, dedup bool) string {
	if len(outs) == 0 {
		return "No Outliers"
	}
	vals := outs
	if dedup {
		set := make(map[float64]struct{}, len(outs))
		for _, v := range outs {
			set[v] = struct{}{}
		}
		vals = make([]float64, 0, len(set))
		for v := range set {
			vals = append(vals, v)
		}
		sort.Float64s(vals)
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = FormatValue(v)
	}
	return strings.Join(parts, "; ")
}

// FormatValue renders a single numeric value compactly: integral values
// without a decimal point.
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
