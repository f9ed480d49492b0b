package analysis

import (
	"math"
	"testing"
)

func TestQuantileInterpolation(t *testing.T) {
	sorted := []float64{9, 10, 10, 11, 100}
	if q1 := Quantile(sorted, 0.25); q1 != 10 {
		t.Fatalf("Q1 = %v, want 10", q1)
	}
	if q3 := Quantile(sorted, 0.75); q3 != 11 {
		t.Fatalf("Q3 = %v, want 11", q3)
	}
	// interpolated between ranks
	if m := Quantile([]float64{10, 20, 30, 40}, 0.5); m != 25 {
		t.Fatalf("median = %v, want 25", m)
	}
	if q := Quantile([]float64{1, 2}, 0.25); q != 1.25 {
		t.Fatalf("quantile = %v, want 1.25", q)
	}
}

func TestOutliersStandardFence(t *testing.T) {
	opt := StdOutlierOptions()
	outs := Outliers([]float64{10, 11, 9, 10, 100}, opt)
	if len(outs) != 1 || outs[0] != 100 {
		t.Fatalf("outliers = %v, want [100]", outs)
	}
}

func TestOutliersZeroIQR(t *testing.T) {
	opt := StdOutlierOptions()
	if outs := Outliers([]float64{10, 10, 11, 9, 10}, opt); outs != nil {
		t.Fatalf("IQR covers all values, got outliers %v", outs)
	}
	// constant distribution: IQR == 0, nothing flagged
	if outs := Outliers([]float64{5, 5, 5, 5, 5}, opt); outs != nil {
		t.Fatalf("constant column must report no outliers, got %v", outs)
	}
}

func TestOutliersMinSamples(t *testing.T) {
	opt := StdOutlierOptions()
	if outs := Outliers([]float64{1, 2, 1000}, opt); outs != nil {
		t.Fatalf("fewer than %d samples never produce outliers, got %v", opt.MinSamples, outs)
	}
}

func TestOutliersCoarseFenceIsMorePermissive(t *testing.T) {
	vals := []float64{10, 11, 9, 10, 14}
	std := Outliers(vals, StdOutlierOptions())
	coarse := Outliers(vals, CoarseOutlierOptions())
	if len(std) != 1 || std[0] != 14 {
		t.Fatalf("standard fence should flag 14, got %v", std)
	}
	if coarse != nil {
		t.Fatalf("coarse fence (k=3) should not flag 14, got %v", coarse)
	}
}

func TestOutliersPreserveOrderAndDuplicates(t *testing.T) {
	opt := StdOutlierOptions()
	vals := []float64{200, 10, 11, 9, 10, 200, -100, 10, 11, 10, 9, 10}
	outs := Outliers(vals, opt)
	want := []float64{200, 200, -100}
	if len(outs) != len(want) {
		t.Fatalf("outliers = %v, want %v", outs, want)
	}
	for i := range want {
		if outs[i] != want[i] {
			t.Fatalf("outliers = %v, want %v (original order, duplicates kept)", outs, want)
		}
	}
}

func TestFormatOutliers(t *testing.T) {
	if got := FormatOutliers(nil, true); got != "No Outliers" {
		t.Fatalf("empty list = %q, want No Outliers marker", got)
	}
	if got := FormatOutliers([]float64{200, 200, -100}, true); got != "-100; 200" {
		t.Fatalf("dedup render = %q, want %q", got, "-100; 200")
	}
	if got := FormatOutliers([]float64{200, 200, -100}, false); got != "200; 200; -100" {
		t.Fatalf("raw render = %q, want %q", got, "200; 200; -100")
	}
	if got := FormatOutliers([]float64{100.5}, false); got != "100.5" {
		t.Fatalf("fractional render = %q", got)
	}
}

func TestFormatValue(t *testing.T) {
	if got := FormatValue(100); got != "100" {
		t.Fatalf("integral value renders without decimal point, got %q", got)
	}
	if got := FormatValue(math.NaN()); got != "NaN" {
		t.Fatalf("NaN renders as marker, got %q", got)
	}
}
