// Package analysis implements the table-profiling engine: column
// classification, identifier detection, structural profiling, IQR outlier
// detection and descriptive statistics. Everything here is a pure function
// of its inputs; file and console I/O live in internal/table, internal/report
// and cmd.
package analysis

// Options carries every knob on which the historical reports disagreed.
// Each report is a named configuration of the same engine rather than its
// own copy of the algorithms.
type Options struct {
	// NumericRatio is the minimum fraction of non-null values that must
	// parse as numbers for a column to be classified numeric.
	NumericRatio float64
	// IDKeywords are matched as substrings of the lowercased column name.
	IDKeywords []string
	// IDUniqueRatio is the minimum distinct/non-null ratio for the
	// uniqueness signal of the identifier heuristic.
	IDUniqueRatio float64
	// IDCoverageRatio is the minimum non-null/rows ratio required before
	// the uniqueness signal may fire; sparse columns with a handful of
	// distinct samples are not identifiers.
	IDCoverageRatio float64
	// FenceMultiplier scales the IQR when deriving outlier fences.
	FenceMultiplier float64
	// MinSamples is the minimum number of non-null values below which no
	// outliers are ever reported.
	MinSamples int
	// DedupOutliers selects the display representation: true collapses
	// duplicates and sorts ascending, false keeps original order.
	DedupOutliers bool
	// Decimals rounds reported statistics to a fixed decimal count;
	// negative means full precision.
	Decimals int
}

func baseOptions() Options {
	return Options{
		NumericRatio:    0.90,
		IDKeywords:      []string{"id", "key", "identifier", "uuid", "guid"},
		IDUniqueRatio:   0.95,
		IDCoverageRatio: 0.80,
		MinSamples:      4,
	}
}

// CoarseOutlierOptions configures the permissive screening pass: wide
// fences, raw outlier lists with duplicates in original order.
func CoarseOutlierOptions() Options {
	o := baseOptions()
	o.FenceMultiplier = 3.0
	o.Decimals = -1
	return o
}

// StdOutlierOptions configures the finer outlier pass: standard 1.5×IQR
// fences, deduplicated sorted lists, statistics rounded to one decimal.
func StdOutlierOptions() Options {
	o := baseOptions()
	o.FenceMultiplier = 1.5
	o.DedupOutliers = true
	o.Decimals = 1
	return o
}

// StatsOptions configures the descriptive-statistics report: full
// precision, standard fences (unused by the report itself).
func StatsOptions() Options {
	o := baseOptions()
	o.FenceMultiplier = 1.5
	o.Decimals = -1
	return o
}
