package batch

import (
	"strconv"

	"github.com/KaramelBytes/tableprof-cli/internal/analysis"
	"github.com/KaramelBytes/tableprof-cli/internal/report"
	"github.com/KaramelBytes/tableprof-cli/internal/table"
)

// BuildStructure assembles the structural profile: one row per table, in
// batch order, identifiers included.
func BuildStructure(tables []*table.Table) *report.Table {
	out := report.New(report.StructureHeader)
	for _, t := range tables {
		p := analysis.ProfileStructure(t)
		out.Append(
			t.Name,
			p.UniqueColumnsLabel(),
			strconv.Itoa(p.ColumnCount),
			strconv.Itoa(p.RowCount),
			strconv.Itoa(p.UniqueRows),
			strconv.Itoa(p.DuplicateRows),
			strconv.Itoa(p.NullCount),
			report.FormatTime(t.ModTime),
		)
	}
	return out
}

// BuildOutliers assembles the coarse outlier screen over the columns
// numeric in every table of the batch. Only (table, column) pairs that
// actually have outliers produce a row.
func BuildOutliers(tables []*table.Table, opt analysis.Options) *report.Table {
	out := report.New(report.OutliersHeader)
	common := analysis.CommonNumericColumns(tables, opt.NumericRatio)
	for _, t := range tables {
		for _, name := range common {
			c := t.Column(name)
			if c == nil {
				continue
			}
			nums := analysis.CoerceColumn(c)
			if analysis.IsIdentifier(name, nums, t.RowCount(), opt) {
				continue
			}
			outs := analysis.Outliers(nums, opt)
			if len(outs) == 0 {
				continue
			}
			out.Append(
				t.Name,
				name,
				analysis.FormatOutliers(outs, opt.DedupOutliers),
				report.FormatTime(t.ModTime),
			)
		}
	}
	return out
}

// BuildOutliersStd assembles the finer outlier report: one row per
// (table, common numeric column) with rounded mean and standard deviation
// and an explicit "No Outliers" marker for clean columns.
func BuildOutliersStd(tables []*table.Table, opt analysis.Options) *report.Table {
	out := report.New(report.OutliersStdHeader)
	common := analysis.CommonNumericColumns(tables, opt.NumericRatio)
	for _, t := range tables {
		for _, name := range common {
			c := t.Column(name)
			if c == nil {
				continue
			}
			nums := analysis.CoerceColumn(c)
			if analysis.IsIdentifier(name, nums, t.RowCount(), opt) {
				continue
			}
			st := analysis.Describe(nums)
			outs := analysis.Outliers(nums, opt)
			out.Append(
				t.Name,
				name,
				report.FormatFloat(st.Mean, opt.Decimals),
				report.FormatFloat(st.Std, opt.Decimals),
				analysis.FormatOutliers(outs, opt.DedupOutliers),
				report.FormatTime(t.ModTime),
			)
		}
	}
	return out
}

// BuildStats assembles the descriptive-statistics report: one row per
// (table, numeric non-identifier column), columns in table order, numeric
// classification per table rather than batch-wide.
func BuildStats(tables []*table.Table, opt analysis.Options) *report.Table {
	out := report.New(report.StatsHeader)
	for _, t := range tables {
		for i := range t.Columns {
			c := &t.Columns[i]
			if !analysis.IsNumericColumn(c, opt.NumericRatio) {
				continue
			}
			nums := analysis.CoerceColumn(c)
			if len(nums) == 0 {
				continue
			}
			if analysis.IsIdentifier(c.Name, nums, t.RowCount(), opt) {
				continue
			}
			st := analysis.Describe(nums)
			out.Append(
				t.Name,
				c.Name,
				report.FormatFloat(st.Min, opt.Decimals),
				report.FormatFloat(st.Max, opt.Decimals),
				report.FormatFloat(st.Median, opt.Decimals),
				report.FormatFloat(st.Mean, opt.Decimals),
				report.FormatFloat(st.Std, opt.Decimals),
				report.FormatFloat(st.VarCoeff, opt.Decimals),
				report.FormatTime(t.ModTime),
			)
		}
	}
	return out
}
