// Package report models the fixed-header result tables and their CSV
// serialization. Column headers are preserved verbatim, including the
// historical casing, for compatibility with downstream consumers.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"time"

	"github.com/KaramelBytes/tableprof-cli/internal/utils"
)

// Output file names, one per analysis.
const (
	StructureFile   = "Column-RowCount-duplicate.csv"
	OutliersFile    = "Outliers.csv"
	OutliersStdFile = "Outliers_STD.csv"
	StatsFile       = "Summary_Statistics.csv"
)

var (
	StructureHeader = []string{
		"Table Name", "Unique Column(s)", "Column Count", "Row count",
		"Unique rows count", "Duplicate rows count", "Null count", "Date updated",
	}
	OutliersHeader = []string{
		"Table Name", "Numeric Column", "Outliers", "Date Updated",
	}
	OutliersStdHeader = []string{
		"Table Name", "Numeric Column", "Average", "Standard Deviation",
		"list of outliers", "Date updated",
	}
	StatsHeader = []string{
		"Table Name", "Numeric Column(s)", "Minimum", "maximum", "median",
		"Average", "Standard deviation", "Variation Coefficient", "Date updated",
	}
)

// Table is an ordered result table: a header plus data rows in insertion
// order. Rows are immutable once appended.
type Table struct {
	Header []string
	Rows   [][]string
}

// New returns an empty result table with the given header.
func New(header []string) *Table {
	return &Table{Header: header}
}

// Append adds one result row.
func (t *Table) Append(row ...string) {
	t.Rows = append(t.Rows, row)
}

// Encode serializes the table as CSV, header first.
func (t *Table) Encode() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Write serializes the table and writes it atomically to dir/name. The
// full table is assembled in memory first, so a failed run never leaves a
// partially written report behind.
func Write(dir, name string, t *Table) (string, error) {
	data, err := t.Encode()
	if err != nil {
		return "", err
	}
	if err := utils.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("ensure output dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := utils.SafeWriteFile(path, data); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}

// FormatFloat renders a statistic for a report cell: NaN as the explicit
// "NaN" marker, otherwise rounded to decimals places (negative = full
// precision).
func FormatFloat(v float64, decimals int) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if decimals < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// FormatTime renders a file timestamp as ISO-8601 in UTC.
func FormatTime(ts time.Time) string {
	return ts.UTC().Format(time.RFC3339)
}
