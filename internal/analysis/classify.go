package analysis

import (
	"sort"
	"strconv"
	"strings"

	"github.com/KaramelBytes/tableprof-cli/internal/table"
)

// ParseNumber attempts to parse a cell as a float, tolerating thousands
// separators: "1,234" and "1 234" both parse as 1234. Returns false for
// anything that is not numeric after stripping.
func ParseNumber(s string) (float64, bool) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, false
	}
	raw = strings.ReplaceAll(raw, "\u00a0", "")
	raw = strings.ReplaceAll(raw, ",", "")
	raw = strings.ReplaceAll(raw, " ", "")
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// CoerceColumn returns the successfully parsed numeric values of the
// column's non-null cells, in row order.
func CoerceColumn(c *table.Column) []float64 {
	var nums []float64
	for _, v := range c.Values {
		if table.IsNull(v) {
			continue
		}
		if f, ok := ParseNumber(v); ok {
			nums = append(nums, f)
		}
	}
	return nums
}

// IsNumericColumn reports whether the column is "numeric enough": the
// ratio of coercible non-null values to all non-null values meets ratio.
// A column with no non-null values is never numeric.
func IsNumericColumn(c *table.Column, ratio float64) bool {
	nonNull := c.NonNullCount()
	if nonNull == 0 {
		return false
	}
	parsed := 0
	for _, v := range c.Values {
		if table.IsNull(v) {
			continue
		}
		if _, ok := ParseNumber(v); ok {
			parsed++
		}
	}
	return float64(parsed)/float64(nonNull) >= ratio
}

// NumericColumns returns the names of the table's numeric columns in
// column order.
func NumericColumns(t *table.Table, ratio float64) []string {
	var cols []string
	for i := range t.Columns {
		if IsNumericColumn(&t.Columns[i], ratio) {
			cols = append(cols, t.Columns[i].Name)
		}
	}
	return cols
}

// CommonNumericColumns returns the column names classified numeric in
// every table of the batch, sorted by name. An empty batch, or any table
// whose numeric set is empty, yields an empty result.
func CommonNumericColumns(tables []*table.Table, ratio float64) []string {
	if len(tables) == 0 {
		return nil
	}
	counts := make(map[string]int)
	for _, t := range tables {
		for _, name := range NumericColumns(t, ratio) {
			counts[name]++
		}
	}
	var common []string
	for name, n := range counts {
		if n == len(tables) {
			common = append(common, name)
		}
	}
	sort.Strings(common)
	return common
}
