package table

import (
	"strings"
	"time"
)

// Column is a named, ordered sequence of raw cell values. An empty string
// (or one of the recognized null tokens) marks a missing cell.
type Column struct {
	Name   string
	Values []string
}

// Table is one loaded CSV file: named columns of equal length plus the
// source file's last-modified timestamp. Contents are fixed once loaded.
type Table struct {
	Name    string
	Path    string
	ModTime time.Time
	Columns []Column
}

// RowCount returns the number of data rows (header excluded).
func (t *Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int { return len(t.Columns) }

// ColumnNames returns the header names in file order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the column with the given name, or nil.
func (t *Table) Column(name string) *Column {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// Row materializes row i across all columns.
func (t *Table) Row(i int) []string {
	row := make([]string, len(t.Columns))
	for j := range t.Columns {
		row[j] = t.Columns[j].Values[i]
	}
	return row
}

// IsNull reports whether a raw cell value counts as missing. Besides the
// empty cell, the common textual NA markers that CSV exports carry are
// treated as null.
func IsNull(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "na", "n/a", "null", "nan":
		return true
	}
	return false
}

// NonNullCount returns the number of non-missing values in the column.
func (c *Column) NonNullCount() int {
	n := 0
	for _, v := range c.Values {
		if !IsNull(v) {
			n++
		}
	}
	return n
}
