package analysis

import (
	"strings"

	"github.com/KaramelBytes/tableprof-cli/internal/table"
)

// StructuralProfile describes one table's shape: counts, duplicate rows
// and the single-column candidate unique keys. Identifier columns are not
// excluded here; they still count toward every total.
type StructuralProfile struct {
	ColumnCount   int
	RowCount      int
	UniqueRows    int
	DuplicateRows int
	NullCount     int
	UniqueColumns []string
}

// nullSentinel normalizes the different null markers so that null == null
// when comparing full rows.
const nullSentinel = "\x00<null>"

// ProfileStructure computes the structural profile of a table. A row is a
// duplicate when its full content, across all columns and with nulls
// treated as equal, matches an earlier row; the first occurrence counts
// as unique.
func ProfileStructure(t *table.Table) StructuralProfile {
	p := StructuralProfile{
		ColumnCount: t.ColumnCount(),
		RowCount:    t.RowCount(),
	}

	seen := make(map[string]struct{}, p.RowCount)
	for i := 0; i < p.RowCount; i++ {
		row := t.Row(i)
		for j, v := range row {
			if table.IsNull(v) {
				row[j] = nullSentinel
			}
		}
		key := strings.Join(row, "\x1f")
		if _, dup := seen[key]; dup {
			p.DuplicateRows++
		} else {
			seen[key] = struct{}{}
		}
	}
	p.UniqueRows = p.RowCount - p.DuplicateRows

	for i := range t.Columns {
		c := &t.Columns[i]
		distinct := make(map[string]struct{}, len(c.Values))
		nulls := 0
		for _, v := range c.Values {
			if table.IsNull(v) {
				nulls++
				continue
			}
			distinct[v] = struct{}{}
		}
		p.NullCount += nulls
		// candidate single-column key: no nulls and one distinct value
		// per row. Composite keys are out of scope.
		if p.RowCount > 0 && nulls == 0 && len(distinct) == p.RowCount {
			p.UniqueColumns = append(p.UniqueColumns, c.Name)
		}
	}
	return p
}

// UniqueColumnsLabel renders the candidate-key list, with an explicit
// "None" marker distinguishing "computed, found none" from an error.
func (p StructuralProfile) UniqueColumnsLabel() string {
	if len(p.UniqueColumns) == 0 {
		return "None"
	}
	return strings.Join(p.UniqueColumns, ", ")
}
