package analysis

import (
	"testing"

	"github.com/KaramelBytes/tableprof-cli/internal/table"
)

func TestProfileStructureCounts(t *testing.T) {
	tbl := &table.Table{Name: "orders", Columns: []table.Column{
		col("order_id", "1", "2", "3", "4"),
		col("item", "pen", "pad", "pen", "pad"),
		col("qty", "2", "", "2", "NA"),
	}}
	p := ProfileStructure(tbl)
	if p.ColumnCount != 3 || p.RowCount != 4 {
		t.Fatalf("shape = %dx%d, want 3x4", p.ColumnCount, p.RowCount)
	}
	if p.NullCount != 2 {
		t.Fatalf("null count = %d, want 2", p.NullCount)
	}
	if p.DuplicateRows+p.UniqueRows != p.RowCount {
		t.Fatalf("duplicate + unique = %d, want row count %d",
			p.DuplicateRows+p.UniqueRows, p.RowCount)
	}
}

func TestProfileStructureDuplicatesWithNullEquality(t *testing.T) {
	// rows 2 and 4 match exactly, including the null cell ("" vs NA)
	tbl := &table.Table{Name: "t", Columns: []table.Column{
		col("a", "1", "2", "3", "2"),
		col("b", "x", "", "y", "NA"),
	}}
	p := ProfileStructure(tbl)
	if p.DuplicateRows != 1 {
		t.Fatalf("duplicate rows = %d, want 1 (null == null)", p.DuplicateRows)
	}
	if p.UniqueRows != 3 {
		t.Fatalf("unique rows = %d, want 3", p.UniqueRows)
	}
}

func TestCandidateUniqueKeys(t *testing.T) {
	tbl := &table.Table{Name: "t", Columns: []table.Column{
		col("id", "1", "2", "3"),          // unique, no nulls: candidate
		col("code", "a", "b", ""),         // unique but has a null: never a candidate
		col("group", "g1", "g1", "g2"),    // repeated: not a candidate
		col("email", "x@a", "y@a", "z@a"), // unique, no nulls: candidate
	}}
	p := ProfileStructure(tbl)
	if len(p.UniqueColumns) != 2 || p.UniqueColumns[0] != "id" || p.UniqueColumns[1] != "email" {
		t.Fatalf("candidate keys = %v, want [id email]", p.UniqueColumns)
	}
	if p.UniqueColumnsLabel() != "id, email" {
		t.Fatalf("label = %q", p.UniqueColumnsLabel())
	}
}

func TestNoCandidateKeysLabel(t *testing.T) {
	tbl := &table.Table{Name: "t", Columns: []table.Column{
		col("group", "g1", "g1"),
	}}
	p := ProfileStructure(tbl)
	if p.UniqueColumnsLabel() != "None" {
		t.Fatalf("label = %q, want explicit None marker", p.UniqueColumnsLabel())
	}
}

func TestProfileStructureEmptyTable(t *testing.T) {
	tbl := &table.Table{Name: "empty", Columns: []table.Column{
		col("a"), col("b"),
	}}
	p := ProfileStructure(tbl)
	if p.RowCount != 0 || p.ColumnCount != 2 || p.NullCount != 0 {
		t.Fatalf("unexpected profile for empty table: %+v", p)
	}
	if len(p.UniqueColumns) != 0 {
		t.Fatalf("zero-row table has no candidate keys")
	}
}
