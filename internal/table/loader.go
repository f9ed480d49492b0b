package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a CSV file into a Table. The first record is the header;
// short rows are padded with empty cells and extra cells beyond the
// header width are dropped. The table name is the file name without
// its extension.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat csv: %w", err)
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	base := filepath.Base(path)
	t := &Table{
		Name:    strings.TrimSuffix(base, filepath.Ext(base)),
		Path:    path,
		ModTime: info.ModTime(),
	}

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			// headerless empty file: zero columns, zero rows
			return t, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	t.Columns = make([]Column, len(header))
	for i, name := range header {
		t.Columns[i].Name = strings.TrimSpace(name)
	}

	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", t.RowCount()+1, err)
		}
		for i := range t.Columns {
			v := ""
			if i < len(rec) {
				v = rec[i]
			}
			t.Columns[i].Values = append(t.Columns[i].Values, v)
		}
	}
	return t, nil
}

// ListCSVFiles returns the CSV files directly under dir, sorted by name.
// A missing directory is an error; the caller decides whether that is
// fatal for the run.
func ListCSVFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read source dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	// os.ReadDir returns entries sorted by name already; keep the
	// guarantee explicit since output row order depends on it.
	return files, nil
}
