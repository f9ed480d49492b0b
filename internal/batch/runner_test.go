package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/tableprof-cli/internal/analysis"
	"github.com/KaramelBytes/tableprof-cli/internal/report"
)

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	base := t.TempDir()
	raw := filepath.Join(base, "raw")
	require.NoError(t, os.MkdirAll(raw, 0o755))
	return &Runner{
		RawDir: raw,
		OutDir: filepath.Join(base, "processed"),
	}
}

func writeCSV(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadMissingSourceDirIsFatal(t *testing.T) {
	r := &Runner{RawDir: filepath.Join(t.TempDir(), "missing"), OutDir: t.TempDir()}
	_, err := r.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestLoadSortedOrderAndSkip(t *testing.T) {
	r := newTestRunner(t)
	writeCSV(t, r.RawDir, "zeta.csv", "a\n1\n")
	writeCSV(t, r.RawDir, "alpha.csv", "a\n2\n")
	writeCSV(t, r.RawDir, "broken.csv", "a,b\n\"unterminated,1\n")
	writeCSV(t, r.RawDir, "ignored.txt", "not a csv")

	b, err := r.Load()
	require.NoError(t, err)
	require.Len(t, b.Tables, 2)
	// sorted file order survives the parallel load
	assert.Equal(t, "alpha", b.Tables[0].Name)
	assert.Equal(t, "zeta", b.Tables[1].Name)
	require.Len(t, b.Skipped, 1)
	assert.True(t, strings.HasSuffix(b.Skipped[0].Path, "broken.csv"))
	assert.NotEmpty(t, b.Skipped[0].Reason)
}

func TestEmptyBatchWritesHeaderOnlyReports(t *testing.T) {
	r := newTestRunner(t)
	b, err := r.Load()
	require.NoError(t, err)
	assert.Empty(t, b.Tables)

	paths := map[string]func() (string, error){
		report.StructureFile: func() (string, error) { return r.RunStructure(b) },
		report.OutliersFile: func() (string, error) {
			return r.RunOutliers(b, analysis.CoarseOutlierOptions())
		},
		report.OutliersStdFile: func() (string, error) {
			return r.RunOutliersStd(b, analysis.StdOutlierOptions())
		},
		report.StatsFile: func() (string, error) { return r.RunStats(b, analysis.StatsOptions()) },
	}
	for name, run := range paths {
		path, err := run()
		require.NoError(t, err, name)
		data, err := os.ReadFile(path)
		require.NoError(t, err, name)
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		assert.Len(t, lines, 1, "%s should contain the header row only", name)
	}
}

func TestRunStructureEndToEnd(t *testing.T) {
	r := newTestRunner(t)
	writeCSV(t, r.RawDir, "orders.csv",
		"order_id,item,qty\n1,pen,2\n2,pad,\n3,pen,2\n1,pen,2\n")

	b, err := r.Load()
	require.NoError(t, err)
	path, err := r.RunStructure(b)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(report.StructureHeader, ","), lines[0])

	fields := strings.Split(lines[1], ",")
	assert.Equal(t, "orders", fields[0])
	assert.Equal(t, "None", fields[1]) // order_id repeats, item repeats, qty has a null
	assert.Equal(t, "3", fields[2])    // columns
	assert.Equal(t, "4", fields[3])    // rows
	assert.Equal(t, "3", fields[4])    // unique rows
	assert.Equal(t, "1", fields[5])    // duplicate rows
	assert.Equal(t, "1", fields[6])    // nulls
}

func TestManifestLifecycle(t *testing.T) {
	r := newTestRunner(t)
	writeCSV(t, r.RawDir, "alpha.csv", "a\n1\n")

	m := NewManifest(r.RawDir)
	assert.NotEmpty(t, m.RunID)

	b, err := r.Load()
	require.NoError(t, err)
	path, err := r.RunStructure(b)
	require.NoError(t, err)
	m.Finish(b, []string{path})

	mpath, err := r.WriteManifest(m)
	require.NoError(t, err)

	data, err := os.ReadFile(mpath)
	require.NoError(t, err)
	var got Manifest
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, m.RunID, got.RunID)
	assert.Equal(t, []string{"alpha"}, got.Tables)
	assert.Equal(t, []string{report.StructureFile}, got.Outputs)
	assert.False(t, got.FinishedAt.IsZero())
}
