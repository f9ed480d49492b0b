// Package batch orchestrates one profiling run: it enumerates the source
// directory, loads every CSV into a Table, applies the analyses and hands
// the assembled result tables to the report writer.
package batch

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/KaramelBytes/tableprof-cli/internal/analysis"
	"github.com/KaramelBytes/tableprof-cli/internal/report"
	"github.com/KaramelBytes/tableprof-cli/internal/table"
)

// Runner holds the per-run configuration. Progress, when set, receives
// human-readable status lines; the engine itself never prints.
type Runner struct {
	RawDir   string
	OutDir   string
	Workers  int
	Progress func(format string, args ...any)
}

// SkippedFile records a source file that failed to load and was excluded
// from the batch.
type SkippedFile struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Batch is the loaded input of one run: tables in sorted file order plus
// the files that were skipped.
type Batch struct {
	Tables  []*table.Table
	Skipped []SkippedFile
}

func (r *Runner) progress(format string, args ...any) {
	if r.Progress != nil {
		r.Progress(format, args...)
	}
}

// Load enumerates and loads the batch. A missing source directory is
// fatal; an unreadable or malformed file is skipped and recorded so the
// rest of the batch still completes. Files load in parallel but the
// resulting order is the sorted file order, never completion order.
func (r *Runner) Load() (*Batch, error) {
	if _, err := os.Stat(r.RawDir); err != nil {
		return nil, fmt.Errorf("source dir %s: %w", r.RawDir, err)
	}
	files, err := table.ListCSVFiles(r.RawDir)
	if err != nil {
		return nil, err
	}

	workers := r.Workers
	if workers <= 0 {
		workers = 4
	}
	loaded := make([]*table.Table, len(files))
	var (
		mu      sync.Mutex
		skipped []SkippedFile
	)
	var g errgroup.Group
	g.SetLimit(workers)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			t, err := table.Load(path)
			if err != nil {
				mu.Lock()
				skipped = append(skipped, SkippedFile{Path: path, Reason: err.Error()})
				mu.Unlock()
				return nil
			}
			loaded[i] = t
			return nil
		})
	}
	_ = g.Wait() // per-file errors are recorded, not propagated

	b := &Batch{Skipped: skipped}
	for _, t := range loaded {
		if t != nil {
			b.Tables = append(b.Tables, t)
		}
	}
	r.progress("[batch] loaded %d table(s), skipped %d", len(b.Tables), len(b.Skipped))
	return b, nil
}

// RunStructure writes the structural profile report and returns its path.
func (r *Runner) RunStructure(b *Batch) (string, error) {
	return r.write(report.StructureFile, BuildStructure(b.Tables))
}

// RunOutliers writes the coarse outlier report and returns its path.
func (r *Runner) RunOutliers(b *Batch, opt analysis.Options) (string, error) {
	return r.write(report.OutliersFile, BuildOutliers(b.Tables, opt))
}

// RunOutliersStd writes the outliers-with-statistics report and returns
// its path.
func (r *Runner) RunOutliersStd(b *Batch, opt analysis.Options) (string, error) {
	return r.write(report.OutliersStdFile, BuildOutliersStd(b.Tables, opt))
}

// RunStats writes the descriptive-statistics report and returns its path.
func (r *Runner) RunStats(b *Batch, opt analysis.Options) (string, error) {
	return r.write(report.StatsFile, BuildStats(b.Tables, opt))
}

func (r *Runner) write(name string, t *report.Table) (string, error) {
	path, err := report.Write(r.OutDir, name, t)
	if err != nil {
		return "", err
	}
	r.progress("[batch] %s: %d row(s)", name, len(t.Rows))
	return path, nil
}
