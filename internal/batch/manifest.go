package batch

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/KaramelBytes/tableprof-cli/internal/utils"
)

const manifestFile = "run.json"

// Manifest records what one run did: which tables were profiled, which
// files were skipped and which reports were written. It is the only
// output besides the reports themselves; each run overwrites it.
type Manifest struct {
	RunID      string        `json:"run_id"`
	SourceDir  string        `json:"source_dir"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Tables     []string      `json:"tables"`
	Skipped    []SkippedFile `json:"skipped,omitempty"`
	Outputs    []string      `json:"outputs"`
}

// NewManifest starts a manifest for a run over sourceDir.
func NewManifest(sourceDir string) *Manifest {
	return &Manifest{
		RunID:     uuid.NewString(),
		SourceDir: sourceDir,
		StartedAt: time.Now().UTC(),
	}
}

// Finish fills in the batch outcome and stamps the finish time.
func (m *Manifest) Finish(b *Batch, outputs []string) {
	for _, t := range b.Tables {
		m.Tables = append(m.Tables, t.Name)
	}
	m.Skipped = b.Skipped
	for _, p := range outputs {
		m.Outputs = append(m.Outputs, filepath.Base(p))
	}
	m.FinishedAt = time.Now().UTC()
}

// WriteManifest persists the manifest next to the reports.
func (r *Runner) WriteManifest(m *Manifest) (string, error) {
	data, err := utils.PrettyJSON(m)
	if err != nil {
		return "", err
	}
	if err := utils.EnsureDir(r.OutDir); err != nil {
		return "", err
	}
	path := filepath.Join(r.OutDir, manifestFile)
	if err := utils.SafeWriteFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}
