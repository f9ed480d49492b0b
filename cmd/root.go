package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tableprof-cli/internal/analysis"
	"github.com/KaramelBytes/tableprof-cli/internal/batch"
	cfgpkg "github.com/KaramelBytes/tableprof-cli/internal/config"
)

var (
	// Global flags (wired to config at load time)
	cfgFile     string
	quiet       bool
	noClear     bool
	flagRawDir  string
	flagOutDir  string
	flagWorkers int

	// Loaded configuration
	cfg *cfgpkg.Global

	successOut = color.New(color.FgGreen)
	warnOut    = color.New(color.FgYellow)
)

var rootCmd = &cobra.Command{
	Use:   "tableprof",
	Short: "tableprof: profile a directory of CSV tables into summary reports",
	Long: `tableprof reads every CSV file in a source directory and derives summary
tables describing each file: row/column counts, duplicate rows, candidate
unique-key columns, null counts, IQR outliers and descriptive statistics
for numeric non-identifier columns. Each report is written as a CSV file
to the output directory.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.tableprof/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagRawDir, "raw-dir", "", "source directory with CSV files (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagOutDir, "out-dir", "", "output directory for reports (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "parallel file loaders (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "suppress progress and non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noClear, "no-clear", false, "do not clear the terminal before a run")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{}
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("raw-dir") && flagRawDir != "" {
		cfg.RawDir = flagRawDir
	}
	if f.Changed("out-dir") && flagOutDir != "" {
		cfg.OutDir = flagOutDir
	}
	if f.Changed("workers") && flagWorkers > 0 {
		cfg.Workers = flagWorkers
	}
}

// newRunner builds the batch runner from the loaded configuration.
func newRunner() *batch.Runner {
	r := &batch.Runner{
		RawDir:  cfg.RawDir,
		OutDir:  cfg.OutDir,
		Workers: cfg.Workers,
	}
	if !quiet {
		r.Progress = func(format string, args ...any) {
			fmt.Printf(format+"\n", args...)
		}
	}
	return r
}

// engineOptions applies the config-file threshold overrides on top of a
// report preset.
func engineOptions(preset analysis.Options) analysis.Options {
	o := preset
	if cfg.NumericRatio > 0 {
		o.NumericRatio = cfg.NumericRatio
	}
	if cfg.IDUniqueRatio > 0 {
		o.IDUniqueRatio = cfg.IDUniqueRatio
	}
	if cfg.IDCoverageRatio > 0 {
		o.IDCoverageRatio = cfg.IDCoverageRatio
	}
	return o
}

// beginRun handles the presentation niceties before a batch: clearing the
// terminal and printing a wait line. The engine never does this itself.
func beginRun() {
	if quiet {
		return
	}
	if cfg.ClearScreen && !noClear {
		fmt.Print("\033[2J\033[H")
	}
	fmt.Println("The profiler is running, please wait...")
}

// runReports is the shared driver: load the batch once, hand it to the
// per-command run function, then write the run manifest.
func runReports(run func(r *batch.Runner, b *batch.Batch) ([]string, error)) error {
	r := newRunner()
	beginRun()

	m := batch.NewManifest(r.RawDir)
	b, err := r.Load()
	if err != nil {
		return err
	}
	for _, s := range b.Skipped {
		warnOut.Printf("⚠ Skipped %s: %s\n", s.Path, s.Reason)
	}

	outputs, err := run(r, b)
	if err != nil {
		return err
	}
	m.Finish(b, outputs)
	if _, err := r.WriteManifest(m); err != nil {
		return err
	}
	if !quiet {
		for _, p := range outputs {
			successOut.Printf("✓ Wrote %s\n", p)
		}
	}
	return nil
}
