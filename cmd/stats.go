package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tableprof-cli/internal/analysis"
	"github.com/KaramelBytes/tableprof-cli/internal/batch"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Descriptive statistics for numeric non-identifier columns",
	RunE: func(cmd *cobra.Command, args []string) error {
		opt := engineOptions(analysis.StatsOptions())
		return runReports(func(r *batch.Runner, b *batch.Batch) ([]string, error) {
			path, err := r.RunStats(b, opt)
			if err != nil {
				return nil, err
			}
			return []string{path}, nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
