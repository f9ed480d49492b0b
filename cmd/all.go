package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tableprof-cli/internal/analysis"
	"github.com/KaramelBytes/tableprof-cli/internal/batch"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every report over a single load of the batch",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReports(func(r *batch.Runner, b *batch.Batch) ([]string, error) {
			var outputs []string
			steps := []func() (string, error){
				func() (string, error) { return r.RunStructure(b) },
				func() (string, error) {
					return r.RunOutliers(b, engineOptions(analysis.CoarseOutlierOptions()))
				},
				func() (string, error) {
					return r.RunOutliersStd(b, engineOptions(analysis.StdOutlierOptions()))
				},
				func() (string, error) {
					return r.RunStats(b, engineOptions(analysis.StatsOptions()))
				},
			}
			for _, step := range steps {
				path, err := step()
				if err != nil {
					return nil, err
				}
				outputs = append(outputs, path)
			}
			return outputs, nil
		})
	},
}

func init() {
	rootCmd.AddCommand(allCmd)
}
