package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tableprof-cli/internal/analysis"
	"github.com/KaramelBytes/tableprof-cli/internal/batch"
)

var stdFence float64

var outliersStdCmd = &cobra.Command{
	Use:   "outliers-std",
	Short: "IQR outliers with rounded mean and standard deviation per column",
	RunE: func(cmd *cobra.Command, args []string) error {
		opt := engineOptions(analysis.StdOutlierOptions())
		if cmd.Flags().Changed("fence") && stdFence > 0 {
			opt.FenceMultiplier = stdFence
		}
		return runReports(func(r *batch.Runner, b *batch.Batch) ([]string, error) {
			path, err := r.RunOutliersStd(b, opt)
			if err != nil {
				return nil, err
			}
			return []string{path}, nil
		})
	},
}

func init() {
	rootCmd.AddCommand(outliersStdCmd)
	outliersStdCmd.Flags().Float64Var(&stdFence, "fence", 1.5, "IQR fence multiplier k")
}
