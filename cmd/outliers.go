package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tableprof-cli/internal/analysis"
	"github.com/KaramelBytes/tableprof-cli/internal/batch"
)

var (
	outFence float64
	outDedup bool
)

var outliersCmd = &cobra.Command{
	Use:   "outliers",
	Short: "Coarse IQR outlier screen over columns numeric in every table",
	RunE: func(cmd *cobra.Command, args []string) error {
		opt := engineOptions(analysis.CoarseOutlierOptions())
		if cmd.Flags().Changed("fence") && outFence > 0 {
			opt.FenceMultiplier = outFence
		}
		if cmd.Flags().Changed("dedup") {
			opt.DedupOutliers = outDedup
		}
		return runReports(func(r *batch.Runner, b *batch.Batch) ([]string, error) {
			path, err := r.RunOutliers(b, opt)
			if err != nil {
				return nil, err
			}
			return []string{path}, nil
		})
	},
}

func init() {
	rootCmd.AddCommand(outliersCmd)
	outliersCmd.Flags().Float64Var(&outFence, "fence", 3.0, "IQR fence multiplier k")
	outliersCmd.Flags().BoolVar(&outDedup, "dedup", false, "deduplicate and sort the outlier list instead of keeping original order")
}
