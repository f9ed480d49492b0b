package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tableprof-cli/internal/batch"
)

var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Profile table structure: counts, duplicates, candidate keys, nulls",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReports(func(r *batch.Runner, b *batch.Batch) ([]string, error) {
			path, err := r.RunStructure(b)
			if err != nil {
				return nil, err
			}
			return []string{path}, nil
		})
	},
}

func init() {
	rootCmd.AddCommand(structureCmd)
}
