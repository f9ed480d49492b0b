package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/tableprof-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set tableprof configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("raw_dir: %s\n", cfg.RawDir)
		fmt.Printf("out_dir: %s\n", cfg.OutDir)
		fmt.Printf("workers: %d\n", cfg.Workers)
		fmt.Printf("numeric_ratio: %.3f\n", cfg.NumericRatio)
		fmt.Printf("id_unique_ratio: %.3f\n", cfg.IDUniqueRatio)
		fmt.Printf("id_coverage_ratio: %.3f\n", cfg.IDCoverageRatio)
		fmt.Printf("clear_screen: %t\n", cfg.ClearScreen)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "raw_dir":
			cfg.RawDir = val
		case "out_dir":
			cfg.OutDir = val
		case "workers":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for workers: %v", val)
			}
			cfg.Workers = i
		case "numeric_ratio":
			f, err := parseRatio(val)
			if err != nil {
				return fmt.Errorf("invalid numeric_ratio: %w", err)
			}
			cfg.NumericRatio = f
		case "id_unique_ratio":
			f, err := parseRatio(val)
			if err != nil {
				return fmt.Errorf("invalid id_unique_ratio: %w", err)
			}
			cfg.IDUniqueRatio = f
		case "id_coverage_ratio":
			f, err := parseRatio(val)
			if err != nil {
				return fmt.Errorf("invalid id_coverage_ratio: %w", err)
			}
			cfg.IDCoverageRatio = f
		case "clear_screen":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for clear_screen: %v", val)
			}
			cfg.ClearScreen = b
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %s\n", key)
		return nil
	},
}

func parseRatio(val string) (float64, error) {
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, err
	}
	if f <= 0 || f > 1 {
		return 0, fmt.Errorf("must be in (0, 1]: %v", val)
	}
	return f, nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
