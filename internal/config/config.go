package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	RawDir  string `mapstructure:"raw_dir" yaml:"raw_dir"`
	OutDir  string `mapstructure:"out_dir" yaml:"out_dir"`
	Workers int    `mapstructure:"workers" yaml:"workers"`

	// Engine thresholds. Zero values mean "use the report preset".
	NumericRatio    float64 `mapstructure:"numeric_ratio" yaml:"numeric_ratio"`
	IDUniqueRatio   float64 `mapstructure:"id_unique_ratio" yaml:"id_unique_ratio"`
	IDCoverageRatio float64 `mapstructure:"id_coverage_ratio" yaml:"id_coverage_ratio"`

	// Presentation
	ClearScreen bool `mapstructure:"clear_screen" yaml:"clear_screen"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.tableprof/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".tableprof")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (applied by the caller) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("TABLEPROF")
	v.AutomaticEnv()

	// Defaults mirror the layout the profiler historically assumed.
	v.SetDefault("raw_dir", filepath.Join("data", "raw"))
	v.SetDefault("out_dir", filepath.Join("data", "processed"))
	v.SetDefault("workers", 4)
	v.SetDefault("numeric_ratio", 0.90)
	v.SetDefault("id_unique_ratio", 0.95)
	v.SetDefault("id_coverage_ratio", 0.80)
	v.SetDefault("clear_screen", true)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".tableprof"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
