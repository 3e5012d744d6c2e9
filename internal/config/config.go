package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tillview-dev/tillview/internal/report"
)

// FileName is the config file tillview looks for in the working directory.
const FileName = "tillview.yaml"

// Config represents the top-level tillview.yaml configuration.
type Config struct {
	Report ReportConfig `yaml:"report"`
	Log    LogConfig    `yaml:"log"`
}

// ReportConfig holds defaults for the analyze command.
type ReportConfig struct {
	DefaultDays int      `yaml:"default_days"`      // range length when --from is omitted
	Filters     []string `yaml:"filters,omitempty"` // filter names applied by default
}

// LogConfig controls the run log.
type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// Load reads a tillview.yaml file from disk and validates the filter names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	// Unmarshal over the defaults so keys absent from the file keep their
	// default values.
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if _, err := report.ParseFilterSet(cfg.Report.Filters); err != nil {
		return nil, fmt.Errorf("config filters: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			DefaultDays: 30,
		},
		Log: LogConfig{
			Enabled: true,
			Dir:     "logs",
		},
	}
}
