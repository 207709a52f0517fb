package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quantyard/lgd/dataset"
	"github.com/quantyard/lgd/estimator"
)

// Config represents the complete pipeline configuration
type Config struct {
	Synthesis SynthesisConfig  `json:"synthesis" yaml:"synthesis"`
	Split     SplitConfig      `json:"split" yaml:"split"`
	Model     estimator.Params `json:"model" yaml:"model"`
	Output    OutputConfig     `json:"output" yaml:"output"`
	Journal   JournalConfig    `json:"journal" yaml:"journal"`
}

// SynthesisConfig contains dataset generation parameters
type SynthesisConfig struct {
	Records int   `json:"records" yaml:"records"`
	Seed    int64 `json:"seed" yaml:"seed"`
}

// SplitConfig contains train/test partitioning parameters
type SplitConfig struct {
	TrainFraction float64 `json:"train_fraction" yaml:"train_fraction"`
}

// OutputConfig controls model persistence
type OutputConfig struct {
	ModelDir string `json:"model_dir,omitempty" yaml:"model_dir,omitempty"`
}

// JournalConfig contains run journaling parameters
type JournalConfig struct {
	Type     string `json:"type" yaml:"type"` // "csv", "sqlite" or "none"
	RunsFile string `json:"runs_file,omitempty" yaml:"runs_file,omitempty"`
	DBPath   string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Synthesis.Records <= 0 {
		return fmt.Errorf("synthesis.records must be positive")
	}
	if c.Split.TrainFraction <= 0 || c.Split.TrainFraction >= 1 {
		return fmt.Errorf("split.train_fraction must be between 0 and 1 exclusive")
	}
	if err := c.Model.Validate(); err != nil {
		return fmt.Errorf("model: %w", err)
	}
	switch c.Journal.Type {
	case "none":
	case "csv":
		if c.Journal.RunsFile == "" {
			return fmt.Errorf("journal.runs_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'csv', 'sqlite' or 'none'")
	}
	return nil
}

// SynthConfig expands the synthesis section into the full generator config.
func (c *Config) SynthConfig() dataset.SynthConfig {
	sc := dataset.DefaultSynthConfig()
	sc.Records = c.Synthesis.Records
	return sc
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Synthesis: SynthesisConfig{
			Records: 1000,
			Seed:    42,
		},
		Split: SplitConfig{
			TrainFraction: 0.8,
		},
		Model: estimator.DefaultParams(),
		Output: OutputConfig{
			ModelDir: "./models",
		},
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./runs.sqlite",
		},
	}
}
