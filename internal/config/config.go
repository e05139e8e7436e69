package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level plview.yaml configuration.
type Config struct {
	Report  ReportConfig  `yaml:"report"`
	Revenue RevenueConfig `yaml:"revenue"`
}

// ReportConfig bounds the reporting window. Empty bounds are open ends.
type ReportConfig struct {
	FromMonth string `yaml:"from_month,omitempty"` // "2006-01" key, inclusive
	ToMonth   string `yaml:"to_month,omitempty"`
}

// RevenueConfig identifies contra-revenue accounts (discounts, refunds,
// chargebacks) backed out of gross revenue in the summary.
type RevenueConfig struct {
	ContraCodes []string `yaml:"contra_codes,omitempty"`
}

// Load reads a plview.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
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

// Default returns a Config with an unbounded window and no contra accounts.
func Default() *Config {
	return &Config{}
}
