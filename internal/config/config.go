package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level skarbnik.yaml configuration.
type Config struct {
	Club  ClubConfig  `yaml:"club"`
	Rates RatesConfig `yaml:"rates"`
	Data  DataConfig  `yaml:"data"`
}

// ClubConfig identifies the organization.
type ClubConfig struct {
	Name         string `yaml:"name"`
	HomeCurrency string `yaml:"home_currency"`
}

// RatesConfig controls the exchange-rate source.
type RatesConfig struct {
	BaseURL      string `yaml:"base_url"`
	LookbackDays int    `yaml:"lookback_days"`
}

// DataConfig locates the ledger data directory.
type DataConfig struct {
	Dir string `yaml:"dir"`
}

// Load reads a skarbnik.yaml file from disk.
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

// Default returns a Config with sensible defaults for a new project.
func Default(clubName string) *Config {
	return &Config{
		Club: ClubConfig{
			Name:         clubName,
			HomeCurrency: "PLN",
		},
		Rates: RatesConfig{
			BaseURL:      "https://api.nbp.pl",
			LookbackDays: 7,
		},
		Data: DataConfig{
			Dir: "data",
		},
	}
}
