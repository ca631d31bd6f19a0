package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level crania.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Data     DataConfig     `yaml:"data"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"` // display only, the engine is single-currency
}

// DataConfig locates the snapshot database.
type DataConfig struct {
	Path string `yaml:"path"`
}

// DefaultsConfig controls transaction entry defaults.
type DefaultsConfig struct {
	TransactionStatus string `yaml:"transaction_status"` // "posted" or "draft"
}

// Load reads a crania.yaml file, then applies CRANIA_* environment
// overrides. A .env file in the working directory is honored when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if v := os.Getenv("CRANIA_BUSINESS_NAME"); v != "" {
		cfg.Business.Name = v
	}
	if v := os.Getenv("CRANIA_DATA_PATH"); v != "" {
		cfg.Data.Path = v
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

// Default returns a Config with sensible defaults for a new ledger.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:     businessName,
			Currency: "USD",
		},
		Data: DataConfig{
			Path: "crania.db",
		},
		Defaults: DefaultsConfig{
			TransactionStatus: "posted",
		},
	}
}
