// Package config loads CLI configuration from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration.
type Config struct {
	Scraper struct {
		BaseURL   string `yaml:"base_url"`
		Timeout   string `yaml:"timeout"`
		UserAgent string `yaml:"user_agent"`
	} `yaml:"scraper"`

	Storage struct {
		DataDir string `yaml:"data_dir"`
	} `yaml:"storage"`

	Logging struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`
}

// Load reads configuration from the given path and applies environment
// variable overrides. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// HTTPTimeout parses the configured scraper timeout, falling back to 30s
// when the value is missing or malformed.
func (c *Config) HTTPTimeout() time.Duration {
	d, err := time.ParseDuration(c.Scraper.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

func setDefaults(cfg *Config) {
	cfg.Scraper.BaseURL = "https://buscacursos.uc.cl"
	cfg.Scraper.Timeout = "30s"
	cfg.Scraper.UserAgent = "buscacursos-cli/1.0 (github.com/osuc/buscacursos)"
	cfg.Storage.DataDir = "~/.local/share/buscacursos"
	cfg.Logging.Level = "info"
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BUSCACURSOS_BASE_URL"); v != "" {
		cfg.Scraper.BaseURL = v
	}
	if v := os.Getenv("BUSCACURSOS_TIMEOUT"); v != "" {
		cfg.Scraper.Timeout = v
	}
	if v := os.Getenv("BUSCACURSOS_DATA_DIR"); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := os.Getenv("BUSCACURSOS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
