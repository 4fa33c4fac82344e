package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPort is the fixed port the Invest-Guru API listens on when only a
// host is known.
const DefaultPort = 8100

// DefaultBaseURL is the local-dev fallback origin.
const DefaultBaseURL = "http://localhost:8100"

// Config holds all application configuration.
type Config struct {
	API struct {
		BaseURL string `yaml:"base_url"`
		Host    string `yaml:"host"`
	} `yaml:"api"`
	Session struct {
		TokenFile string `yaml:"token_file"`
	} `yaml:"session"`
	Schedule struct {
		QuoteCron string `yaml:"quote_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; overrides and
// defaults still apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("INVEST_GURU_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("INVEST_GURU_API_HOST"); v != "" {
		cfg.API.Host = v
	}
	if v := os.Getenv("TOKEN_FILE"); v != "" {
		cfg.Session.TokenFile = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("QUOTE_CRON"); v != "" {
		cfg.Schedule.QuoteCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Session.TokenFile == "" {
		cfg.Session.TokenFile = "data/ig_token.json"
	}
	if cfg.Schedule.QuoteCron == "" {
		cfg.Schedule.QuoteCron = "0 */15 * * * *"
	}

	cfg.API.BaseURL = resolveBaseURL(cfg.API.BaseURL, cfg.API.Host)

	return cfg, nil
}

// resolveBaseURL picks the API origin once at startup. Precedence: explicit
// override (env or yaml base_url), then a configured host with the fixed
// service port, then the local default.
func resolveBaseURL(baseURL, host string) string {
	if baseURL != "" {
		return baseURL
	}
	if host != "" {
		return fmt.Sprintf("http://%s:%d", host, DefaultPort)
	}
	return DefaultBaseURL
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.Session.TokenFile == "" {
		return fmt.Errorf("session.token_file is required")
	}
	return nil
}
