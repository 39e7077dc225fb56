package config

import (
	"fmt"
	"time"
)

type Config struct {
	Browser       BrowserConfig       `yaml:"browser"`
	Waits         WaitConfig          `yaml:"waits"`
	Output        OutputConfig        `yaml:"output"`
	Observability ObservabilityConfig `yaml:"observability"`
	ProfilesFile  string              `yaml:"profiles_file"`
}

type BrowserConfig struct {
	ChromePath string `yaml:"chrome_path"`
	Headless   bool   `yaml:"headless"`
}

// WaitConfig holds the per-wait-class budgets. Every wait in the run is
// bounded by one of these.
type WaitConfig struct {
	NavTimeoutS    int `yaml:"nav_timeout_s"`
	LoginTimeoutS  int `yaml:"login_timeout_s"`
	ListTimeoutS   int `yaml:"list_timeout_s"`
	RatingTimeoutS int `yaml:"rating_timeout_s"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

type ObservabilityConfig struct {
	LogPath     string `yaml:"log_path"`
	LogLevel    string `yaml:"log_level"`
	MetricsPath string `yaml:"metrics_path"`
}

func (c *Config) Validate() error {
	if c.Waits.NavTimeoutS <= 0 {
		return fmt.Errorf("waits.nav_timeout_s must be > 0")
	}
	if c.Waits.LoginTimeoutS <= 0 {
		return fmt.Errorf("waits.login_timeout_s must be > 0")
	}
	if c.Waits.ListTimeoutS <= 0 {
		return fmt.Errorf("waits.list_timeout_s must be > 0")
	}
	if c.Waits.RatingTimeoutS <= 0 {
		return fmt.Errorf("waits.rating_timeout_s must be > 0")
	}
	if c.Output.Format != "table" && c.Output.Format != "csv" {
		return fmt.Errorf("output.format must be 'table' or 'csv'")
	}
	if c.Output.Format == "csv" && c.Output.Path == "" {
		return fmt.Errorf("output.path is required when output.format is 'csv'")
	}
	if c.Observability.LogLevel == "" {
		return fmt.Errorf("observability.log_level is required")
	}
	return nil
}

// Getters
func (c *Config) GetNavTimeout() time.Duration {
	return time.Duration(c.Waits.NavTimeoutS) * time.Second
}

func (c *Config) GetLoginTimeout() time.Duration {
	return time.Duration(c.Waits.LoginTimeoutS) * time.Second
}

func (c *Config) GetListTimeout() time.Duration {
	return time.Duration(c.Waits.ListTimeoutS) * time.Second
}

func (c *Config) GetRatingTimeout() time.Duration {
	return time.Duration(c.Waits.RatingTimeoutS) * time.Second
}

// DefaultConfig returns a runnable configuration so the CLI works
// without a config file.
func DefaultConfig() *Config {
	return &Config{
		Browser: BrowserConfig{
			Headless: true,
		},
		Waits: WaitConfig{
			NavTimeoutS:    30,
			LoginTimeoutS:  45,
			ListTimeoutS:   30,
			RatingTimeoutS: 10,
		},
		Output: OutputConfig{
			Format: "table",
		},
		Observability: ObservabilityConfig{
			LogPath:  "logs/confreview.log",
			LogLevel: "info",
		},
	}
}
