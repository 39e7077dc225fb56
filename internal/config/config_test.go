package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero nav timeout", func(c *Config) { c.Waits.NavTimeoutS = 0 }},
		{"zero login timeout", func(c *Config) { c.Waits.LoginTimeoutS = 0 }},
		{"zero rating timeout", func(c *Config) { c.Waits.RatingTimeoutS = 0 }},
		{"bad output format", func(c *Config) { c.Output.Format = "xml" }},
		{"csv without path", func(c *Config) { c.Output.Format = "csv"; c.Output.Path = "" }},
		{"empty log level", func(c *Config) { c.Observability.LogLevel = "" }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
waits:
  nav_timeout_s: 15
  rating_timeout_s: 5
output:
  format: csv
  path: out/result.csv
observability:
  log_level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.GetNavTimeout() != 15*time.Second {
		t.Errorf("nav timeout = %v, want 15s", cfg.GetNavTimeout())
	}
	if cfg.GetRatingTimeout() != 5*time.Second {
		t.Errorf("rating timeout = %v, want 5s", cfg.GetRatingTimeout())
	}
	// Untouched fields keep their defaults.
	if cfg.GetLoginTimeout() != 45*time.Second {
		t.Errorf("login timeout = %v, want default 45s", cfg.GetLoginTimeout())
	}
	if cfg.Output.Format != "csv" || cfg.Output.Path != "out/result.csv" {
		t.Errorf("output = %+v", cfg.Output)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
