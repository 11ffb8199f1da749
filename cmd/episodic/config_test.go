package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/episodic"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatasetURL != episodic.DefaultDatasetURL {
		t.Errorf("dataset url %q", cfg.DatasetURL)
	}
	if cfg.SummaryPath != episodic.DefaultSummaryPath {
		t.Errorf("summary path %q", cfg.SummaryPath)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "console" {
		t.Errorf("logging defaults %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "episodic.toml")
	doc := `
dataset_file = "avatar.csv"
log_format = "json"
preview = true
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatasetFile != "avatar.csv" {
		t.Errorf("dataset file %q", cfg.DatasetFile)
	}
	if cfg.LogFormat != "json" || !cfg.Preview {
		t.Errorf("overlay not applied: %+v", cfg)
	}
	if cfg.SummaryPath != episodic.DefaultSummaryPath {
		t.Errorf("unset key should keep default, got %q", cfg.SummaryPath)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"no source", func(c *Config) { c.DatasetURL = ""; c.DatasetFile = "" }, false},
		{"file only", func(c *Config) { c.DatasetURL = ""; c.DatasetFile = "x.csv" }, true},
		{"empty summary", func(c *Config) { c.SummaryPath = "" }, false},
		{"bad log format", func(c *Config) { c.LogFormat = "yaml" }, false},
		{"json log format", func(c *Config) { c.LogFormat = "json" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfigSourcePrecedence(t *testing.T) {
	cfg := defaultConfig()
	cfg.DatasetFile = "local.csv"
	if _, ok := cfg.source().(*episodic.FileSource); !ok {
		t.Errorf("file should take precedence, got %T", cfg.source())
	}

	cfg.DatasetFile = ""
	if _, ok := cfg.source().(*episodic.HTTPSource); !ok {
		t.Errorf("expected http source, got %T", cfg.source())
	}
}
