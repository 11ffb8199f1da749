package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/tsawler/episodic"
)

// Config holds everything the CLI needs to run an analysis.
type Config struct {
	DatasetURL  string `toml:"dataset_url"`
	DatasetFile string `toml:"dataset_file"`
	SummaryPath string `toml:"summary_path"`
	DatabaseRef string `toml:"database_path"`
	LexiconPath string `toml:"lexicon_path"`
	NormsPath   string `toml:"affect_norms_path"`
	Language    string `toml:"language"`
	LogLevel    string `toml:"log_level"`
	LogFormat   string `toml:"log_format"`
	Preview     bool   `toml:"preview"`
}

func defaultConfig() Config {
	return Config{
		DatasetURL:  episodic.DefaultDatasetURL,
		SummaryPath: episodic.DefaultSummaryPath,
		Language:    string(episodic.English),
		LogLevel:    "info",
		LogFormat:   "console",
	}
}

// loadConfig returns the defaults overlaid with the TOML file at path, if
// any. An empty path means defaults only.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.DatasetURL == "" && c.DatasetFile == "" {
		return errors.New("one of dataset_url or dataset_file is required")
	}
	if c.SummaryPath == "" {
		return errors.New("summary_path must not be empty")
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("log_format: unsupported value %q", c.LogFormat)
	}
	return nil
}

// source builds the dialogue source; a local file takes precedence over the
// remote URL.
func (c Config) source() episodic.Source {
	if c.DatasetFile != "" {
		return &episodic.FileSource{Path: c.DatasetFile}
	}
	return episodic.NewHTTPSource(c.DatasetURL)
}
