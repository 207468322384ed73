// Package config loads and validates parseek configuration.
//
// Configuration is resolved in priority order:
//  1. Built-in defaults
//  2. Project config file (.parseek.yaml)
//  3. PARSEEK_* environment variables (highest priority)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	pserrors "github.com/parseek/parseek/internal/errors"
)

// ConfigFileName is the project configuration file name.
const ConfigFileName = ".parseek.yaml"

// Backend names accepted by the search.mode setting.
const (
	ModeThreads   = "threads"
	ModeProcesses = "processes"
)

// Config represents the complete parseek configuration.
type Config struct {
	Version int           `yaml:"version" json:"version"`
	Search  SearchConfig  `yaml:"search" json:"search"`
	Corpus  CorpusConfig  `yaml:"corpus" json:"corpus"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// SearchConfig configures the parallel search engine.
type SearchConfig struct {
	// Workers is the number of concurrent execution units (default: 4).
	Workers int `yaml:"workers" json:"workers"`

	// Mode selects the execution backend: "threads" (goroutines sharing
	// one address space) or "processes" (isolated child processes).
	Mode string `yaml:"mode" json:"mode"`

	// Keywords are the default keywords when none are given on the CLI.
	// Order is preserved; duplicates are the caller's problem.
	Keywords []string `yaml:"keywords" json:"keywords"`

	// MaxFileSize is the largest file the lister will hand to a worker,
	// in bytes (default: 10 MB).
	MaxFileSize int64 `yaml:"max_file_size" json:"max_file_size"`

	// Extensions restricts listing to these file extensions.
	// Empty means all non-binary files.
	Extensions []string `yaml:"extensions" json:"extensions"`
}

// CorpusConfig configures the synthetic corpus generator.
type CorpusConfig struct {
	// Dir is the directory where generated files are written.
	Dir string `yaml:"dir" json:"dir"`
	// Files is the number of files to generate (default: 100).
	Files int `yaml:"files" json:"files"`
	// Seed makes generation reproducible (default: 42).
	Seed int64 `yaml:"seed" json:"seed"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Version: 1,
		Search: SearchConfig{
			Workers:     4,
			Mode:        ModeThreads,
			MaxFileSize: 10 * 1024 * 1024,
			Extensions:  []string{".txt"},
		},
		Corpus: CorpusConfig{
			Dir:   "testdata/corpus",
			Files: 100,
			Seed:  42,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the project config from dir, applies env overrides, and
// validates the result. A missing config file is not an error; defaults
// are used.
func Load(dir string) (*Config, error) {
	cfg := NewConfig()

	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, pserrors.New(pserrors.ErrCodeConfigPermission,
			fmt.Sprintf("cannot read %s: %v", path, err), err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, pserrors.ConfigError(
				fmt.Sprintf("cannot parse %s: %v", path, err), err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML to dir.
func (c *Config) Save(dir string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return pserrors.ConfigError("cannot marshal config", err)
	}
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return pserrors.New(pserrors.ErrCodeConfigPermission,
			fmt.Sprintf("cannot write %s: %v", path, err), err)
	}
	return nil
}

// applyEnvOverrides applies PARSEEK_* environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PARSEEK_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Search.Workers = n
		}
	}
	if v := os.Getenv("PARSEEK_MODE"); v != "" {
		c.Search.Mode = v
	}
	if v := os.Getenv("PARSEEK_KEYWORDS"); v != "" {
		c.Search.Keywords = splitList(v)
	}
	if v := os.Getenv("PARSEEK_MAX_FILE_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Search.MaxFileSize = n
		}
	}
	if v := os.Getenv("PARSEEK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the configuration for values the engine would reject.
func (c *Config) Validate() error {
	if c.Search.Workers <= 0 {
		return pserrors.New(pserrors.ErrCodeInvalidWorkers,
			fmt.Sprintf("search.workers must be positive, got %d", c.Search.Workers), nil)
	}
	if c.Search.Mode != ModeThreads && c.Search.Mode != ModeProcesses {
		return pserrors.New(pserrors.ErrCodeUnknownBackend,
			fmt.Sprintf("search.mode must be %q or %q, got %q",
				ModeThreads, ModeProcesses, c.Search.Mode), nil)
	}
	if c.Search.MaxFileSize <= 0 {
		return pserrors.ConfigError(
			fmt.Sprintf("search.max_file_size must be positive, got %d", c.Search.MaxFileSize), nil)
	}
	if c.Corpus.Files < 0 {
		return pserrors.ConfigError(
			fmt.Sprintf("corpus.files must not be negative, got %d", c.Corpus.Files), nil)
	}
	return nil
}

// splitList splits a comma-separated env value, trimming whitespace and
// dropping empty entries.
func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
