package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, 4, cfg.Search.Workers)
	assert.Equal(t, ModeThreads, cfg.Search.Mode)
	assert.Equal(t, []string{".txt"}, cfg.Search.Extensions)
	assert.Equal(t, int64(10*1024*1024), cfg.Search.MaxFileSize)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Search.Workers)
}

func TestLoad_ReadsYAML(t *testing.T) {
	// Given: a project config overriding workers and mode
	dir := t.TempDir()
	content := `version: 1
search:
  workers: 8
  mode: processes
  keywords: [alpha, beta]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

	// When: loading
	cfg, err := Load(dir)

	// Then: file values win over defaults
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Search.Workers)
	assert.Equal(t, ModeProcesses, cfg.Search.Mode)
	assert.Equal(t, []string{"alpha", "beta"}, cfg.Search.Keywords)
}

func TestLoad_EnvOverridesWin(t *testing.T) {
	// Given: a config file and conflicting env vars
	dir := t.TempDir()
	content := "search:\n  workers: 8\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))
	t.Setenv("PARSEEK_WORKERS", "2")
	t.Setenv("PARSEEK_MODE", "processes")
	t.Setenv("PARSEEK_KEYWORDS", "gamma, delta ,")

	// When: loading
	cfg, err := Load(dir)

	// Then: env has the highest priority
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Search.Workers)
	assert.Equal(t, ModeProcesses, cfg.Search.Mode)
	assert.Equal(t, []string{"gamma", "delta"}, cfg.Search.Keywords)
}

func TestLoad_InvalidYAMLRejected(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("search: ["), 0o644))

	_, err := Load(dir)

	assert.Error(t, err)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero workers", func(c *Config) { c.Search.Workers = 0 }},
		{"negative workers", func(c *Config) { c.Search.Workers = -3 }},
		{"unknown mode", func(c *Config) { c.Search.Mode = "fibers" }},
		{"zero max file size", func(c *Config) { c.Search.MaxFileSize = 0 }},
		{"negative corpus files", func(c *Config) { c.Corpus.Files = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := NewConfig()
	cfg.Search.Workers = 6
	cfg.Search.Keywords = []string{"lorem"}

	require.NoError(t, cfg.Save(dir))
	loaded, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, 6, loaded.Search.Workers)
	assert.Equal(t, []string{"lorem"}, loaded.Search.Keywords)
}
