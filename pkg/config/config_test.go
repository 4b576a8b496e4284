package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/livemark/pkg/config"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	assert.Equal(t, 512, cfg.Cache.Capacity)
	assert.False(t, cfg.Viewport.Enabled)
	assert.Equal(t, 100, cfg.Viewport.BufferLines)
	assert.True(t, cfg.DetectLanguages)
	assert.Equal(t, "info", cfg.LogLevel)

	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "livemark.yaml")
	data := []byte("cache:\n  capacity: 64\nviewport:\n  enabled: true\n  buffer_lines: 20\nlog_level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.Cache.Capacity)
	assert.True(t, cfg.Viewport.Enabled)
	assert.Equal(t, 20, cfg.Viewport.BufferLines)
	assert.Equal(t, "debug", cfg.LogLevel)

	// Unset keys keep their defaults.
	assert.True(t, cfg.DetectLanguages)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNotFound)
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache: [unclosed"), 0o600))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{"defaults valid", func(*config.Config) {}, false},
		{"zero capacity valid", func(c *config.Config) { c.Cache.Capacity = 0 }, false},
		{"negative capacity", func(c *config.Config) { c.Cache.Capacity = -1 }, true},
		{"negative buffer", func(c *config.Config) { c.Viewport.BufferLines = -5 }, true},
		{"unknown log level", func(c *config.Config) { c.LogLevel = "loud" }, true},
		{"empty log level valid", func(c *config.Config) { c.LogLevel = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
