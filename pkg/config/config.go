// Package config defines the livemark engine options that hosts and the
// CLI load from a YAML file. Only options this engine owns live here; the
// host editor's own settings stay on the host's side.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNotFound indicates the config file does not exist.
var ErrNotFound = errors.New("config file not found")

// Config holds all livemark settings.
type Config struct {
	// Cache controls the per-line inline result cache.
	Cache CacheConfig `yaml:"cache"`

	// Viewport controls viewport-limited inline scanning.
	Viewport ViewportConfig `yaml:"viewport"`

	// DetectLanguages enables content-based language detection for
	// unlabeled code fences.
	DetectLanguages bool `yaml:"detect_languages"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// CacheConfig bounds the inline line cache.
type CacheConfig struct {
	// Capacity is the maximum number of cached line results.
	Capacity int `yaml:"capacity"`
}

// ViewportConfig controls viewport-limited parsing.
type ViewportConfig struct {
	// Enabled turns viewport limiting on.
	Enabled bool `yaml:"enabled"`

	// BufferLines is the line buffer around the visible range.
	BufferLines int `yaml:"buffer_lines"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Cache:           CacheConfig{Capacity: 512},
		Viewport:        ViewportConfig{Enabled: false, BufferLines: 100},
		DetectLanguages: true,
		LogLevel:        "info",
	}
}

// Load reads and validates a config file, overlaying it on the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Cache.Capacity < 0 {
		return fmt.Errorf("cache.capacity must be >= 0, got %d", c.Cache.Capacity)
	}
	if c.Viewport.BufferLines < 0 {
		return fmt.Errorf("viewport.buffer_lines must be >= 0, got %d", c.Viewport.BufferLines)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}
