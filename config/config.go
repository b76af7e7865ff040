// Package config loads the lookup host configuration from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Defaults.
const (
	DefaultSlowPluginThreshold = 10 * time.Millisecond
	DefaultPluginAPI           = ">= 0"
	DefaultLogLevel            = "info"
)

// Config holds the tunables of a lookup host.
type Config struct {
	// SlowPluginThreshold is how long a plugin call may take before a warning is logged.
	SlowPluginThreshold time.Duration `yaml:"slow_plugin_threshold"`

	// DisabledPlugins are doublestar patterns matched against plugin names.
	// Matching plugins are never registered.
	DisabledPlugins []string `yaml:"disabled_plugins"`

	// PluginAPI is a semver constraint every plugin's declared API version must satisfy.
	PluginAPI string `yaml:"plugin_api"`

	LogLevel string `yaml:"log_level"`

	// DebugCalls logs every plugin call at debug level.
	DebugCalls bool `yaml:"debug_calls"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		SlowPluginThreshold: DefaultSlowPluginThreshold,
		PluginAPI:           DefaultPluginAPI,
		LogLevel:            DefaultLogLevel,
	}
}

// Load reads a configuration file. A missing file yields Default().
func Load(path string) (Config, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to open directory %q: %w", dir, err)
	}
	defer func() { _ = root.Close() }()

	file, err := root.Open(base)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to open config %q: %w", base, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %q: %w", base, err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("decoding config YAML: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	var errs []error
	if c.SlowPluginThreshold < 0 {
		errs = append(errs, fmt.Errorf("slow_plugin_threshold must not be negative, got %s", c.SlowPluginThreshold))
	}
	for _, pattern := range c.DisabledPlugins {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, fmt.Errorf("disabled_plugins: bad pattern %q", pattern))
		}
	}
	if _, err := c.APIConstraint(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// APIConstraint parses PluginAPI. An empty value accepts every version.
func (c Config) APIConstraint() (*semver.Constraints, error) {
	raw := c.PluginAPI
	if raw == "" {
		raw = DefaultPluginAPI
	}
	constraint, err := semver.NewConstraint(raw)
	if err != nil {
		return nil, fmt.Errorf("plugin_api: invalid version constraint %q: %w", raw, err)
	}
	return constraint, nil
}

// Level parses LogLevel. An empty value means info.
func (c Config) Level() (slog.Level, error) {
	level := slog.LevelInfo
	if c.LogLevel == "" {
		return level, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}
