package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/harrison/sift/internal/display"
	"github.com/harrison/sift/internal/logger"
	"github.com/harrison/sift/internal/models"
	"github.com/harrison/sift/internal/search"
	"gopkg.in/yaml.v3"
)

// SearchDefaults holds default values for the search flags.
// Unset fields leave the built-in defaults in place.
type SearchDefaults struct {
	// Path is the default search root
	Path string `yaml:"path"`

	// Type is the default entry type (f|file, d|directory, b|both)
	Type string `yaml:"type"`

	// Depth is the default recursion budget; nil means unbounded
	Depth *uint64 `yaml:"depth"`

	// Regex is the default basename pattern
	Regex string `yaml:"regex"`
}

// Config represents sift configuration options
type Config struct {
	// LogLevel sets the diagnostics verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Color selects colored output: auto, always or never
	Color string `yaml:"color"`

	// KeepGoing skips unreadable entries instead of aborting the search
	KeepGoing bool `yaml:"keep_going"`

	// Defaults contains default search flag values
	Defaults SearchDefaults `yaml:"defaults"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "warn",
		Color:     display.ColorAuto,
		KeepGoing: false,
	}
}

// LoadConfig loads configuration from the specified YAML file.
// Keys missing from the file keep their default values.
// A missing or malformed file is a *search.ConfigError.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &search.ConfigError{Field: "config", Value: path, Err: errors.New("file not found")}
		}
		return nil, &search.ConfigError{Field: "config", Value: path, Err: fmt.Errorf("failed to read config file: %w", err)}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &search.ConfigError{Field: "config", Value: path, Err: fmt.Errorf("failed to parse config file: %w", err)}
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values.
func (c *Config) MergeWithFlags(logLevel *string, color *string, keepGoing *bool) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if color != nil {
		c.Color = *color
	}
	if keepGoing != nil {
		c.KeepGoing = *keepGoing
	}
}

// ApplyDefaults copies Defaults into opts for every search flag that was not
// set on the command line. changed reports whether a flag (by long name) was set.
func (c *Config) ApplyDefaults(opts *search.Options, changed func(name string) bool) {
	d := c.Defaults
	if d.Path != "" && !changed(search.FlagPath) {
		opts.Path = d.Path
	}
	if d.Type != "" && !changed(search.FlagType) {
		opts.Kind = models.ParseKind(d.Type)
	}
	if d.Depth != nil && !changed(search.FlagDepth) {
		opts.Depth = models.Limit(*d.Depth)
	}
	if d.Regex != "" && !changed(search.FlagRegex) {
		opts.Pattern = d.Regex
	}
	opts.KeepGoing = c.KeepGoing
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if !display.ValidColorMode(c.Color) {
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	return nil
}
