// Package config provides configuration management for strpath.
// It handles loading and parsing of the YAML configuration file and
// converting its values into the options the completion and listener
// packages consume.
package config

import (
	"fmt"
	"strings"

	"github.com/atinylittleshell/strpath/internal/completion"
	"go.uber.org/zap/zapcore"
)

// Config holds all configuration read from ~/.strpath/config.yaml.
type Config struct {
	// Enabled is the initial value of the global path completion flag.
	Enabled bool `yaml:"enabled"`

	// Debug makes listener invariant violations panic instead of being logged.
	Debug bool `yaml:"debug"`

	// LogLevel controls logging verbosity.
	LogLevel string `yaml:"log_level"`

	// Filter selects how the text after the last separator narrows the
	// listing: "none", "prefix" or "fuzzy".
	Filter string `yaml:"filter"`

	// ShowSize adds file sizes to candidate details.
	ShowSize bool `yaml:"show_size"`

	// Exclude holds glob patterns for entry names that are never offered.
	Exclude []string `yaml:"exclude"`

	// Language is the default language of new editor tabs.
	Language string `yaml:"language"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Enabled:  true,
		LogLevel: "info",
		Filter:   completion.FilterNone.String(),
		Exclude:  []string{},
		Language: "plain",
	}
}

// ParsedFilter returns the configured completion filter.
func (c *Config) ParsedFilter() (completion.Filter, error) {
	return completion.ParseFilter(c.Filter)
}

// ParsedLogLevel returns the configured log level.
func (c *Config) ParsedLogLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(strings.TrimSpace(c.LogLevel))
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// GeneratorOptions converts the configuration into completion options.
// An invalid filter falls back to offering every entry.
func (c *Config) GeneratorOptions() completion.Options {
	filter, err := c.ParsedFilter()
	if err != nil {
		filter = completion.FilterNone
	}
	return completion.Options{
		Filter:   filter,
		ShowSize: c.ShowSize,
		Exclude:  c.Exclude,
	}
}
