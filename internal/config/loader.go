package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atinylittleshell/strpath/internal/completion"
	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of configuration files.
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		logger: logger,
	}
}

// LoadResult contains the result of loading a configuration file.
type LoadResult struct {
	Config *Config
	Errors []error
}

// LoadFromFile loads configuration from a YAML file.
// Returns the configuration and any non-fatal errors encountered.
// If the file doesn't exist, returns default configuration with no error.
func (l *Loader) LoadFromFile(path string) (*LoadResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.Debug("config file not found, using defaults", zap.String("path", path))
			return &LoadResult{Config: DefaultConfig(), Errors: []error{}}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return l.LoadFromString(string(content))
}

// LoadFromString loads configuration from a YAML document.
// Syntax errors leave the defaults in place; invalid values are reset to
// their defaults one by one. Both are reported in LoadResult.Errors.
func (l *Loader) LoadFromString(source string) (*LoadResult, error) {
	result := &LoadResult{
		Config: DefaultConfig(),
		Errors: []error{},
	}

	decoded := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader([]byte(source)))
	dec.KnownFields(true)
	if err := dec.Decode(decoded); err != nil && !errors.Is(err, io.EOF) {
		result.Errors = append(result.Errors, fmt.Errorf("parse error: %w", err))
		return result, nil
	}

	result.Config = decoded
	l.validate(result)

	for _, err := range result.Errors {
		l.logger.Warn("invalid configuration value", zap.Error(err))
	}
	return result, nil
}

func (l *Loader) validate(result *LoadResult) {
	cfg := result.Config
	defaults := DefaultConfig()

	if _, err := cfg.ParsedLogLevel(); err != nil {
		result.Errors = append(result.Errors, err)
		cfg.LogLevel = defaults.LogLevel
	}

	if _, err := completion.ParseFilter(cfg.Filter); err != nil {
		result.Errors = append(result.Errors, fmt.Errorf("invalid filter: %w", err))
		cfg.Filter = defaults.Filter
	}

	if cfg.Exclude == nil {
		cfg.Exclude = []string{}
	}
	valid := make([]string, 0, len(cfg.Exclude))
	for _, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			result.Errors = append(result.Errors, fmt.Errorf("invalid exclude pattern %q", pattern))
			continue
		}
		valid = append(valid, pattern)
	}
	cfg.Exclude = valid

	if cfg.Language == "" {
		cfg.Language = defaults.Language
	}
}
