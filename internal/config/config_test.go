package config

import (
	"testing"

	"github.com/atinylittleshell/strpath/internal/completion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.Enabled)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "none", cfg.Filter)
	assert.False(t, cfg.ShowSize)
	assert.Empty(t, cfg.Exclude)
	assert.Equal(t, "plain", cfg.Language)
}

func TestConfig_ParsedLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	level, err := cfg.ParsedLogLevel()
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, level)

	cfg.LogLevel = "debug"
	level, err = cfg.ParsedLogLevel()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level)

	cfg.LogLevel = "loud"
	_, err = cfg.ParsedLogLevel()
	assert.Error(t, err)
}

func TestConfig_GeneratorOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Filter = "fuzzy"
	cfg.ShowSize = true
	cfg.Exclude = []string{".git"}

	opts := cfg.GeneratorOptions()
	assert.Equal(t, completion.FilterFuzzy, opts.Filter)
	assert.True(t, opts.ShowSize)
	assert.Equal(t, []string{".git"}, opts.Exclude)

	cfg.Filter = "bogus"
	assert.Equal(t, completion.FilterNone, cfg.GeneratorOptions().Filter)
}
