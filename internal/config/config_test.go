package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/navsim/internal/core/observability/log"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "inputData.txt", cfg.Input)
	assert.True(t, cfg.Concurrent)
	assert.False(t, cfg.Parser.LegacyFallback)
	assert.Equal(t, WaypointConfig{X: 10, Y: 1}, cfg.Waypoint)
	assert.NoError(t, cfg.Validate())
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	cfg, err := LoadYAML(strings.NewReader(`
input: ferry.txt
concurrent: false
log:
  level: debug
parser:
  legacy_fallback: true
waypoint:
  x: 3
`))
	require.NoError(t, err)

	assert.Equal(t, "ferry.txt", cfg.Input)
	assert.False(t, cfg.Concurrent)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Encoding)
	assert.True(t, cfg.Parser.LegacyFallback)
	assert.Equal(t, WaypointConfig{X: 3, Y: 1}, cfg.Waypoint)
}

func TestLoadYAMLEmpty(t *testing.T) {
	cfg, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadYAMLUnknownField(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("inptu: typo.txt\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: other.txt\nlog:\n  encoding: json\n"), 0o644))
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "other.txt", cfg.Input)
	assert.Equal(t, "json", cfg.Log.Encoding)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadLeavesValidationToCaller(t *testing.T) {
	t.Setenv(EnvLogLevel, "loud")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "loud", cfg.Log.Level)
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.Log.Level = "debug"
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadWithoutPath(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty input", func(c *Config) { c.Input = "" }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad encoding", func(c *Config) { c.Log.Encoding = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoggerConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "error"
	cfg.Log.Outputs = []string{"stdout"}

	lc := cfg.LoggerConfig()
	assert.Equal(t, log.LevelError, lc.Level)
	assert.Equal(t, "console", lc.Encoding)
	assert.Equal(t, []string{"stdout"}, lc.OutputPaths)
}
