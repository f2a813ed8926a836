package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/navsim/internal/core/observability/log"
)

// EnvLogLevel overrides the configured log level when set.
const EnvLogLevel = "NAVSIM_LOG_LEVEL"

// Config errors
var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config holds everything the navsim binary needs.
type Config struct {
	Input      string         `yaml:"input"`
	Concurrent bool           `yaml:"concurrent"`
	Log        LogConfig      `yaml:"log"`
	Parser     ParserConfig   `yaml:"parser"`
	Waypoint   WaypointConfig `yaml:"waypoint"`
}

type LogConfig struct {
	Level    string   `yaml:"level"`
	Encoding string   `yaml:"encoding"`
	Outputs  []string `yaml:"outputs,omitempty"`
}

type ParserConfig struct {
	// LegacyFallback treats unknown action letters as north moves.
	LegacyFallback bool `yaml:"legacy_fallback"`
}

// WaypointConfig is the starting waypoint offset relative to the ship.
type WaypointConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Input:      "inputData.txt",
		Concurrent: true,
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
		Waypoint: WaypointConfig{X: 10, Y: 1},
	}
}

// Load reads a YAML file on top of the defaults. An empty path yields the
// defaults. The environment override is applied last. The result is not
// validated, so callers can layer further overrides before calling Validate.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()

		cfg, err = LoadYAML(f)
		if err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	cfg.ApplyEnv(os.LookupEnv)
	return cfg, nil
}

// LoadYAML decodes YAML from r on top of the defaults.
func LoadYAML(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv applies environment overrides using lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input path is required", ErrInvalidConfig)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	switch c.Log.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("%w: unknown log encoding %q", ErrInvalidConfig, c.Log.Encoding)
	}

	return nil
}

// LoggerConfig converts the log section into a log.Config.
func (c *Config) LoggerConfig() log.Config {
	level, _ := log.ParseLevel(c.Log.Level)
	return log.Config{
		Level:       level,
		Encoding:    c.Log.Encoding,
		OutputPaths: c.Log.Outputs,
	}
}
