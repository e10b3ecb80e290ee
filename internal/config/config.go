// Package config loads runtime settings from .bodygraph.yaml, BODYGRAPH_*
// environment variables and CLI flags through viper.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/papapumpkin/bodygraph/internal/birth"
)

// LogConfig controls the zap logger.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr              string        `mapstructure:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
}

// BatchConfig controls batch runs.
type BatchConfig struct {
	Workers int `mapstructure:"workers"`
}

// TelemetryConfig controls the JSONL event journal.
type TelemetryConfig struct {
	Path string `mapstructure:"path"`
}

// WatchConfig controls the inbox watcher.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// Config holds all runtime configuration.
// Values are populated from .bodygraph.yaml, BODYGRAPH_* env vars, and CLI flags.
type Config struct {
	DefaultTimezone string          `mapstructure:"default_timezone"`
	OutputFormat    string          `mapstructure:"output_format"`
	Verbose         bool            `mapstructure:"verbose"`
	Log             LogConfig       `mapstructure:"log"`
	Server          ServerConfig    `mapstructure:"server"`
	Batch           BatchConfig     `mapstructure:"batch"`
	Telemetry       TelemetryConfig `mapstructure:"telemetry"`
	Watch           WatchConfig     `mapstructure:"watch"`
}

// Formats lists the accepted output formats.
var Formats = []string{"json", "yaml", "toml", "text"}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags, and validates the
// result.
func Load() (Config, error) {
	viper.SetDefault("default_timezone", "UTC")
	viper.SetDefault("output_format", "json")
	viper.SetDefault("verbose", false)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.development", false)
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.read_header_timeout", 5*time.Second)
	viper.SetDefault("batch.workers", 4)
	viper.SetDefault("telemetry.path", "")
	viper.SetDefault("watch.debounce", 100*time.Millisecond)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges that viper cannot express.
func (c Config) Validate() error {
	if _, err := birth.Parse("2000-01-01", "12:00", c.DefaultTimezone); err != nil {
		return fmt.Errorf("default_timezone: %w", err)
	}
	if !validFormat(c.OutputFormat) {
		return fmt.Errorf("output_format %q: want one of %v", c.OutputFormat, Formats)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: want debug, info, warn or error", c.Log.Level)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers must be at least 1, got %d", c.Batch.Workers)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %s", c.Watch.Debounce)
	}
	if c.Server.ReadHeaderTimeout <= 0 {
		return fmt.Errorf("server.read_header_timeout must be positive, got %s", c.Server.ReadHeaderTimeout)
	}
	return nil
}

func validFormat(f string) bool {
	for _, ok := range Formats {
		if f == ok {
			return true
		}
	}
	return false
}
