// File: config.go
// Role: Config type, defaults, file loading, validation and the adapters
//       into slog and routing options.

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtransit/clock"
	"github.com/katalvlaran/lvtransit/routing"
)

var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrRead indicates the config file could not be read or decoded.
	ErrRead = errors.New("config: cannot read file")
)

// LogFormat selects the slog handler.
type LogFormat string

const (
	// FormatText selects slog.TextHandler (key=value lines).
	FormatText LogFormat = "text"

	// FormatJSON selects slog.JSONHandler (one JSON object per record).
	FormatJSON LogFormat = "json"
)

// Config holds the service settings.
type Config struct {
	Horizon    routing.Horizon `yaml:"horizon"`
	ChangeTime int             `yaml:"change_time"`
	Start      clock.Clock     `yaml:"start"`
	Log        LogConfig       `yaml:"log"`
}

// LogConfig configures NewLogger.
type LogConfig struct {
	Level  slog.Level `yaml:"level"`
	Format LogFormat  `yaml:"format"`
}

// Default returns a full-day horizon, no change time, a 00:00 default start
// and info-level text logs.
func Default() *Config {
	return &Config{
		Horizon:    routing.MaxHorizon,
		ChangeTime: 0,
		Start:      clock.Midnight,
		Log: LogConfig{
			Level:  slog.LevelInfo,
			Format: FormatText,
		},
	}
}

// Load builds a Config from Default, the YAML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRead, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Horizon = routing.Horizon(getIntEnv("LVTRANSIT_HORIZON", int(c.Horizon)))
	c.ChangeTime = getIntEnv("LVTRANSIT_CHANGE_TIME", c.ChangeTime)
	c.Start = getClockEnv("LVTRANSIT_START", c.Start)
	c.Log.Level = getLogLevelEnv("LVTRANSIT_LOG_LEVEL", c.Log.Level)
	c.Log.Format = LogFormat(getEnv("LVTRANSIT_LOG_FORMAT", string(c.Log.Format)))
}

// Validate checks ranges. Errors wrap ErrInvalid and, for the horizon,
// routing.ErrBadHorizon.
func (c *Config) Validate() error {
	if _, err := routing.NewHorizon(int(c.Horizon)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.ChangeTime < 0 {
		return fmt.Errorf("%w: %w: got %d", ErrInvalid, routing.ErrBadChangeTime, c.ChangeTime)
	}
	switch c.Log.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// NewLogger builds a logger writing to w in the configured format and level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Log.Level}
	if c.Log.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// EngineOptions turns a validated Config into routing options. The result is
// accepted by routing.NewEngine, routing.RouteTo and routing.RoutesFrom.
func (c *Config) EngineOptions(logger *slog.Logger) []routing.Option {
	opts := []routing.Option{
		routing.WithHorizon(c.Horizon),
		routing.WithChangeTime(c.ChangeTime),
	}
	if logger != nil {
		opts = append(opts, routing.WithLogger(logger))
	}
	return opts
}
