// File: env.go
// Role: LVTRANSIT_* environment lookups; unparsable values fall back to the
//       current setting.

package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtransit/clock"
)

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getIntEnv(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return defaultVal
}

func getClockEnv(key string, defaultVal clock.Clock) clock.Clock {
	if v := os.Getenv(key); v != "" {
		if c, err := clock.Parse(strings.TrimSpace(v)); err == nil {
			return c
		}
	}
	return defaultVal
}

func getLogLevelEnv(key string, defaultVal slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}

	switch strings.ToLower(v) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return defaultVal
	}
}
