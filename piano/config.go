// SPDX-License-Identifier: EPL-2.0

package piano

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	// DefaultBiteDuration is the bite length a fresh session starts with.
	DefaultBiteDuration = time.Second

	// MinBiteDuration and MaxBiteDuration bound SetBiteDuration.
	MinBiteDuration = 500 * time.Millisecond
	MaxBiteDuration = 5 * time.Second
)

// Config holds the session settings.
type Config struct {
	// BiteDuration is the initial bite length, bounded by
	// MinBiteDuration and MaxBiteDuration.
	BiteDuration time.Duration

	// Logger receives load and playback outcomes. Nil means
	// slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the stock session configuration.
func DefaultConfig() Config {
	return Config{BiteDuration: DefaultBiteDuration}
}

// ConfigFromEnv builds a Config from SOUNDBITE_* environment variables,
// falling back to the defaults for anything unset or unparsable.
func ConfigFromEnv() Config {
	return Config{
		BiteDuration: envDurationMS("SOUNDBITE_BITE_MS", DefaultBiteDuration),
	}
}

func (cfg Config) withDefaults() Config {
	if cfg.BiteDuration < MinBiteDuration || cfg.BiteDuration > MaxBiteDuration {
		cfg.BiteDuration = DefaultBiteDuration
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}

func envDurationMS(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return fallback
}
