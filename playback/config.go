// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"log/slog"
	"os"
	"strconv"
)

const (
	// DefaultSampleRate is the output device rate in Hz.
	DefaultSampleRate = 44100

	// DefaultGain is the fixed attenuation applied to every voice. It
	// leaves headroom so a retriggered note cutting into the previous
	// one's tail does not clip.
	DefaultGain = 0.7

	// DefaultBaseNote is middle C: the MIDI note at which a clip plays
	// at its natural recorded speed.
	DefaultBaseNote = 60
)

// Config holds the playback engine settings.
type Config struct {
	// SampleRate of the output device in Hz.
	SampleRate int

	// Gain multiplies every rendered sample, in (0, 1].
	Gain float64

	// BaseNote is the MIDI note mapped to pitch ratio 1.0.
	BaseNote int

	// Logger receives startup degradation warnings and per-note debug
	// events. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the stock engine configuration.
func DefaultConfig() Config {
	return Config{
		SampleRate: DefaultSampleRate,
		Gain:       DefaultGain,
		BaseNote:   DefaultBaseNote,
	}
}

// ConfigFromEnv builds a Config from SOUNDBITE_* environment variables,
// falling back to the defaults for anything unset or unparsable.
func ConfigFromEnv() Config {
	return Config{
		SampleRate: envInt("SOUNDBITE_SAMPLE_RATE", DefaultSampleRate),
		Gain:       envFloat("SOUNDBITE_GAIN", DefaultGain),
		BaseNote:   envInt("SOUNDBITE_BASE_NOTE", DefaultBaseNote),
	}
}

func (cfg Config) withDefaults() Config {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	if cfg.Gain <= 0 || cfg.Gain > 1 {
		cfg.Gain = DefaultGain
	}
	if cfg.BaseNote <= 0 {
		cfg.BaseNote = DefaultBaseNote
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
