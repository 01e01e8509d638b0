// SPDX-License-Identifier: EPL-2.0

// Package playback renders audio clips at musical pitches through the
// default output device.
//
// The engine is single-voice: at most one note renders at a time, and
// triggering a new note cuts off the previous one. Pitch is mapped to
// playback speed by equal-temperament scaling, so a note an octave above
// the base note plays twice as fast and lasts half as long.
//
// A machine without a usable output device is not an error: the engine
// degrades to a silent mode where PlayNote is a no-op returning nil.
package playback

import (
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/openwah/soundbite/audio"
)

// Engine owns the output device and the single active voice.
type Engine struct {
	dev      device
	rate     int
	gain     float32
	baseNote int
	log      *slog.Logger

	// mu guards voice. It is held only across the stop/start swap, never
	// across a render.
	mu    sync.Mutex
	voice voice
}

// New acquires the output device and returns a ready engine. When no device
// is available the engine comes up in silent mode instead of failing, and
// the condition is logged once here.
func New(cfg Config) *Engine {
	cfg = cfg.withDefaults()

	dev, err := newOtoDevice(cfg.SampleRate)
	if err != nil {
		cfg.Logger.Warn("audio output unavailable, running silent", "error", err)
		return newEngine(nil, cfg)
	}
	return newEngine(dev, cfg)
}

func newEngine(dev device, cfg Config) *Engine {
	cfg = cfg.withDefaults()
	return &Engine{
		dev:      dev,
		rate:     cfg.SampleRate,
		gain:     float32(cfg.Gain),
		baseNote: cfg.BaseNote,
		log:      cfg.Logger,
	}
}

// Silent reports whether the engine came up without an output device.
func (e *Engine) Silent() bool { return e.dev == nil }

// BaseNote returns the MIDI note that plays a clip at natural speed.
func (e *Engine) BaseNote() int { return e.baseNote }

// PitchRatio returns the playback-speed multiplier for a note the given
// number of semitones away from the base note: 2^(semitones/12).
func PitchRatio(semitones int) float64 {
	return math.Pow(2, float64(semitones)/12)
}

// PlayNote renders clip at the pitch of midiNote, replacing whatever note
// is currently sounding. The previous voice is stopped and the new one
// started under a single lock hold, so no two voices are ever live at once.
// Submission is non-blocking; the device pulls samples on its own.
//
// In silent mode PlayNote is a no-op returning nil.
func (e *Engine) PlayNote(clip *audio.Clip, midiNote int) error {
	if e.dev == nil {
		return nil
	}
	if clip == nil || clip.Frames() == 0 {
		return ErrNoClip
	}

	ratio := PitchRatio(midiNote - e.baseNote)
	stream := newNoteStream(clip, ratio, e.dev.SampleRate(), e.gain)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.voice != nil {
		if err := e.voice.Stop(); err != nil {
			// Best-effort cutoff; the replacement still proceeds.
			e.log.Debug("stopping previous voice", "error", err)
		}
		e.voice = nil
	}

	v, err := e.dev.NewVoice(stream)
	if err != nil {
		return fmt.Errorf("starting voice: %w", err)
	}
	e.voice = v
	v.Play()

	e.log.Debug("note triggered", "midi", midiNote, "ratio", ratio)
	return nil
}

// Stop cuts the active voice, if any.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.voice != nil {
		if err := e.voice.Stop(); err != nil {
			e.log.Debug("stopping voice", "error", err)
		}
		e.voice = nil
	}
}

// Close stops the active voice and releases the voice slot. The device
// context itself is process-wide and stays open.
func (e *Engine) Close() error {
	e.Stop()
	return nil
}
