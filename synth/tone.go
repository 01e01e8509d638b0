// SPDX-License-Identifier: EPL-2.0

// Package synth procedurally generates a fallback tone so the piano always
// has a playable bite, even before any file has been loaded.
//
// The tone is a deterministic function of its duration: three sine partials
// (a middle C fundamental, one overtone, one sub-harmonic) under a squared
// decay envelope. Same duration in, bit-identical samples out.
package synth

import (
	"io"
	"math"
	"time"

	"github.com/openwah/soundbite/audio"
)

// ToneRate is the sample rate of every generated tone, in Hz.
const ToneRate = 44100

// fundamental is middle C, the same pitch the playback engine treats as the
// base note. Playing the tone at MIDI 60 reproduces it at natural speed.
const fundamental = 261.626

const (
	fundamentalGain = 0.5
	overtoneGain    = 0.25
	subharmonicGain = 0.25
)

// Tone generates a mono clip of the given duration at ToneRate. It always
// succeeds; non-positive durations are clamped to one millisecond.
func Tone(d time.Duration) *audio.Clip {
	frames := frameCount(d)
	samples := make([]float32, frames)
	for i := range samples {
		samples[i] = sampleAt(i, frames)
	}
	return audio.NewClip(ToneRate, 1, samples)
}

// NewToneSource returns the same tone as Tone in streaming form, for
// feeding pipelines that consume an audio.Source.
func NewToneSource(d time.Duration) *ToneSource {
	return &ToneSource{frames: frameCount(d)}
}

// ToneSource streams a generated tone. It implements audio.Source.
type ToneSource struct {
	frames int
	pos    int
}

func (s *ToneSource) SampleRate() int { return ToneRate }
func (s *ToneSource) Channels() int   { return 1 }
func (s *ToneSource) BufSize() int    { return 4096 }
func (s *ToneSource) Close() error    { return nil }

func (s *ToneSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	n := len(dst)
	if left := s.frames - s.pos; n > left {
		n = left
	}

	for i := 0; i < n; i++ {
		dst[i] = sampleAt(s.pos+i, s.frames)
	}
	s.pos += n

	if s.pos >= s.frames {
		return n, io.EOF
	}
	return n, nil
}

func frameCount(d time.Duration) int {
	if d <= 0 {
		d = time.Millisecond
	}
	return int(math.Round(ToneRate * d.Seconds()))
}

// sampleAt computes the tone's amplitude at one frame: three partials under
// a (1 - t/d)^2 envelope, hard-clamped to [-1, 1].
func sampleAt(frame, total int) float32 {
	t := float64(frame) / ToneRate
	env := 1 - float64(frame)/float64(total)
	env *= env

	v := env * (fundamentalGain*math.Sin(2*math.Pi*fundamental*t) +
		overtoneGain*math.Sin(2*math.Pi*2*fundamental*t) +
		subharmonicGain*math.Sin(2*math.Pi*fundamental/2*t))

	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return float32(v)
}
