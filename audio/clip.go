// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"time"
)

// Clip is a fully decoded, fixed-length slice of audio: interleaved float32
// samples in [-1,1] at a known sample rate and channel count.
//
// A Clip is immutable once constructed. Concurrent renders share the backing
// slice read-only; each call to Source returns an independent cursor over it,
// so no locking is needed. Replacing a clip means building a new one and
// dropping the old reference, never editing in place.
type Clip struct {
	rate     int
	channels int
	samples  []float32
}

// NewClip wraps samples in a Clip. The slice is retained, not copied; the
// caller must not modify it afterwards. Trailing values that do not fill a
// whole frame are dropped.
func NewClip(rate, channels int, samples []float32) *Clip {
	if channels < 1 {
		channels = 1
	}
	samples = samples[:len(samples)-len(samples)%channels]
	return &Clip{
		rate:     rate,
		channels: channels,
		samples:  samples,
	}
}

// SampleRate of the clip in Hz.
func (c *Clip) SampleRate() int { return c.rate }

// Channels count (1=mono, 2=stereo, ...).
func (c *Clip) Channels() int { return c.channels }

// Frames is the number of sample frames (samples per channel).
func (c *Clip) Frames() int { return len(c.samples) / c.channels }

// Samples returns the interleaved backing slice. Callers must treat it as
// read-only.
func (c *Clip) Samples() []float32 { return c.samples }

// Duration of the clip at its natural rate.
func (c *Clip) Duration() time.Duration {
	if c.rate <= 0 {
		return 0
	}
	frames := float64(c.Frames())
	return time.Duration(frames / float64(c.rate) * float64(time.Second))
}

// Source returns a fresh Source reading the clip from the start. Every call
// yields an independent cursor, so multiple renders can consume the same
// clip concurrently.
func (c *Clip) Source() Source {
	return &clipSource{clip: c}
}

type clipSource struct {
	clip *Clip
	off  int
}

func (s *clipSource) SampleRate() int { return s.clip.rate }
func (s *clipSource) Channels() int   { return s.clip.channels }
func (s *clipSource) BufSize() int    { return 4096 }
func (s *clipSource) Close() error    { return nil }

func (s *clipSource) ReadSamples(dst []float32) (int, error) {
	if s.off >= len(s.clip.samples) {
		return 0, io.EOF
	}

	n := copy(dst, s.clip.samples[s.off:])
	// Keep reads frame-aligned so downstream processors never see a torn
	// frame.
	if rem := n % s.clip.channels; rem != 0 && n > rem {
		n -= rem
	}
	s.off += n

	if s.off >= len(s.clip.samples) {
		return n, io.EOF
	}
	return n, nil
}
