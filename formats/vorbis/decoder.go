package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
	"github.com/openwah/soundbite/audio"
)

// oggReader is the slice of the oggvorbis reader the source needs; tests
// substitute their own implementation.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// Decoder probes and decodes Ogg Vorbis streams for the bite loader.
type Decoder struct{}

// Decode wraps r in a streaming Vorbis source. The Ogg capture pattern at
// the start of the stream is the probe: anything that is not an Ogg page
// fails here immediately.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}

// source adapts the oggvorbis reader to audio.Source. Vorbis already
// decodes to normalized float32, so samples pass through untouched; reads
// land directly in the caller's buffer.
type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	// The reader hands back whole frames only, so the request is
	// trimmed to a frame multiple.
	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst[:want])
	if n == 0 && err != nil {
		return 0, err
	}
	return n, err
}
