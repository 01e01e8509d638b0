// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/openwah/soundbite/audio"
)

// mp3Reader is the slice of the go-mp3 decoder the source needs; tests
// substitute their own implementation.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Decoder probes and decodes MP3 streams for the bite loader.
type Decoder struct{}

// Decode wraps r in a streaming MP3 source. go-mp3 locates the first valid
// frame header itself, so leading ID3 tags and junk are tolerated; anything
// without a recognizable frame sync fails here, which is why the loader
// probes this format last.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		// go-mp3 always renders two interleaved channels, upmixing
		// mono streams.
		channels: 2,
		buf:      make([]byte, 8192),
	}, nil
}

// source adapts the byte-oriented go-mp3 reader to the float32 sample
// stream the rest of the pipeline speaks.
type source struct {
	dec        mp3Reader
	sampleRate int
	channels   int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

// BufSize reports capacity in samples; the byte buffer holds two bytes per
// sample.
func (s *source) BufSize() int { return cap(s.buf) / 2 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	// go-mp3 delivers signed 16-bit little-endian PCM.
	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := s.dec.Read(s.buf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	samples := n / 2
	for i := 0; i < samples; i++ {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = float32(v) / 32768.0
	}

	return samples, err
}
