// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/openwah/soundbite/audio"
	"github.com/openwah/soundbite/utils"
)

// newNoteStream builds the one-shot byte stream for a single voice: a fresh
// cursor over the clip, folded to mono if needed, relabeled at the
// ratio-scaled sample rate, resampled back to the device rate, attenuated,
// and encoded as 16-bit little-endian PCM for the device to pull.
func newNoteStream(clip *audio.Clip, ratio float64, deviceRate int, gain float32) io.Reader {
	var src audio.Source = clip.Source()
	if clip.Channels() > 1 {
		src = audio.NewMonoMixer(src)
	}

	nominal := int(math.Round(float64(clip.SampleRate()) * ratio))
	if nominal < 1 {
		nominal = 1
	}

	resampled := audio.NewResampler(&rateShift{Source: src, rate: nominal}, deviceRate)

	return &pcm16Stream{
		src:  resampled,
		gain: gain,
		buf:  make([]float32, 2048),
	}
}

// rateShift relabels a source's sample rate without touching its samples.
// Resampling the relabeled stream back to the device rate is what turns a
// pitch ratio into an actual speed change on the wire.
type rateShift struct {
	audio.Source
	rate int
}

func (r *rateShift) SampleRate() int { return r.rate }

// pcm16Stream converts a float32 source into attenuated 16-bit PCM bytes.
type pcm16Stream struct {
	src  audio.Source
	gain float32
	buf  []float32
	done bool
}

func (s *pcm16Stream) Read(p []byte) (int, error) {
	if s.done {
		return 0, io.EOF
	}

	want := len(p) / 2
	if want == 0 {
		return 0, nil
	}
	if want > len(s.buf) {
		want = len(s.buf)
	}

	n, err := s.src.ReadSamples(s.buf[:want])
	for i := 0; i < n; i++ {
		v := utils.Float32ToInt16(s.buf[i] * s.gain)
		binary.LittleEndian.PutUint16(p[2*i:2*i+2], uint16(v))
	}

	if err != nil {
		if errors.Is(err, io.EOF) {
			s.done = true
			if n == 0 {
				return 0, io.EOF
			}
			// Deliver the final chunk now; EOF on the next read.
			return n * 2, nil
		}
		return n * 2, fmt.Errorf("%w", err)
	}

	return n * 2, nil
}
