// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// maxStalledReads caps consecutive corrupt-frame reads that deliver no
// samples before Capture treats the source as dead.
const maxStalledReads = 1024

// Capture reads src until exactly frames sample frames have been gathered
// and returns them as a Clip at the source's rate and channel count.
//
// Reads are bounded: no more than frames worth of samples is ever requested
// from src, so capturing a short bite out of a long stream never decodes the
// whole stream. A source that ends early is padded with silence to the exact
// target length; a source that delivers more than requested is cut off. The
// returned clip therefore always holds frames*channels samples.
//
// Frame-level corrupt-data failures (errors wrapping ErrCorruptFrame) are
// skipped and reading continues, but a source that keeps reporting corrupt
// frames without ever delivering a sample gives up after a bounded number
// of attempts. io.EOF and io.ErrUnexpectedEOF end the capture early without
// error. Any other failure aborts the capture.
// If not a single frame was decoded, Capture fails with ErrNoFrames.
func Capture(src Source, frames int) (*Clip, error) {
	if frames <= 0 {
		return nil, ErrInvalidFrameCount
	}

	channels := src.Channels()
	if channels < 1 {
		channels = 1
	}

	bufSize := src.BufSize()
	if bufSize < channels {
		bufSize = 4096
	}
	bufSize -= bufSize % channels

	want := frames * channels
	samples := make([]float32, 0, want)
	buf := make([]float32, bufSize)

	// A corrupt read that also made no progress counts against this
	// budget; a decoder stuck on the same bad packet must not spin
	// forever.
	stalled := 0

	for len(samples) < want {
		need := want - len(samples)
		if need > len(buf) {
			need = len(buf)
		}

		n, err := src.ReadSamples(buf[:need])
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			if errors.Is(err, ErrCorruptFrame) {
				if n == 0 {
					stalled++
					if stalled >= maxStalledReads {
						break
					}
				} else {
					stalled = 0
				}
				continue
			}
			return nil, fmt.Errorf("%w", err)
		}

		if n == 0 {
			// A source that yields neither data nor an error is drained.
			break
		}
	}

	if len(samples)/channels == 0 {
		return nil, ErrNoFrames
	}

	if len(samples) < want {
		samples = append(samples, make([]float32, want-len(samples))...)
	} else {
		samples = samples[:want]
	}

	return &Clip{
		rate:     src.SampleRate(),
		channels: channels,
		samples:  samples,
	}, nil
}
