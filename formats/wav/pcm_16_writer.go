// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteWAV16 writes samples as a mono 16-bit PCM WAV at sampleRate. The
// payload is streamed in fixed chunks so large captures never need a
// full-file byte buffer.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	const (
		channels      = 1
		bitsPerSample = 16
		bytesPerFrame = channels * bitsPerSample / 8
	)

	dataSize := uint32(len(samples) * 2)

	// Canonical 44-byte header: RIFF chunk, fmt chunk, data chunk header
	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format tag
	binary.LittleEndian.PutUint16(header[22:24], channels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate)*bytesPerFrame)
	binary.LittleEndian.PutUint16(header[32:34], bytesPerFrame)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	const chunkFrames = 8192
	buf := make([]byte, min(len(samples), chunkFrames)*2)

	for start := 0; start < len(samples); start += chunkFrames {
		chunk := samples[start:min(start+chunkFrames, len(samples))]

		buf = buf[:len(chunk)*2]
		for i, s := range chunk {
			binary.LittleEndian.PutUint16(buf[i*2:], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
