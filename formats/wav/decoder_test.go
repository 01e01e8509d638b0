// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
)

// monoFixture renders a mono 16-bit WAV through the package's own writer.
func monoFixture(t testing.TB, sampleRate int, samples []int16) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, sampleRate, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	return buf.Bytes()
}

// rawWAV builds a WAV with an arbitrary fmt chunk, optional leading chunks,
// and a raw data payload. Used for layouts WriteWAV16 never produces.
func rawWAV(audioFormat, channels, bits uint16, sampleRate uint32, leading, data []byte) []byte {
	buf := new(bytes.Buffer)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+len(leading)+len(data)))
	buf.WriteString("WAVE")

	buf.Write(leading)

	bytesPerFrame := uint32(channels) * uint32(bits/8)
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, audioFormat)
	binary.Write(buf, binary.LittleEndian, channels)
	binary.Write(buf, binary.LittleEndian, sampleRate)
	binary.Write(buf, binary.LittleEndian, sampleRate*bytesPerFrame)
	binary.Write(buf, binary.LittleEndian, uint16(bytesPerFrame))
	binary.Write(buf, binary.LittleEndian, bits)

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)

	return buf.Bytes()
}

// chunk encodes a single RIFF sub-chunk, padding odd sizes to even.
func chunk(id string, payload []byte) []byte {
	buf := new(bytes.Buffer)
	buf.WriteString(id)
	binary.Write(buf, binary.LittleEndian, uint32(len(payload)))
	buf.Write(payload)
	if len(payload)%2 == 1 {
		buf.WriteByte(0)
	}
	return buf.Bytes()
}

// pcm16 packs int16 samples little-endian for rawWAV payloads.
func pcm16(samples ...int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}

func TestDecoder_Metadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		data       func(t *testing.T) []byte
		sampleRate int
		channels   int
	}{
		{
			"8kHz mono",
			func(t *testing.T) []byte { return monoFixture(t, 8000, []int16{0, 100, -100}) },
			8000, 1,
		},
		{
			"96kHz mono",
			func(t *testing.T) []byte { return monoFixture(t, 96000, []int16{0, 100, -100}) },
			96000, 1,
		},
		{
			"22.05kHz stereo",
			func(t *testing.T) []byte { return rawWAV(1, 2, 16, 22050, nil, pcm16(100, 200, 300, 400)) },
			22050, 2,
		},
		{
			"48kHz stereo",
			func(t *testing.T) []byte { return rawWAV(1, 2, 16, 48000, nil, pcm16(100, 200, 300, 400)) },
			48000, 2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			decoder := Decoder{}
			src, err := decoder.Decode(bytes.NewReader(tt.data(t)))
			if err != nil {
				t.Fatalf("Decode() error = %v, want nil", err)
			}

			if src.SampleRate() != tt.sampleRate {
				t.Errorf("SampleRate() = %d, want %d", src.SampleRate(), tt.sampleRate)
			}
			if src.Channels() != tt.channels {
				t.Errorf("Channels() = %d, want %d", src.Channels(), tt.channels)
			}
			if src.BufSize() <= 0 {
				t.Errorf("BufSize() = %d, want positive", src.BufSize())
			}
			if err := src.Close(); err != nil {
				t.Errorf("Close() error = %v, want nil", err)
			}
		})
	}
}

func TestDecoder_Rejections(t *testing.T) {
	t.Parallel()

	badMarker := func() []byte {
		buf := new(bytes.Buffer)
		buf.WriteString("RIFF")
		binary.Write(buf, binary.LittleEndian, uint32(36))
		buf.WriteString("NOPE")
		return buf.Bytes()
	}

	tests := []struct {
		name string
		data []byte
		want error // nil means any error will do
	}{
		{"not RIFF at all", []byte("NOT A WAV FILE DATA"), ErrNotWavFile},
		{"wrong WAVE marker", badMarker(), ErrNotWavFile},
		{"truncated header", []byte("RIFF\x00"), nil},
		// 8-bit PCM is unsigned, the decoder does not support it.
		{"8-bit payload", rawWAV(1, 1, 8, 8000, nil, []byte{128, 128, 128, 128}), ErrUnsupportedBitDepth},
		// IEEE float format tag; only integer PCM is supported.
		{"float format tag", rawWAV(3, 1, 32, 8000, nil, make([]byte, 16)), ErrOnlyPCMSupported},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			decoder := Decoder{}
			_, err := decoder.Decode(bytes.NewReader(tt.data))

			if err == nil {
				t.Fatal("Decode() error = nil, want error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecoder_SkipsForeignChunks(t *testing.T) {
	t.Parallel()

	// LIST and INFO style chunks before fmt must be skipped, including
	// odd-sized ones whose pad byte keeps the stream word-aligned.
	tests := []struct {
		name    string
		leading []byte
	}{
		{"even-sized chunk", chunk("INFO", []byte{0, 0, 0, 0})},
		{"odd-sized chunk", chunk("INFO", []byte{0, 0, 0})},
		{"two chunks", append(chunk("LIST", []byte{1, 2}), chunk("junk", []byte{3, 4, 5})...)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := rawWAV(1, 1, 16, 8000, tt.leading, pcm16(100, 200))

			decoder := Decoder{}
			src, err := decoder.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Decode() error = %v, want nil", err)
			}

			dst := make([]float32, 2)
			n, err := src.ReadSamples(dst)
			if err != nil && err != io.EOF {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n != 2 {
				t.Errorf("ReadSamples() n = %d, want 2 (data chunk found past foreign chunks)", n)
			}
		})
	}
}

func TestDecoder_24BitPCM(t *testing.T) {
	t.Parallel()

	// Two 24-bit frames at half scale, positive then negative.
	data := []byte{
		0x00, 0x00, 0x40,
		0x00, 0x00, 0xC0,
	}

	decoder := Decoder{}
	src, err := decoder.Decode(bytes.NewReader(rawWAV(1, 1, 24, 48000, nil, data)))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	dst := make([]float32, 2)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 2 {
		t.Fatalf("ReadSamples() n = %d, want 2", n)
	}

	want := []float32{0.5, -0.5}
	for i := range want {
		if math.Abs(float64(dst[i]-want[i])) > 0.01 {
			t.Errorf("dst[%d] = %v, want ~%v", i, dst[i], want[i])
		}
	}
}

func TestSource_ReadSamples_Conversion(t *testing.T) {
	t.Parallel()

	data := monoFixture(t, 8000, []int16{0, 16384, 32767, -16384, -32768})

	decoder := Decoder{}
	src, err := decoder.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 5 {
		t.Fatalf("ReadSamples() n = %d, want 5", n)
	}

	want := []float32{0.0, 0.5, 1.0, -0.5, -1.0}
	for i := range want {
		if math.Abs(float64(dst[i]-want[i])) > 0.01 {
			t.Errorf("dst[%d] = %v, want ~%v", i, dst[i], want[i])
		}
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	src, err := decoder.Decode(bytes.NewReader(monoFixture(t, 8000, []int16{100, 200, 300})))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	n, err := src.ReadSamples(nil)

	if err != nil {
		t.Errorf("ReadSamples(nil) error = %v, want nil", err)
	}
	if n != 0 {
		t.Errorf("ReadSamples(nil) n = %d, want 0", n)
	}
}

func TestSource_ReadSamples_ChunkedDrain(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	src, err := decoder.Decode(bytes.NewReader(monoFixture(t, 8000, []int16{100, 200, 300, 400, 500})))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	dst := make([]float32, 2)

	n1, err1 := src.ReadSamples(dst)
	if n1 != 2 || err1 != nil {
		t.Fatalf("first ReadSamples() = (%d, %v), want (2, nil)", n1, err1)
	}

	n2, err2 := src.ReadSamples(dst)
	if n2 != 2 || err2 != nil {
		t.Fatalf("second ReadSamples() = (%d, %v), want (2, nil)", n2, err2)
	}

	n3, err3 := src.ReadSamples(dst)
	if n3 != 1 {
		t.Errorf("third ReadSamples() n = %d, want 1 (last sample)", n3)
	}
	if err3 != io.EOF {
		t.Errorf("third ReadSamples() error = %v, want io.EOF", err3)
	}

	// A drained source keeps returning (0, io.EOF).
	n4, err4 := src.ReadSamples(dst)
	if n4 != 0 || err4 != io.EOF {
		t.Errorf("ReadSamples() after drain = (%d, %v), want (0, io.EOF)", n4, err4)
	}
}

func BenchmarkDecoder_Decode(b *testing.B) {
	samples := make([]int16, 44100)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}
	data := monoFixture(b, 44100, samples)

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		decoder := Decoder{}
		_, _ = decoder.Decode(bytes.NewReader(data))
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 44100*10)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}
	data := monoFixture(b, 44100, samples)

	decoder := Decoder{}
	src, err := decoder.Decode(bytes.NewReader(data))
	if err != nil {
		b.Fatalf("Decode() error = %v", err)
	}
	dst := make([]float32, 4096)

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = src.ReadSamples(dst)
	}
}
