// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding is built on the github.com/go-audio library, which walks the
// RIFF chunk list instead of assuming the canonical 44-byte header, so
// files with LIST/INFO chunks or unusual chunk ordering decode fine.
//
// # Supported Formats
//
// Decoding:
//   - PCM 16, 24 and 32-bit
//   - Mono and multi-channel
//   - Any sample rate
//
// 8-bit (unsigned) PCM, IEEE float and compressed payloads are rejected.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0], normalized from the source bit depth.
// Decoding prefers an io.ReadSeeker input; anything else is buffered in
// memory first.
//
// # Writing WAV Files
//
// Use WriteWAV16 to create mono 16-bit PCM files:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 8000, samples)
//
// The function writes a complete WAV file with proper headers. The test
// suites across this module use it to build fixtures.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrOnlyPCMSupported: The payload is not PCM data
//   - ErrUnsupportedBitDepth: The PCM bit depth is not 16, 24 or 32
//   - ErrUnsupportedWavLayout: The file structure is unusable
//
// Example:
//
//	source, err := decoder.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
package wav
