// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// Decoding is built on github.com/go-audio/aiff. AIFF is the
// big-endian sibling of WAV, common on Apple platforms, with the
// sample rate stored as an 80-bit extended float; the underlying
// library absorbs those container differences.
//
// Supported payloads are signed PCM at 8, 16, 24 and 32 bits, mono or
// multi-channel, at any sample rate. AIFF-C compressed payloads are
// rejected. Decoding prefers an io.ReadSeeker input; anything else is
// buffered in memory first.
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aif")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples come back as float32 in [-1.0, 1.0], normalized from the
// file's bit depth.
//
// # Error Handling
//
// Decode failures map to sentinel errors:
//   - ErrNotAiffFile: The input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: The PCM bit depth is not 8, 16, 24 or 32
//   - ErrUnsupportedAiffLayout: Unsupported AIFF file structure
//   - ErrUnsupportedAiffChunks: The chunk list could not be parsed
//
// ErrNotAiffFile is the probe signal when sniffing unknown files:
//
//	source, err := decoder.Decode(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // try the next format
//	}
//
// Writing AIFF is not supported.
package aiff
