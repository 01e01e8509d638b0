// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding.
//
// Decoding is built on github.com/jfreymuth/oggvorbis, which exposes
// the decoded stream as float32 samples directly, so this package is a
// thin adapter onto the audio.Source interface:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Channel count and sample rate come from the stream header; stereo
// samples are interleaved [L0, R0, L1, R1, ...]. Reads are trimmed to
// whole frames so a buffer never ends mid-frame. Anything that is not
// an Ogg container, or is Ogg but not Vorbis audio, fails Decode with
// the underlying parser's error.
//
// Encoding is not supported.
package vorbis
