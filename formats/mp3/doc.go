// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding.
//
// Decoding is built on github.com/hajimehoshi/go-mp3, which handles
// MPEG-1 Audio Layer 3 at any bitrate and always emits 44.1kHz stereo
// int16 PCM. This package converts that stream to float32 samples in
// the range [-1.0, 1.0] behind the audio.Source interface:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Output is always two interleaved channels; mono MP3s arrive upmixed
// by the underlying decoder. Fold and retime with the audio package
// when a sound bite needs mono at a different rate:
//
//	resampled := audio.NewResampler(source, 8000)
//	mono := audio.NewMonoMixer(resampled)
//	clip, _ := audio.Capture(mono, 8000)
//
// MP3 carries no magic bytes at a fixed offset, so Decode probes for a
// valid frame header and returns an error when none is found. Probe
// this format last when sniffing unknown files. Encoding is not
// supported.
package mp3
