// SPDX-License-Identifier: EPL-2.0

// Package soundbite turns arbitrary audio files into short fixed-duration
// "bites" and plays them back at musical pitches, emulating a sample-based
// piano.
//
// # Supported Formats
//
// The package decodes the following audio formats:
//   - WAV via formats/wav
//   - AIFF via formats/aiff
//   - Ogg Vorbis via formats/vorbis
//   - MP3 via formats/mp3
//
// The container format is auto-detected; the file extension is only a hint
// deciding which decoder is probed first.
//
// # Quick Start
//
// Load a one second bite and play it at different pitches:
//
//	clip, err := soundbite.Load("sample.mp3", time.Second)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	engine := playback.New(playback.DefaultConfig())
//	engine.PlayNote(clip, 60) // natural pitch (middle C)
//	engine.PlayNote(clip, 72) // one octave up, twice as fast
//
// The piano package bundles the full session state (current clip, bite
// duration, status line, synthesized fallback tone) behind a UI-friendly
// surface:
//
//	p := piano.New(engine, piano.DefaultConfig())
//	p.LoadBite("sample.wav")
//	p.PlayNote(64)
//
// # The Bite
//
// A bite is always exactly the requested duration: decoding stops once
// enough frames have been gathered, short sources are padded with trailing
// silence, longer ones are truncated, and every source is folded to mono.
// The decoded audio.Clip is immutable; replacing the current bite is an
// atomic swap, never an edit.
//
// # Pitch Mapping
//
// Notes are triggered by MIDI number. Playback speed scales by
// 2^(semitones/12) relative to the base note (middle C, MIDI 60), which
// shifts pitch and duration together. There is no time-stretching.
//
// # Audio Processing Pipeline
//
// The audio subpackage holds the building blocks the loader and the
// playback engine are made of:
//
//	src, _ := (wav.Decoder{}).Decode(file)
//	mono := audio.NewMonoMixer(src)
//	clip, _ := audio.Capture(mono, 44100)
//
// See the audio, synth, playback and piano subpackages for details.
package soundbite
