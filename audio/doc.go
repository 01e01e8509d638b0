// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio processing primitives.
//
// This package contains the core building blocks of the sound-bite pipeline:
//   - Source interface for streamed audio input
//   - Clip, the immutable fixed-length sample buffer
//   - Capture for bounded accumulation of a Source into a Clip
//   - Resampler for sample rate conversion
//   - MonoMixer for channel mixing
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All audio decoders and processors implement this interface, allowing
// them to be chained together in processing pipelines.
//
// # Clips and Capture
//
// A Clip is the materialized form of a Source: a fixed number of frames at a
// known rate and channel count, immutable after construction. Capture builds
// one:
//
//	clip, err := audio.Capture(src, 44100) // exactly one second of src
//
// Capture never reads more than it needs, pads a short source with silence
// and truncates a long one, so the resulting clip length is exact no matter
// what the source delivers. Clip.Source() turns a clip back into a Source;
// each call returns an independent cursor, which is what lets several
// renders share one clip without locks.
//
// # Resampling
//
// The Resampler changes the sample rate of audio using cubic interpolation:
//
//	resampler := audio.NewResampler(source, 16000)
//	buf := make([]float32, 4096)
//	n, err := resampler.ReadSamples(buf)
//
// Resampling works for both upsampling and downsampling with high quality.
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// The bite loader folds every decoded file through a MonoMixer, so clips
// are always single-channel.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// Registration order is preserved; probing an unknown file walks the
// registered decoders in that order.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes it easy to process audio without worrying
// about bit depths and ensures no clipping during intermediate processing.
//
// # Error Handling
//
// Streaming functions return io.EOF when no more data is available. A
// decoder may wrap ErrCorruptFrame to mark a single bad frame as skippable;
// Capture skips those and keeps reading. Other errors indicate problems
// with the source or processing:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
