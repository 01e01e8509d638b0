// SPDX-License-Identifier: EPL-2.0

package soundbite

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/openwah/soundbite/audio"
	"github.com/openwah/soundbite/formats/aiff"
	"github.com/openwah/soundbite/formats/mp3"
	"github.com/openwah/soundbite/formats/vorbis"
	"github.com/openwah/soundbite/formats/wav"
)

// DefaultRegistry returns a registry with every built-in decoder wired up.
//
// Registration order matters for probing: when a file's extension does not
// identify its format, decoders are tried in this order. MP3 goes last
// because its frame-sync probe is by far the most permissive and would
// otherwise shadow the structured container formats.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	return reg
}

// Load decodes the file at path into a mono bite of exactly the requested
// duration.
//
// The container format is auto-detected: the extension is used only as a
// hint deciding which decoder gets the first attempt, then every other
// registered decoder is tried in registration order, rewinding the file
// between attempts. Decoding is bounded by the bite duration, so loading a
// short bite out of a long file never decodes the whole file.
//
// The resulting clip always holds round(rate * bite) frames: a source
// shorter than the bite is padded with trailing silence, a longer one is
// truncated. Multi-channel sources are folded to mono by per-frame
// averaging.
func Load(path string, bite time.Duration) (*audio.Clip, error) {
	if bite <= 0 {
		return nil, ErrInvalidBite
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := probe(DefaultRegistry(), f, FormatHint(path))
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return LoadSource(src, bite)
}

// LoadSource captures a bite from an already-open source. It applies the
// same mono fold and exact-length guarantee as Load, but leaves opening,
// probing and closing to the caller.
func LoadSource(src audio.Source, bite time.Duration) (*audio.Clip, error) {
	if bite <= 0 {
		return nil, ErrInvalidBite
	}
	if src.SampleRate() <= 0 || src.Channels() <= 0 {
		return nil, ErrMissingFormatInfo
	}

	frames := int(math.Round(float64(src.SampleRate()) * bite.Seconds()))
	if frames <= 0 {
		return nil, ErrInvalidBite
	}

	clip, err := audio.Capture(audio.NewMonoMixer(src), frames)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return clip, nil
}

// FormatHint maps a file path to the registry key its extension suggests,
// or "" when the extension is unknown. The hint only orders probing; it is
// never authoritative.
func FormatHint(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "wave":
		return "wav"
	case "aif", "aifc":
		return "aiff"
	case "oga":
		return "ogg"
	case "wav", "aiff", "ogg", "mp3":
		return ext
	}
	return ""
}

// probe finds a decoder that accepts r, trying the hinted format first and
// then the remaining registered formats in registration order. r is rewound
// before every attempt.
func probe(reg *audio.Registry, r io.ReadSeeker, hint string) (audio.Source, error) {
	order := reg.Formats()
	if hint != "" {
		ordered := make([]string, 0, len(order))
		for _, name := range order {
			if name == hint {
				ordered = append(ordered, name)
			}
		}
		for _, name := range order {
			if name != hint {
				ordered = append(ordered, name)
			}
		}
		order = ordered
	}

	for _, name := range order {
		dec, ok := reg.Get(name)
		if !ok {
			continue
		}

		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		src, err := dec.Decode(r)
		if err == nil {
			return src, nil
		}
	}

	return nil, ErrUnknownFormat
}
