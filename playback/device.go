// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"
	"io"

	"github.com/ebitengine/oto/v3"
)

// device abstracts the audio output so the engine runs identically against
// real hardware, a test fake, or no output at all.
type device interface {
	SampleRate() int
	// NewVoice wraps r in a playable one-shot stream. The device pulls
	// 16-bit little-endian mono PCM from r on its own render path.
	NewVoice(r io.Reader) (voice, error)
}

// voice is one in-flight render of a clip at a given pitch.
type voice interface {
	Play()
	Stop() error
}

type otoDevice struct {
	ctx  *oto.Context
	rate int
}

// newOtoDevice acquires the process-wide oto context. oto allows exactly
// one context per process and offers no way to close it, so the engine
// creates the device once at startup and keeps it for the process lifetime.
func newOtoDevice(rate int) (*otoDevice, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	<-ready

	return &otoDevice{ctx: ctx, rate: rate}, nil
}

func (d *otoDevice) SampleRate() int { return d.rate }

func (d *otoDevice) NewVoice(r io.Reader) (voice, error) {
	return &otoVoice{player: d.ctx.NewPlayer(r)}, nil
}

type otoVoice struct {
	player *oto.Player
}

func (v *otoVoice) Play() { v.player.Play() }

// Stop cuts the render. The cutoff is best-effort: oto drains its internal
// buffer, so the exact sample at which audio stops is device-dependent.
func (v *otoVoice) Stop() error {
	if err := v.player.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
