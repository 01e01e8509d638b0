// SPDX-License-Identifier: EPL-2.0

// Package piano holds the sample-piano session: the current bite, the bite
// duration, and the status line a UI shows. It sits between the loader and
// the playback engine so UI glue only ever calls LoadBite and PlayNote.
//
// The session always has a playable bite. A fresh session starts with a
// synthesized tone, and a failed load leaves the previous bite untouched,
// so the keyboard never goes dead.
package piano

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/openwah/soundbite"
	"github.com/openwah/soundbite/audio"
	"github.com/openwah/soundbite/synth"
)

// NotePlayer is the playback surface the session needs. *playback.Engine
// implements it.
type NotePlayer interface {
	PlayNote(clip *audio.Clip, midiNote int) error
}

// Piano is a sample-piano session. All methods are safe for concurrent use.
type Piano struct {
	player NotePlayer
	log    *slog.Logger

	// clip is replaced wholesale on every successful load, never edited,
	// so PlayNote always reads a fully-formed bite without locking.
	clip atomic.Pointer[audio.Clip]

	mu     sync.Mutex
	path   string
	bite   time.Duration
	status string
}

// New starts a session seeded with the synthesized tone at the configured
// bite duration, so playback works before any file has been loaded.
func New(player NotePlayer, cfg Config) *Piano {
	cfg = cfg.withDefaults()

	p := &Piano{
		player: player,
		log:    cfg.Logger,
		bite:   cfg.BiteDuration,
		status: fmt.Sprintf("Load any sound clip to build your %s base note.", cfg.BiteDuration),
	}
	p.clip.Store(synth.Tone(cfg.BiteDuration))
	return p
}

// LoadBite decodes the file at path into a bite of the current duration and
// makes it the session's sample. On failure the previous bite, path and
// duration all stay in place; only the status line reports the problem.
func (p *Piano) LoadBite(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	clip, err := soundbite.Load(path, p.bite)
	if err != nil {
		p.status = fmt.Sprintf("Could not load clip: %v", err)
		p.log.Info("bite load failed", "path", path, "error", err)
		return fmt.Errorf("%w", err)
	}

	p.clip.Store(clip)
	p.path = path
	p.status = fmt.Sprintf("Loaded %s (%d Hz, %d channel(s)). The first %s are now mapped across the keyboard.",
		filepath.Base(path), clip.SampleRate(), clip.Channels(), p.bite)
	p.log.Info("bite loaded", "path", path, "rate", clip.SampleRate(), "frames", clip.Frames())
	return nil
}

// SetBiteDuration changes the bite length and rebuilds the current sample:
// the selected file is re-decoded at the new duration, or the tone is
// regenerated when no file is selected. A failed re-decode keeps the
// previous bite and duration.
func (p *Piano) SetBiteDuration(d time.Duration) error {
	if d < MinBiteDuration || d > MaxBiteDuration {
		return ErrBiteOutOfRange
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.path == "" {
		p.clip.Store(synth.Tone(d))
		p.bite = d
		p.status = fmt.Sprintf("Bite set to %s using the built-in tone.", d)
		return nil
	}

	clip, err := soundbite.Load(p.path, d)
	if err != nil {
		p.status = fmt.Sprintf("Could not reload clip: %v", err)
		p.log.Info("bite reload failed", "path", p.path, "error", err)
		return fmt.Errorf("%w", err)
	}

	p.clip.Store(clip)
	p.bite = d
	p.status = fmt.Sprintf("Loaded %s (%d Hz, %d channel(s)). The first %s are now mapped across the keyboard.",
		filepath.Base(p.path), clip.SampleRate(), clip.Channels(), d)
	return nil
}

// PlayNote triggers the current bite at the pitch of midiNote. A playback
// failure lands in the status line and the returned error; it never panics
// and never unloads the bite.
func (p *Piano) PlayNote(midiNote int) error {
	if err := p.player.PlayNote(p.clip.Load(), midiNote); err != nil {
		p.mu.Lock()
		p.status = fmt.Sprintf("Playback error: %v", err)
		p.mu.Unlock()
		return fmt.Errorf("%w", err)
	}
	return nil
}

// Clip returns the current bite.
func (p *Piano) Clip() *audio.Clip { return p.clip.Load() }

// Path returns the selected file, or "" when the tone is active.
func (p *Piano) Path() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.path
}

// BiteDuration returns the current bite length.
func (p *Piano) BiteDuration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.bite
}

// Status returns the human-readable line describing the last operation.
func (p *Piano) Status() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}
