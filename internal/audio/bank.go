// Package audio turns the sound requests drained from the simulation
// into speaker output. Effects are synthesised at startup; there are no
// sound files to load.
package audio

import (
	"fmt"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// generator builds a fresh streamer for one playback.
type generator func(rate beep.SampleRate, vol float64) beep.Streamer

// generators holds the effect for every sound the simulation can request.
var generators = map[core.Sound]generator{
	core.SoundHit:   createHitSound,
	core.SoundCrash: createCrashSound,
}

// Bank maps each sound to a streamer factory at the configured volume.
type Bank struct {
	rate   beep.SampleRate
	sounds map[core.Sound]func() beep.Streamer
}

// NewBank builds the sound bank. It fails if any sound lacks an effect,
// so a missing asset is caught before the game starts.
func NewBank(cfg config.AudioConfig) (*Bank, error) {
	return newBank(cfg, generators)
}

func newBank(cfg config.AudioConfig, gens map[core.Sound]generator) (*Bank, error) {
	b := &Bank{
		rate:   beep.SampleRate(cfg.SampleRate),
		sounds: make(map[core.Sound]func() beep.Streamer, len(gens)),
	}

	for _, snd := range core.AllSounds() {
		gen, ok := gens[snd]
		if !ok {
			return nil, fmt.Errorf("audio: no effect for sound %q", snd)
		}
		vol := effectVolume(cfg, snd) * cfg.MasterVolume
		b.sounds[snd] = func() beep.Streamer {
			return gen(b.rate, vol)
		}
	}

	return b, nil
}

// effectVolume returns the per-sound volume multiplier.
func effectVolume(cfg config.AudioConfig, snd core.Sound) float64 {
	switch snd {
	case core.SoundHit:
		return cfg.Volumes.Hit
	case core.SoundCrash:
		return cfg.Volumes.Crash
	default:
		return 0
	}
}

// Streamer returns a new streamer for snd.
func (b *Bank) Streamer(snd core.Sound) (beep.Streamer, bool) {
	f, ok := b.sounds[snd]
	if !ok {
		return nil, false
	}
	return f(), true
}

// SampleRate returns the rate the effects are generated at.
func (b *Bank) SampleRate() beep.SampleRate {
	return b.rate
}
