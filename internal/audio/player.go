package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Player outputs the sounds drained after each step.
// Play must not block the game loop.
type Player interface {
	Play(sounds []core.Sound)
	Close()
}

// NopPlayer discards every sound. Used when audio is disabled and for SSH
// sessions, where the server has no way to reach the client's speakers.
type NopPlayer struct{}

func (NopPlayer) Play([]core.Sound) {}
func (NopPlayer) Close()            {}

// SpeakerPlayer plays sounds on the local audio device through one mixer.
type SpeakerPlayer struct {
	bank  *Bank
	mixer *beep.Mixer
}

// NewSpeakerPlayer opens the audio device at the bank's sample rate.
func NewSpeakerPlayer(bank *Bank) (*SpeakerPlayer, error) {
	rate := bank.SampleRate()
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: open speaker: %w", err)
	}

	p := &SpeakerPlayer{
		bank:  bank,
		mixer: &beep.Mixer{},
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Play starts every requested sound. Overlapping sounds are mixed.
func (p *SpeakerPlayer) Play(sounds []core.Sound) {
	if len(sounds) == 0 {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	for _, snd := range sounds {
		if s, ok := p.bank.Streamer(snd); ok {
			p.mixer.Add(s)
		}
	}
}

// Close stops playback and releases the device.
func (p *SpeakerPlayer) Close() {
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
}

// NewPlayer returns the player selected by cfg. With audio enabled a
// missing effect or an unavailable device is an error.
func NewPlayer(cfg config.AudioConfig) (Player, error) {
	if !cfg.Enabled {
		return NopPlayer{}, nil
	}

	bank, err := NewBank(cfg)
	if err != nil {
		return nil, err
	}

	p, err := NewSpeakerPlayer(bank)
	if err != nil {
		return nil, err
	}
	return p, nil
}
