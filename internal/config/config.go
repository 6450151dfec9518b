// Package config provides YAML-based configuration loading for the
// breakout driver. Gameplay geometry is compiled in; only the options
// of the loop, audio output and logging are configurable.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// BreakoutConfig contains all driver configuration.
type BreakoutConfig struct {
	Loop  LoopConfig  `yaml:"loop"`
	Mode  ModeConfig  `yaml:"mode"`
	Audio AudioConfig `yaml:"audio"`
	Log   LogConfig   `yaml:"log"`
}

// LoopConfig defines frame pacing.
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"` // Simulation steps per second
}

// ModeConfig selects the game variant.
type ModeConfig struct {
	Mighty bool `yaml:"mighty"` // Paddle spans the whole floor
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled      bool         `yaml:"enabled"`
	SampleRate   int          `yaml:"sample_rate"`
	MasterVolume float64      `yaml:"master_volume"` // 0.0 - 1.0
	Volumes      VolumeConfig `yaml:"volumes"`
}

// VolumeConfig holds per-sound volume multipliers (0.0 - 1.0).
type VolumeConfig struct {
	Hit   float64 `yaml:"hit"`
	Crash float64 `yaml:"crash"`
}

// LogConfig defines the log verbosity.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Validate reports the first invalid setting.
func (c BreakoutConfig) Validate() error {
	if c.Loop.TickRate <= 0 {
		return fmt.Errorf("config: loop.tick_rate must be positive, got %d", c.Loop.TickRate)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("config: audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}

	volumes := []struct {
		name  string
		value float64
	}{
		{"audio.master_volume", c.Audio.MasterVolume},
		{"audio.volumes.hit", c.Audio.Volumes.Hit},
		{"audio.volumes.crash", c.Audio.Volumes.Crash},
	}
	for _, v := range volumes {
		if v.value < 0 || v.value > 1 {
			return fmt.Errorf("config: %s must be within [0, 1], got %g", v.name, v.value)
		}
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}

	return nil
}
