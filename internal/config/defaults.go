package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Loop: LoopConfig{
			TickRate: 30,
		},
		Mode: ModeConfig{
			Mighty: false,
		},
		Audio: AudioConfig{
			Enabled:      true,
			SampleRate:   44100,
			MasterVolume: 0.5,
			Volumes: VolumeConfig{
				Hit:   0.6,
				Crash: 0.8,
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
