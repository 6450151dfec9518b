package main

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
)

// overrides are command-line values that take precedence over the config file.
type overrides struct {
	fps    int
	mighty bool
	mute   bool
}

// resolveConfig loads the config from path and applies the command-line overrides.
func resolveConfig(path string, o overrides) (config.BreakoutConfig, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if o.fps != 0 {
		cfg.Loop.TickRate = o.fps
	}
	if o.mighty {
		cfg.Mode.Mighty = true
	}
	if o.mute {
		cfg.Audio.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// variantID returns the registry id of the configured variant.
func variantID(cfg config.BreakoutConfig) string {
	if cfg.Mode.Mighty {
		return "breakout_mighty"
	}
	return "breakout"
}
