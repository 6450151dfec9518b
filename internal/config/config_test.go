package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFile)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultBreakoutYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBreakoutConfig()) {
		t.Errorf("embedded defaults differ from DefaultBreakoutConfig:\n%+v\n%+v", cfg, DefaultBreakoutConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should be valid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
loop:
  tick_rate: 60
mode:
  mighty: true
audio:
  enabled: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Loop.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", cfg.Loop.TickRate)
	}
	if !cfg.Mode.Mighty {
		t.Error("Mighty should be set from file")
	}
	if cfg.Audio.Enabled {
		t.Error("Audio should be disabled from file")
	}
	// Keys missing from the file keep their defaults
	if cfg.Audio.SampleRate != 44100 || cfg.Log.Level != "info" {
		t.Errorf("Unset keys should keep defaults, got sample_rate=%d level=%q",
			cfg.Audio.SampleRate, cfg.Log.Level)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read config"},
		{"malformed yaml", writeConfig(t, t.TempDir(), "loop: [1, 2"), "failed to parse config"},
		{"invalid values", writeConfig(t, t.TempDir(), "loop:\n  tick_rate: 0\n"), "tick_rate"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".breakout", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeConfig(t, dir, "log:\n  level: debug\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q, expected user config value debug", cfg.Log.Level)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBreakoutConfig()) {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *BreakoutConfig)
		wantErr bool
	}{
		{"defaults", func(c *BreakoutConfig) {}, false},
		{"negative tick rate", func(c *BreakoutConfig) { c.Loop.TickRate = -1 }, true},
		{"zero sample rate", func(c *BreakoutConfig) { c.Audio.SampleRate = 0 }, true},
		{"master too loud", func(c *BreakoutConfig) { c.Audio.MasterVolume = 1.5 }, true},
		{"negative hit volume", func(c *BreakoutConfig) { c.Audio.Volumes.Hit = -0.1 }, true},
		{"silent crash", func(c *BreakoutConfig) { c.Audio.Volumes.Crash = 0 }, false},
		{"unknown log level", func(c *BreakoutConfig) { c.Log.Level = "loud" }, true},
		{"empty log level", func(c *BreakoutConfig) { c.Log.Level = "" }, true},
		{"warn level", func(c *BreakoutConfig) { c.Log.Level = "warn" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
