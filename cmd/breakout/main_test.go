package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/registry"
)

func TestResolveConfigOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name      string
		o         overrides
		wantFPS   int
		wantID    string
		wantAudio bool
		wantErr   bool
	}{
		{"defaults", overrides{}, 30, "breakout", true, false},
		{"fps", overrides{fps: 60}, 60, "breakout", true, false},
		{"mighty", overrides{mighty: true}, 30, "breakout_mighty", true, false},
		{"mute", overrides{mute: true}, 30, "breakout", false, false},
		{"negative fps", overrides{fps: -5}, 0, "", false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := resolveConfig("", tc.o)
			if (err != nil) != tc.wantErr {
				t.Fatalf("resolveConfig error = %v, wantErr %v", err, tc.wantErr)
			}
			if tc.wantErr {
				return
			}
			if cfg.Loop.TickRate != tc.wantFPS {
				t.Errorf("TickRate = %d, expected %d", cfg.Loop.TickRate, tc.wantFPS)
			}
			if variantID(cfg) != tc.wantID {
				t.Errorf("variantID = %q, expected %q", variantID(cfg), tc.wantID)
			}
			if cfg.Audio.Enabled != tc.wantAudio {
				t.Errorf("Audio.Enabled = %v, expected %v", cfg.Audio.Enabled, tc.wantAudio)
			}
		})
	}
}

func TestResolveConfigFileAndFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakout.yaml")
	if err := os.WriteFile(path, []byte("mode:\n  mighty: true\nloop:\n  tick_rate: 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(path, overrides{fps: 45})
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.Loop.TickRate != 45 {
		t.Errorf("Flag should override file tick rate, got %d", cfg.Loop.TickRate)
	}
	if variantID(cfg) != "breakout_mighty" {
		t.Errorf("File should select the mighty variant, got %q", variantID(cfg))
	}
}

func TestVariantsRegistered(t *testing.T) {
	var buf bytes.Buffer
	printVariants(&buf, registry.List())

	out := buf.String()
	for _, id := range []string{"breakout", "breakout_mighty"} {
		if !strings.Contains(out, id) {
			t.Errorf("Variant list missing %q:\n%s", id, out)
		}
	}
}

func TestPrintVariantsEmpty(t *testing.T) {
	var buf bytes.Buffer
	printVariants(&buf, nil)

	if !strings.Contains(buf.String(), "No variants available") {
		t.Errorf("Unexpected output: %q", buf.String())
	}
}
