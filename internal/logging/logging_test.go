package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"error", false, false},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(tc.level, &buf, "test")
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			logger.Debug("debug line")
			logger.Info("info line", "score", 400)

			out := buf.String()
			if strings.Contains(out, "debug line") != tc.wantDebug {
				t.Errorf("debug output = %v, expected %v:\n%s", !tc.wantDebug, tc.wantDebug, out)
			}
			if strings.Contains(out, "info line") != tc.wantInfo {
				t.Errorf("info output = %v, expected %v:\n%s", !tc.wantInfo, tc.wantInfo, out)
			}
			if tc.wantInfo && !strings.Contains(out, "score=400") {
				t.Errorf("expected key/value pair in output:\n%s", out)
			}
		})
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("chatty", &bytes.Buffer{}, ""); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "breakout.log")

	logger, closer, err := OpenFile(path, "info", "breakout")
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	logger.Info("game over", "score", 1200)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "game over") || !strings.Contains(string(data), "breakout") {
		t.Errorf("log file missing entry or prefix:\n%s", data)
	}
}
