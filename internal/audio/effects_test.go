package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns every sample.
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 50 * time.Millisecond

	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			samples := drain(NewOscillator(440, duration, tc.wave, rate))

			if len(samples) != rate.N(duration) {
				t.Errorf("Expected %d samples, got %d", rate.N(duration), len(samples))
			}
			for i, s := range samples {
				if s[0] < -1.0 || s[0] > 1.0 || s[0] != s[1] {
					t.Fatalf("Sample %d out of range or not mono: %v", i, s)
				}
			}
		})
	}
}

func TestOscillatorSquare(t *testing.T) {
	samples := drain(NewOscillator(220, 20*time.Millisecond, WaveSquare, beep.SampleRate(44100)))

	for i, s := range samples {
		if s[0] != -1.0 && s[0] != 1.0 {
			t.Fatalf("Square wave sample %d should be -1.0 or 1.0, got %f", i, s[0])
		}
	}
}

func TestOscillatorDrained(t *testing.T) {
	osc := NewOscillator(440, time.Millisecond, WaveSine, beep.SampleRate(44100))
	drain(osc)

	n, ok := osc.Stream(make([][2]float64, 16))
	if n != 0 || ok {
		t.Errorf("Drained oscillator should return (0, false), got (%d, %v)", n, ok)
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	duration := 100 * time.Millisecond
	attack := 10 * time.Millisecond
	release := 20 * time.Millisecond

	// Constant +1 input exposes the envelope gain directly
	osc := NewOscillator(0, duration, WaveSquare, rate)
	samples := drain(NewEnvelope(osc, duration, attack, release, rate))

	if len(samples) != 100 {
		t.Fatalf("Expected 100 samples, got %d", len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("Attack should start silent, got %f", samples[0][0])
	}
	if samples[5][0] <= 0 || samples[5][0] >= 1 {
		t.Errorf("Mid-attack gain should be between 0 and 1, got %f", samples[5][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Sustain gain should be 1, got %f", samples[50][0])
	}
	if last := samples[99][0]; last <= 0 || last >= samples[80][0] {
		t.Errorf("Release should fade out, got %f after %f", last, samples[80][0])
	}
}

func TestNewVolumeSilent(t *testing.T) {
	osc := NewOscillator(440, 10*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	for i, s := range drain(newVolume(osc, 0)) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("Zero volume should be silent, sample %d = %v", i, s)
		}
	}
}

func TestNewVolumeScales(t *testing.T) {
	osc := NewOscillator(0, 10*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	for i, s := range drain(newVolume(osc, 0.5)) {
		if s[0] < 0.499 || s[0] > 0.501 {
			t.Fatalf("Half volume sample %d = %f, expected 0.5", i, s[0])
		}
	}
}
