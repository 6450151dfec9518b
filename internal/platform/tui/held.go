package tui

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after its
// latest press or auto-repeat event.
const DefaultHoldWindow = 150 * time.Millisecond

// HeldKeys rebuilds level-triggered movement from key events.
// Terminals never report key releases, so a key is considered held until
// no event for it arrived within the hold window.
type HeldKeys struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	return &HeldKeys{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records a movement key event.
// A terminal only auto-repeats the most recent key, so pressing one
// direction releases the other.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.last, core.ActionRight)
	case core.ActionRight:
		delete(h.last, core.ActionLeft)
	default:
		return
	}
	h.last[a] = now
}

// Sample sets every movement action still held at now into frame.
func (h *HeldKeys) Sample(now time.Time, frame *core.InputFrame) {
	for a, at := range h.last {
		if now.Sub(at) <= h.window {
			frame.Set(a)
		}
	}
}

// Reset releases every key.
func (h *HeldKeys) Reset() {
	clear(h.last)
}
