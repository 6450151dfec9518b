// Package tui runs breakout in a terminal with Bubble Tea, locally or
// over SSH. It owns input sampling, frame pacing, audio hand-off and
// drawing; the simulation itself never sees Bubble Tea.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// frameBudget returns the duration of one tick at tickRate.
func frameBudget(tickRate int) time.Duration {
	return time.Second / time.Duration(tickRate)
}

// nextTickDelay returns how long to wait after a tick that took elapsed.
// Overruns are not compensated: the next tick fires immediately.
func nextTickDelay(tickRate int, elapsed time.Duration) time.Duration {
	return max(frameBudget(tickRate)-elapsed, 0)
}

// tickCmd returns a Bubble Tea command that sends a tick message after d.
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
