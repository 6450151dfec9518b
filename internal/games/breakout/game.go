package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Game adapts the simulation State to the platform's registry.Game interface.
type Game struct {
	mighty bool
	state  *State

	runtime        core.RuntimeConfig
	layout         layout
	screenTooSmall bool
}

// New creates a breakout game with the regular paddle.
func New() *Game {
	return &Game{}
}

// NewMighty creates a breakout game whose paddle covers the whole floor.
func NewMighty() *Game {
	return &Game{mighty: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mighty {
		return "breakout_mighty"
	}
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mighty {
		return "Breakout (Mighty Paddle)"
	}
	return "Breakout"
}

// Reset discards the current state and starts a new game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.state = NewState(g.mighty)
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize recomputes the pixel-to-cell layout without touching the simulation.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.layout, g.screenTooSmall = computeLayout(w, h)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && g.state.Terminal() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Freeze while the field cannot be shown
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	g.state.Step(CommandFromInput(in))

	return core.StepResult{State: g.State()}
}

// CommandFromInput turns sampled key state into a command.
// Right is checked last, so it wins when both directions are held.
func CommandFromInput(in core.InputFrame) Command {
	cmd := CommandNone
	if in.Has(core.ActionLeft) {
		cmd = CommandLeft
	}
	if in.Has(core.ActionRight) {
		cmd = CommandRight
	}
	return cmd
}

// DrainSounds returns and clears the sounds requested since the last call.
func (g *Game) DrainSounds() []core.Sound {
	return g.state.Sounds.Drain()
}

// Sim exposes the underlying simulation state for read-only inspection.
func (g *Game) Sim() *State {
	return g.state
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:        g.state.Score,
		DisplayScore: g.state.DisplayScore,
		GameOver:     g.state.IsOver,
		Cleared:      g.state.IsClear,
	}
}

// Register the variants with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
	registry.Register("breakout_mighty", func() registry.Game {
		return NewMighty()
	})
}
