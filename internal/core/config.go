package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in characters
	ScreenH  int // Terminal height in characters
	TickRate int // Simulation ticks per second (default 30)
}

// DefaultTickRate is the fixed simulation rate of the breakout loop.
const DefaultTickRate = 30

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score        int  // Current score
	DisplayScore int  // Score shown in the HUD, catching up to Score
	GameOver     bool // Ball was lost
	Cleared      bool // Every block was destroyed
}

// Terminal reports whether the game has ended either way.
func (s GameState) Terminal() bool {
	return s.GameOver || s.Cleared
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
