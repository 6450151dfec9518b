package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// footerRows is the number of terminal rows reserved for the key help.
const footerRows = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model driving one breakout game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	held      *HeldKeys
	restart   bool // Edge-triggered, consumed by the next tick
	player    audio.Player
	logger    *log.Logger
	gameState core.GameState
	now       func() time.Time
	quitting  bool
}

// NewModel creates a model for game. cfg holds the full terminal size;
// the game gets everything above the help footer.
func NewModel(game registry.Game, cfg core.RuntimeConfig, player audio.Player, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	if player == nil {
		player = audio.NopPlayer{}
	}

	if logger == nil {
		logger = logging.Discard()
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerRows, 0)),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		held:    NewHeldKeys(DefaultHoldWindow),
		player:  player,
		logger:  logger,
		now:     time.Now,
	}
}

// gameConfig returns the runtime config seen by the game.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-footerRows, 0)
	return cfg
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Info("new game", "variant", m.game.ID())
	return tickCmd(frameBudget(m.config.TickRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "variant", m.game.ID(), "score", m.gameState.Score)
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.held.Press(action, m.now())
	case core.ActionRestart:
		m.restart = true
	}

	return m, nil
}

// handleResize keeps the game running at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	gameCfg := m.gameConfig()
	m.screen.Resize(gameCfg.ScreenW, gameCfg.ScreenH)
	m.game.Resize(gameCfg.ScreenW, gameCfg.ScreenH)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick runs one simulation step and schedules the next tick for
// the rest of the frame budget.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	start := m.now()

	in := core.NewInputFrame()
	m.held.Sample(start, &in)
	if m.restart {
		in.Set(core.ActionRestart)
		m.restart = false
	}

	wasTerminal := m.gameState.Terminal()
	result := m.game.Step(in)
	m.player.Play(m.game.DrainSounds())
	m.logTransition(wasTerminal, result.State)
	m.gameState = result.State

	return m, tickCmd(nextTickDelay(m.config.TickRate, m.now().Sub(start)))
}

// logTransition reports games ending and restarting.
func (m Model) logTransition(wasTerminal bool, state core.GameState) {
	switch {
	case wasTerminal && !state.Terminal():
		m.held.Reset()
		m.logger.Info("new game", "variant", m.game.ID())
	case !wasTerminal && state.GameOver:
		m.logger.Info("game over", "variant", m.game.ID(), "score", state.Score)
	case !wasTerminal && state.Cleared:
		m.logger.Info("field cleared", "variant", m.game.ID(), "score", state.Score)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// GameState returns the state seen at the latest tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for game in the local terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, player audio.Player, logger *log.Logger) error {
	model := NewModel(game, cfg, player, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
