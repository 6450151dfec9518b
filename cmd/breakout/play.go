package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var (
	flagMute    bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play breakout in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  Space/R    - Restart (after game over or clear)
  Q/Ctrl+C   - Quit

The terminal must be at least 50x18. Smaller windows pause the game
until they grow.

Examples:
  breakout play
  breakout play breakout_mighty
  breakout play --fps 60 --mute
  breakout play --log-file ./breakout.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, args []string) error {
	cfg, err := resolveConfig(flagConfig, overrides{fps: flagFPS, mighty: flagMighty, mute: flagMute})
	if err != nil {
		return err
	}

	gameID := variantID(cfg)
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'breakout list')", gameID)
	}

	logger, closeLog, err := openLogger(flagLogFile, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closeLog()

	player, err := audio.NewPlayer(cfg.Audio)
	if err != nil {
		return fmt.Errorf("%w (use --mute to play without sound)", err)
	}
	defer player.Close()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	runtime := terminalConfig(cfg.Loop.TickRate)
	logger.Info("starting", "variant", gameID, "fps", runtime.TickRate, "audio", cfg.Audio.Enabled,
		"size", fmt.Sprintf("%dx%d", runtime.ScreenW, runtime.ScreenH))

	if err := tui.Run(game, runtime, player, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openLogger returns a logger writing to path. Bubble Tea owns the
// terminal, so without a path logs are discarded.
func openLogger(path, level string) (*log.Logger, func(), error) {
	if path == "" {
		return logging.Discard(), func() {}, nil
	}

	logger, closer, err := logging.OpenFile(path, level, "breakout")
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = closer.Close() }, nil
}

// terminalConfig returns a runtime config sized to the local terminal.
func terminalConfig(tickRate int) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
	}
}
