package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start breakout with a variant picker.

After you quit a game you return to the picker to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Q            - Quit

Examples:
  breakout menu
  breakout menu --fps 60 --mute`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	menuCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(flagConfig, overrides{fps: flagFPS, mute: flagMute})
	if err != nil {
		return err
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

	runtime := terminalConfig(cfg.Loop.TickRate)

	// Menu loop
	for {
		gameID, menuCfg, err := tui.RunMenu(runtime)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}
		if gameID == "" {
			return nil
		}

		// Keep any size changes from the menu
		runtime = menuCfg

		game, err := registry.Create(gameID)
		if err != nil {
			return err
		}

		logger.Info("starting", "variant", gameID, "fps", runtime.TickRate, "audio", cfg.Audio.Enabled)
		if err := tui.Run(game, runtime, player, logger); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
