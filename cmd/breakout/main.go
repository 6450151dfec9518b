// breakout is a terminal rendition of the classic brick breaker.
//
// Usage:
//
//	breakout play [variant]  - Play in this terminal (default variant: breakout)
//	breakout menu            - Pick a variant, play, repeat
//	breakout serve           - Start SSH server for remote play
//	breakout list            - List available variants
//
// Global flags:
//
//	--config <path>  - Driver config YAML (default search: ~/.breakout/configs, ./configs)
//	--fps <rate>     - Override the tick rate (default from config: 30)
//	--mighty         - Paddle spans the whole floor
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagMighty bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - break every block without dropping the ball",
	Long: `Breakout is a terminal brick breaker. Bounce the ball off your paddle
to break the blocks: red 400, yellow 200, green 100 points. Every block
hit speeds the ball up. Miss the ball and the game is over.

Keys: Left / Right to move, Space to restart, Q to quit.

Available commands:
  play     - Play in this terminal
  menu     - Pick a variant from a menu
  serve    - Start SSH server for remote play
  list     - Show available variants

Examples:
  breakout play
  breakout play --mighty --mute
  breakout serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().BoolVar(&flagMighty, "mighty", false, "Paddle spans the whole floor")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
