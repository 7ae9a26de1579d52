package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/folio-arcade/internal/platform/tui"
	"github.com/vovakirdan/folio-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD - Move
  Space       - Start / primary action
  P/Esc       - Pause
  R           - Restart
  B           - Back (when not running)
  Ctrl+S      - Screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at the bottom of every ramp
  normal - Start 30% up the ramps
  hard   - Start 70% up the ramps
  fixed  - No progression, stays at the configured start

Examples:
  arcade play snake
  arcade play tetris --difficulty easy
  arcade play pong --seed 42
  arcade play roadrush --config ./my-roadrush.yaml
  arcade play tictactoe_cpu`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	a, err := newApp(cmd, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, a.runtimeConfig(), tui.Options{
		Store:  a.scoreStore(),
		Logger: a.logger,
	})

	// Close store before potential exit
	a.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
