// arcade is a terminal arcade for playing retro-style games.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>          - Frame rate for continuous games (default: 60)
//	--seed <value>        - RNG seed for reproducible gameplay
//	--db <path>           - Database path (default: ~/.arcade/scores.db)
//	--audio <mode>        - Tone output: bell, log or off
//	--prefs <backend>     - Prefs store: sqlite, redis or memory
//	--config <path>       - Custom game tuning YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/folio-arcade/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/folio-arcade/internal/games/pong"
	_ "github.com/vovakirdan/folio-arcade/internal/games/roadrush"
	_ "github.com/vovakirdan/folio-arcade/internal/games/snake"
	_ "github.com/vovakirdan/folio-arcade/internal/games/tetris"
	_ "github.com/vovakirdan/folio-arcade/internal/games/tictactoe"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagAudio      string
	flagPrefs      string
	flagConfig     string
	flagDifficulty string
	flagSettings   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade - Play retro games in your terminal",
	Long: `Arcade is a terminal game collection: Snake, Tetris, Pong,
Road Rush and Tic-Tac-Toe.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arcade list
  arcade play tetris
  arcade play roadrush --difficulty hard
  arcade menu
  arcade serve --ssh :2222
  arcade scores snake`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Frame rate for continuous games")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "", "Path to scores database (default ~/.arcade/scores.db)")
	pf.StringVar(&flagAudio, "audio", "", "Tone output: bell, log or off")
	pf.StringVar(&flagPrefs, "prefs", "", "Prefs backend: sqlite, redis or memory")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game tuning YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagSettings, "settings", "", "Path to an application settings YAML (overrides the environment)")

	if env := config.Description(); env != "" {
		rootCmd.Long += "\n\n" + env
	}

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
