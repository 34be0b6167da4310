// arcade is a terminal arcade with three games: a side-scroller, a
// raycasting shooter and a life simulation.
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
//	--config <path>     - Settings file (default: ~/.arcade/arcade.yaml, ./configs/arcade.yaml)
//	--fps <rate>        - Override the tick rate
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Override the scores database path
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/kiro-arcade/internal/games/doom"
	_ "github.com/vovakirdan/kiro-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/kiro-arcade/internal/games/princess"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Kiro Arcade - Play retro games in your terminal",
	Long: `Kiro Arcade is a terminal-based gaming platform with three games:

  flappy    Flappy Kiro, a one-button side-scroller
  doom      Doom Shooter, a first-person raycasting arena
  princess  Princess Maker, a turn-based life simulation

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arcade list
  arcade play flappy
  arcade menu
  arcade serve --ssh :2222
  arcade scores doom`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to settings YAML")
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate override (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "", "Scores database path override")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level override: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
