// breakout is a single-player Breakout game for the terminal.
//
// Usage:
//
//	breakout                 - Play (same as "breakout play")
//	breakout play            - Play a game
//	breakout scores          - Show the high-score table
//	breakout serve           - Start SSH server for remote play
//	breakout config          - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Custom YAML configuration
//	--difficulty <name> - Preset: easy, normal, hard
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible effects
//	--scores <path>     - High-score file (default: ~/.breakout/scoreboard.txt)
//	--db <path>         - Use a SQLite score database instead of the file
//	--log <path>        - Write logs to a file
//	--debug             - Verbose logging
//	--mute              - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagScores     string
	flagDBPath     string
	flagLogPath    string
	flagDebug      bool
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce the ball, clear the wall",
	Long: `Breakout in your terminal: move the paddle, keep the ball in play and
break every brick. Green bricks are worth 1 point, yellow 3 and red 5.

Available commands:
  play     - Play a game (default)
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  breakout
  breakout --difficulty hard
  breakout scores --interactive
  breakout serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagScores, "scores", "~/.breakout/scoreboard.txt", "Path to high-score file")
	pf.StringVar(&flagDBPath, "db", "", "Path to SQLite scores database (replaces the score file)")
	pf.StringVar(&flagLogPath, "log", "", "Write logs to this file")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
