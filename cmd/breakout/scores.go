package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/scoreboard"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high-score table",
	Long: `Display the top 10 high scores.

Scores come from the score file, or from the SQLite database when --db is set.

Examples:
  breakout scores
  breakout scores --interactive
  breakout scores --db ~/.breakout/scores.db
  breakout scores --db ~/.breakout/scores.db --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table view")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores from the database (requires --db)")
}

func runScores(_ *cobra.Command, _ []string) {
	if flagClear {
		if err := clearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	board, source, closeBoard, err := openBoard(cfg.Gameplay.MaxScores)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores: %v\n", err)
		os.Exit(1)
	}
	defer closeBoard()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, err := tui.RunScoreboard(board, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	entries, err := board.Entries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println("High Scores - Breakout")
	fmt.Printf("Source: %s\n", source)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'breakout' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %s\n", "Rank", "Name", "Score")
	fmt.Printf("  %-4s  %-16s  %s\n", "----", "----", "-----")

	for i, e := range entries {
		fmt.Printf("  %-4s  %-16s  %d\n", scoreboard.RankLabel(i+1), e.Name, e.Score)
	}

	best, err := board.Best()
	if err != nil {
		best = entries[0].Score
	}
	fmt.Println()
	fmt.Printf("Best: %d\n", best)
}

func clearScores() error {
	if flagDBPath == "" {
		return errors.New("--clear needs --db")
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.ClearScores()
}
