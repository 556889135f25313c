package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Breakout.

Controls:
  Space          - Start from the welcome screen
  Enter          - Launch the ball / continue after a lost life
  Left/A Right/D - Move the paddle
  P/Esc          - Pause
  R              - Retry (after game over)
  Q              - Quit (welcome or game over screen)
  Ctrl+S         - Save a screenshot
  Ctrl+C         - Exit immediately

Difficulty options:
  easy   - 5 lives, slower ball
  normal - 3 lives
  hard   - 2 lives, faster ball, narrower paddle

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --config ./my-breakout.yaml
  breakout play --db ~/.breakout/scores.db`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	defer closeLog()

	board, scoresSource, closeBoard, err := openBoard(cfg.Gameplay.MaxScores)
	if err != nil {
		// Continue without a leaderboard - game still works
		fmt.Fprintf(os.Stderr, "Warning: could not open scores: %v\n", err)
		logger.Warn("could not open scores", "error", err)
		board, closeBoard = nil, func() {}
	}
	defer closeBoard()

	player := audio.Silent()
	if !flagMute {
		player = audio.NewSpeaker(logger.WithPrefix("audio"))
	}
	defer player.Close()

	// Get terminal size early; Bubble Tea corrects it on the first resize
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game := breakout.New(breakout.Options{
		Config: cfg,
		Board:  board,
		Logger: logger,
	})

	shotDir := ""
	if home, homeErr := os.UserHomeDir(); homeErr == nil {
		shotDir = filepath.Join(home, ".breakout", "screenshots")
	}

	logger.Info("starting", "difficulty", flagDifficulty, "fps", flagFPS, "seed", flagSeed, "scores", scoresSource)
	if err := tui.Run(tui.Options{
		Game: game,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Audio:         player,
		Logger:        logger,
		ScreenshotDir: shotDir,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
