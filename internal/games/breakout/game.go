// Package breakout implements the Breakout simulation: one ball, a paddle,
// a wall of tiered bricks and the welcome / gameplay / life lost / game
// over flow. The world is simulated in fixed units and scaled to the
// terminal only when rendering.
package breakout

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/scoreboard"
)

// Minimum terminal size the game will draw into.
const (
	MinScreenW = 44
	MinScreenH = 24
)

// Options configures a Game.
type Options struct {
	Config config.BreakoutConfig
	Board  *scoreboard.Board // Optional leaderboard
	Logger *log.Logger
}

// Game adapts a Session to the frame loop: it owns the runtime settings,
// turns steps into results and renders to a cell screen.
type Game struct {
	cfg     config.BreakoutConfig
	board   *scoreboard.Board
	logger  *log.Logger
	runtime core.RuntimeConfig
	session *Session

	screenTooSmall bool
}

// New creates a game. Call Reset before stepping.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		cfg:    opts.Config,
		board:  opts.Board,
		logger: logger,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "breakout" }

// Reset starts a fresh session on the welcome screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.session = NewSession(g.cfg, runtime.Seed, g.board, g.logger)
	g.checkSize()
	g.logger.Debug("game reset", "screen", [2]int{runtime.ScreenW, runtime.ScreenH}, "seed", runtime.Seed)
}

// Resize adapts to a new terminal size without touching the session.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.checkSize()
}

func (g *Game) checkSize() {
	g.screenTooSmall = g.runtime.ScreenW < MinScreenW || g.runtime.ScreenH < MinScreenH
}

// Step advances the game by one tick. Nothing moves while the terminal is
// too small.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}
	cues := g.session.Step(in)
	return core.StepResult{State: g.State(), Cues: cues}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	return core.GameState{
		Score:    s.Score(),
		Lives:    s.Lives(),
		GameOver: s.State() == StateGameOver,
		Paused:   s.Paused(),
		Quit:     s.QuitRequested(),
	}
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}
