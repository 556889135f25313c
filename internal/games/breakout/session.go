package breakout

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/scoreboard"
)

// State is a screen of the game flow.
type State int

const (
	StateWelcome State = iota
	StateGameplay
	StateLifeLost
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateWelcome:
		return "welcome"
	case StateGameplay:
		return "gameplay"
	case StateLifeLost:
		return "life_lost"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session owns everything about one player's game: the ball, paddle and
// bricks, score and lives, and the screen flow. It is advanced one frame
// at a time by Step and is not safe for concurrent use.
type Session struct {
	cfg      config.BreakoutConfig
	bounds   Bounds
	spawn    Point
	resolver Resolver
	rng      *SimpleRNG
	board    *scoreboard.Board
	logger   *log.Logger

	state      State
	paused     bool
	ballActive bool
	score      int
	lives      int
	frame      uint64
	quit       bool

	ball   *Ball
	paddle *Paddle
	field  *BrickField

	// Game over / high score entry
	qualified bool
	initials  []rune
	saved     bool
	saveErr   error
	best      int // Top of the table when last read
	leaders   []scoreboard.Entry
	leaderIdx int // Pending entry's row in leaders, -1 if none
}

// NewSession creates a session on the welcome screen. board may be nil,
// in which case no high scores are read or written.
func NewSession(cfg config.BreakoutConfig, seed int64, board *scoreboard.Board, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}

	pf := cfg.Playfield
	bounds := Bounds{
		Left:   pf.BorderMargin + pf.BorderThickness,
		Right:  pf.Width - pf.BorderThickness - pf.BorderMargin,
		Top:    pf.BorderMargin + pf.BorderThickness + pf.PaddingTop,
		Bottom: pf.Height - pf.BorderThickness - pf.BorderMargin,
	}

	s := &Session{
		cfg:    cfg,
		bounds: bounds,
		spawn:  Point{X: float64(int(pf.Width / 2)), Y: float64(int(pf.Height / 1.5))},
		resolver: Resolver{
			Bounds:            bounds,
			DeadZone:          cfg.Paddle.DeadZone,
			PaddleShakeFrames: cfg.Effects.PaddleShakeFrames,
		},
		rng:       NewSimpleRNG(seed),
		board:     board,
		logger:    logger,
		state:     StateWelcome,
		lives:     cfg.Gameplay.Lives,
		leaderIdx: -1,
	}

	s.ball = NewBall(s.spawn.X, s.spawn.Y, cfg.Ball.SpeedX, cfg.Ball.SpeedY, cfg.Ball.Radius, cfg.Ball.TrailLength)
	s.paddle = NewPaddle(cfg.Paddle, bounds, pf.Width, pf.Height)
	s.field = NewBrickField(cfg.Bricks, cfg.Effects)
	s.field.CreateGrid(pf.Width, cfg.Bricks.RowsPerTier)
	s.refreshBest()
	return s
}

// Step advances the session by one frame and returns the cues it produced.
func (s *Session) Step(in core.InputFrame) []core.Cue {
	var cues []core.Cue
	s.frame++

	switch s.state {
	case StateWelcome:
		switch {
		case in.Has(core.ActionStart):
			s.state = StateGameplay
			s.ballActive = false
			s.ball.Restart(s.spawn)
			cues = append(cues, core.CueStartup, core.CuePlayMusic)
		case in.Has(core.ActionQuit):
			s.quit = true
		}

	case StateGameplay:
		cues = s.stepGameplay(in)

	case StateLifeLost:
		if in.Has(core.ActionReady) || in.Has(core.ActionStart) {
			s.state = StateGameplay
			s.paused = false
			s.ballActive = true
		}

	case StateGameOver:
		cues = s.stepGameOver(in)
	}

	if !s.paused {
		s.field.Update(s.rng)
		s.paddle.Update(s.rng, s.cfg.Effects.ShakeAmplitude)
	}
	return cues
}

func (s *Session) stepGameplay(in core.InputFrame) []core.Cue {
	if in.Has(core.ActionPause) && s.ballActive {
		s.paused = !s.paused
	}
	if s.paused {
		return nil
	}

	if in.Has(core.ActionReady) {
		s.ballActive = true
	}
	if in.Has(core.ActionLeft) {
		s.paddle.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		s.paddle.MoveRight()
	}

	if !s.ballActive {
		return nil
	}

	s.ball.Move()
	var cues []core.Cue
	s.score, cues = s.resolver.Resolve(s.ball, s.paddle, s.field, s.score, s.rng)

	if s.ball.ReachedBottom {
		return append(cues, s.loseLife()...)
	}

	if s.field.Cleared() {
		s.logger.Debug("field cleared", "score", s.score, "frame", s.frame)
		s.field.CreateGrid(s.cfg.Playfield.Width, s.cfg.Bricks.RowsPerTier)
		s.ball.Restart(s.spawn)
		s.ballActive = false
	}
	return cues
}

func (s *Session) loseLife() []core.Cue {
	cues := []core.Cue{core.CueFloorHit}

	s.lives--
	s.ball.Restart(s.spawn)

	if s.lives > 0 {
		s.state = StateLifeLost
		return append(cues, core.CueLifeLost)
	}

	s.lives = 0
	s.state = StateGameOver
	s.enterGameOver()
	return append(cues, core.CueGameOver, core.CueStopMusic)
}

func (s *Session) enterGameOver() {
	s.initials = s.initials[:0]
	s.saved = false
	s.saveErr = nil
	s.qualified = false

	if s.board != nil {
		ok, err := s.board.Qualifies(s.score)
		if err != nil {
			s.logger.Warn("cannot read scoreboard", "error", err)
		}
		s.qualified = ok && err == nil
	}
	s.logger.Info("game over", "score", s.score, "qualified", s.qualified)
	s.refreshLeaders()
}

func (s *Session) stepGameOver(in core.InputFrame) []core.Cue {
	if s.EnteringInitials() {
		s.typeInitials(in)
		return nil
	}

	switch {
	case in.Has(core.ActionRestart):
		s.restart()
		return []core.Cue{core.CuePlayMusic}
	case in.Has(core.ActionQuit):
		s.quit = true
	}
	return nil
}

// typeInitials consumes letters and backspace while a qualifying score is
// waiting for a name. Commands bound to letters are typed, not executed.
func (s *Session) typeInitials(in core.InputFrame) {
	n := s.cfg.Gameplay.InitialsLength

	for _, r := range in.Chars {
		if len(s.initials) >= n {
			break
		}
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		if r >= 'A' && r <= 'Z' {
			s.initials = append(s.initials, r)
		}
	}
	if in.Has(core.ActionBackspace) && len(s.initials) > 0 && len(s.initials) < n {
		s.initials = s.initials[:len(s.initials)-1]
	}

	// The preview keeps the new row highlighted after the save locks it.
	s.refreshLeaders()

	if len(s.initials) == n {
		name := string(s.initials)
		if err := s.board.Submit(name, s.score); err != nil {
			s.logger.Warn("cannot save score", "name", name, "score", s.score, "error", err)
			s.saveErr = err
		} else {
			s.logger.Info("score saved", "name", name, "score", s.score)
			s.refreshBest()
		}
		s.saved = true
	}
}

func (s *Session) refreshBest() {
	if s.board == nil {
		return
	}
	best, err := s.board.Best()
	if err != nil {
		s.logger.Warn("cannot read high score", "error", err)
		return
	}
	s.best = best
}

func (s *Session) refreshLeaders() {
	s.leaders, s.leaderIdx = nil, -1
	if s.board == nil {
		return
	}

	var err error
	if s.EnteringInitials() {
		s.leaders, s.leaderIdx, err = s.board.Preview(string(s.initials), s.score)
	} else {
		s.leaders, err = s.board.Entries()
	}
	if err != nil {
		s.logger.Warn("cannot read scoreboard", "error", err)
	}
}

// restart begins a new game from the game over screen, skipping the welcome screen.
func (s *Session) restart() {
	pf := s.cfg.Playfield

	s.score = 0
	s.lives = s.cfg.Gameplay.Lives
	s.paddle = NewPaddle(s.cfg.Paddle, s.bounds, pf.Width, pf.Height)
	s.ball.Restart(s.spawn)
	s.field.CreateGrid(pf.Width, s.cfg.Bricks.RowsPerTier)
	s.state = StateGameplay
	s.paused = false
	s.ballActive = false
	s.qualified = false
	s.saved = false
	s.saveErr = nil
	s.initials = s.initials[:0]
	s.leaders, s.leaderIdx = nil, -1
	s.refreshBest()
}

// State returns the current screen.
func (s *Session) State() State { return s.state }

// Paused reports whether gameplay is paused.
func (s *Session) Paused() bool { return s.paused }

// BallActive reports whether the ball has been released.
func (s *Session) BallActive() bool { return s.ballActive }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Frame returns the number of frames stepped.
func (s *Session) Frame() uint64 { return s.frame }

// QuitRequested reports whether the player chose to quit.
func (s *Session) QuitRequested() bool { return s.quit }

// Ball returns the ball.
func (s *Session) Ball() *Ball { return s.ball }

// Paddle returns the paddle.
func (s *Session) Paddle() *Paddle { return s.paddle }

// Field returns the brick field.
func (s *Session) Field() *BrickField { return s.field }

// Bounds returns the inner playfield bounds.
func (s *Session) Bounds() Bounds { return s.bounds }

// Spawn returns the ball's spawn point.
func (s *Session) Spawn() Point { return s.spawn }

// Qualified reports whether the final score earned a scoreboard entry.
func (s *Session) Qualified() bool { return s.qualified }

// EnteringInitials reports whether the game over screen is collecting a name.
func (s *Session) EnteringInitials() bool { return s.qualified && !s.saved }

// SaveError returns why the last entry could not be saved, or nil.
func (s *Session) SaveError() error { return s.saveErr }

// Best returns the high score to display: the top of the table, or the
// current score once it is higher.
func (s *Session) Best() int { return max(s.best, s.score) }

// Initials returns the name typed so far.
func (s *Session) Initials() string { return string(s.initials) }

// Leaders returns the scoreboard rows to show on the game over screen and
// the row of the pending entry (-1 if none).
func (s *Session) Leaders() ([]scoreboard.Entry, int) { return s.leaders, s.leaderIdx }
