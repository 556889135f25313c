package breakout

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BrickView is the drawable state of one brick.
type BrickView struct {
	ID        int
	Rect      core.Rect // Includes shake offset
	Color     core.Color
	Points    int
	Destroyed bool
	Flash     int
	Shake     int
	Particles []Particle
}

// Snapshot is everything a renderer needs for one frame, detached from
// the live session.
type Snapshot struct {
	Frame      uint64
	State      string
	Paused     bool
	BallActive bool
	Score      int
	Lives      int
	Initials   string

	Ball     Point
	Velocity Point
	Trail    []Point
	Paddle   core.Rect // Includes shake offset

	Bricks []BrickView

	RNGState uint64
}

// Snapshot returns a copy of the current drawable state.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	ball := s.Ball()

	bricks := make([]BrickView, len(s.Field().Bricks))
	for i := range s.Field().Bricks {
		b := &s.Field().Bricks[i]
		bricks[i] = BrickView{
			ID:        b.ID,
			Rect:      b.DrawRect(),
			Color:     b.Color,
			Points:    b.Points,
			Destroyed: b.Destroyed,
			Flash:     b.Flash,
			Shake:     b.ShakeLeft,
			Particles: slices.Clone(b.Particles),
		}
	}

	return Snapshot{
		Frame:      s.Frame(),
		State:      s.State().String(),
		Paused:     s.Paused(),
		BallActive: s.BallActive(),
		Score:      s.Score(),
		Lives:      s.Lives(),
		Initials:   s.Initials(),
		Ball:       Point{X: ball.X, Y: ball.Y},
		Velocity:   Point{X: ball.VX, Y: ball.VY},
		Trail:      slices.Clone(ball.Trail()),
		Paddle:     s.Paddle().DrawRect(),
		Bricks:     bricks,
		RNGState:   s.rng.State(),
	}
}

// Hash returns a hash of the snapshot for determinism checks.
func (snap Snapshot) Hash() uint64 {
	h := uint64(17)
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }
	mixB := func(b bool) {
		if b {
			mix(1)
		} else {
			mix(0)
		}
	}

	mix(snap.Frame)
	for _, r := range snap.State {
		mix(uint64(r)) //#nosec G115 -- hash computation
	}
	mixB(snap.Paused)
	mixB(snap.BallActive)
	mix(uint64(snap.Score)) //#nosec G115 -- hash computation
	mix(uint64(snap.Lives)) //#nosec G115 -- hash computation

	mixF(snap.Ball.X)
	mixF(snap.Ball.Y)
	mixF(snap.Velocity.X)
	mixF(snap.Velocity.Y)
	for _, p := range snap.Trail {
		mixF(p.X)
		mixF(p.Y)
	}
	mixF(snap.Paddle.X)

	for _, b := range snap.Bricks {
		mixB(b.Destroyed)
		mix(uint64(b.Flash)) //#nosec G115 -- hash computation
		mix(uint64(b.Shake)) //#nosec G115 -- hash computation
		mixF(b.Rect.X)
		mixF(b.Rect.Y)
		for _, p := range b.Particles {
			mixF(p.X)
			mixF(p.Y)
			mix(uint64(p.Life)) //#nosec G115 -- hash computation
		}
	}

	mix(snap.RNGState)
	return h
}
