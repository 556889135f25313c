package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Resolver runs one frame of collision checks: walls, then paddle, then
// every live brick.
type Resolver struct {
	Bounds            Bounds
	DeadZone          float64
	PaddleShakeFrames int
}

// Resolve applies this frame's collisions and returns the new score and
// the cues produced. A lost ball is reported through ball.ReachedBottom,
// which the caller must read and clear.
//
// Each brick hit in the same frame flips the vertical velocity again, so
// two simultaneous hits cancel out.
func (r Resolver) Resolve(ball *Ball, paddle *Paddle, field *BrickField, score int, rng *SimpleRNG) (int, []core.Cue) {
	var cues []core.Cue

	if ball.BounceWalls(r.Bounds) {
		cues = append(cues, core.CueWallHit)
	}

	if ball.BouncePaddle(paddle.Rect(), r.DeadZone) {
		paddle.Shake(r.PaddleShakeFrames)
		cues = append(cues, core.CuePaddleHit)
	}

	circle := ball.Circle()
	for i := range field.Bricks {
		b := &field.Bricks[i]
		if b.Destroyed || !circle.IntersectsRect(b.Rect) {
			continue
		}
		points, ok := field.Hit(b.ID, rng)
		if !ok {
			continue
		}
		ball.VY = -ball.VY
		score += points
		cues = append(cues, core.CueBrickHit)
	}

	return score, cues
}
