package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Bounds are the inner edges of the playfield: the border margin and
// thickness on every side plus the HUD padding at the top.
type Bounds struct {
	Left, Right, Top, Bottom float64
}

// Ball is the single ball in play. Velocity components only ever change
// sign; their magnitudes are fixed for the lifetime of the ball.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64

	// ReachedBottom is set by BounceWalls when the ball touches the bottom
	// bound. It stays set until the caller clears it.
	ReachedBottom bool

	trail    []Point // Oldest first
	trailCap int
}

// NewBall creates a ball at (x, y) with the given velocity.
func NewBall(x, y, vx, vy, radius float64, trailCap int) *Ball {
	return &Ball{
		X:        x,
		Y:        y,
		VX:       vx,
		VY:       vy,
		Radius:   radius,
		trail:    make([]Point, 0, trailCap),
		trailCap: trailCap,
	}
}

// Move advances the ball by one frame and records the new position in the trail.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY

	if b.trailCap == 0 {
		return
	}
	if len(b.trail) == b.trailCap {
		copy(b.trail, b.trail[1:])
		b.trail = b.trail[:len(b.trail)-1]
	}
	b.trail = append(b.trail, Point{X: b.X, Y: b.Y})
}

// Trail returns the recent positions, oldest first.
func (b *Ball) Trail() []Point {
	return b.trail
}

// Restart puts the ball back at the spawn point heading upward. Speed and
// horizontal direction are kept. The trail and bottom flag are cleared.
func (b *Ball) Restart(spawn Point) {
	b.X = spawn.X
	b.Y = spawn.Y
	b.VY = -math.Abs(b.VY)
	b.trail = b.trail[:0]
	b.ReachedBottom = false
}

// Circle returns the ball's collision shape.
func (b *Ball) Circle() core.Circle {
	return core.Circle{X: b.X, Y: b.Y, R: b.Radius}
}

// BounceWalls reflects the ball off the side and top walls and flags the
// bottom. The bottom never bounces. Returns true if a wall reflected the ball.
func (b *Ball) BounceWalls(bounds Bounds) bool {
	hit := false
	if b.X-b.Radius <= bounds.Left || b.X+b.Radius >= bounds.Right {
		b.VX = -b.VX
		hit = true
	}
	if b.Y-b.Radius <= bounds.Top {
		b.VY = -b.VY
		hit = true
	}
	if b.Y+b.Radius >= bounds.Bottom {
		b.ReachedBottom = true
	}
	return hit
}

// BouncePaddle reflects the ball off the paddle if they overlap. Outside
// the central dead zone the ball is steered toward the side it struck.
// There is no cooldown: an overlapping ball bounces again every frame.
func (b *Ball) BouncePaddle(paddle core.Rect, deadZone float64) bool {
	if !b.Circle().IntersectsRect(paddle) {
		return false
	}

	b.VY = -b.VY

	center := paddle.CenterX()
	switch {
	case b.X < center-deadZone:
		b.VX = -math.Abs(b.VX)
	case b.X > center+deadZone:
		b.VX = math.Abs(b.VX)
	}
	return true
}
