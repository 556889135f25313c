package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Paddle is the player-controlled bar. Y is fixed; X stays within the
// inner playfield bounds.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64

	minX, maxX float64

	shake       int     // Frames of cosmetic shake left
	shakeOffset float64 // Horizontal draw offset while shaking
}

// NewPaddle creates a paddle centered horizontally, BottomOffset above the
// window bottom.
func NewPaddle(cfg config.PaddleConfig, bounds Bounds, fieldW, fieldH float64) *Paddle {
	return &Paddle{
		X:      float64(int((fieldW - cfg.Width) / 2)),
		Y:      fieldH - cfg.BottomOffset - cfg.Height,
		Width:  cfg.Width,
		Height: cfg.Height,
		Speed:  cfg.Speed,
		minX:   bounds.Left,
		maxX:   bounds.Right - cfg.Width,
	}
}

// MoveLeft moves the paddle one step left, stopping at the left bound.
func (p *Paddle) MoveLeft() {
	p.X = max(p.minX, p.X-p.Speed)
}

// MoveRight moves the paddle one step right, stopping at the right bound.
func (p *Paddle) MoveRight() {
	p.X = min(p.maxX, p.X+p.Speed)
}

// Rect returns the collision rectangle. Shake does not affect it.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// DrawRect returns the rectangle to draw, including shake.
func (p *Paddle) DrawRect() core.Rect {
	return core.NewRect(p.X+p.shakeOffset, p.Y, p.Width, p.Height)
}

// Shake starts a cosmetic shake for the given number of frames.
func (p *Paddle) Shake(frames int) {
	p.shake = frames
}

// Shaking reports whether the shake animation is running.
func (p *Paddle) Shaking() bool {
	return p.shake > 0
}

// Update advances the shake animation by one frame.
func (p *Paddle) Update(rng *SimpleRNG, amplitude float64) {
	if p.shake == 0 {
		return
	}
	p.shake--
	if p.shake == 0 {
		p.shakeOffset = 0
		return
	}
	p.shakeOffset = rng.Range(-amplitude, amplitude)
}
