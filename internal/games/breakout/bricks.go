package breakout

import (
	"slices"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Tier is a brick color category and its point value.
type Tier struct {
	Name   string
	Color  core.Color
	Points int
}

// Particle is a short-lived fragment thrown off a destroyed brick.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int
	Color  core.Color
}

// Brick is one cell of the field. A destroyed brick no longer collides
// but stays visible until its flash, shake and particles have finished.
type Brick struct {
	ID        int
	Rect      core.Rect // Home position, used for collision
	Tier      int       // Index into the field's tiers
	Points    int
	Color     core.Color
	Destroyed bool

	Flash     int // Frames of hit flash left
	ShakeLeft int // Frames of shake left
	OffsetX   float64
	OffsetY   float64
	Particles []Particle
}

// DrawRect returns the brick rectangle including the shake offset.
func (b *Brick) DrawRect() core.Rect {
	return core.NewRect(b.Rect.X+b.OffsetX, b.Rect.Y+b.OffsetY, b.Rect.W, b.Rect.H)
}

// Animating reports whether any hit effect is still running.
func (b *Brick) Animating() bool {
	return b.Flash > 0 || b.ShakeLeft > 0 || len(b.Particles) > 0
}

// Visible reports whether the brick should be drawn.
func (b *Brick) Visible() bool {
	return !b.Destroyed || b.Animating()
}

// BrickField holds every brick of the current wall in a flat slice
// indexed by brick ID. Bricks are never removed, only flagged.
type BrickField struct {
	Bricks []Brick

	layout  config.BricksConfig
	effects config.EffectsConfig
	tiers   []Tier
}

// NewBrickField creates an empty field. Call CreateGrid to lay out bricks.
func NewBrickField(layout config.BricksConfig, effects config.EffectsConfig) *BrickField {
	tiers := make([]Tier, len(layout.Tiers))
	for i, t := range layout.Tiers {
		c, ok := core.ParseColor(t.Color)
		if !ok {
			c = core.ColorWhite
		}
		tiers[i] = Tier{Name: t.Name, Color: c, Points: t.Points}
	}
	return &BrickField{layout: layout, effects: effects, tiers: tiers}
}

// Tiers returns the tiers in top-to-bottom order.
func (f *BrickField) Tiers() []Tier {
	return f.tiers
}

// Columns returns how many bricks fit across a playfield of the given width.
func (f *BrickField) Columns(width float64) int {
	l := f.layout
	n := int((width - 2*l.PaddingLeft + l.Spacing) / (l.Width + l.Spacing))
	return max(n, 0)
}

// CreateGrid replaces all bricks with a fresh wall. Tiers are stacked top
// to bottom in configuration order, rowsPerTier rows each. The result
// depends only on width and the layout.
func (f *BrickField) CreateGrid(width float64, rowsPerTier int) {
	l := f.layout
	cols := f.Columns(width)

	f.Bricks = make([]Brick, 0, cols*rowsPerTier*len(f.tiers))
	for ti, tier := range f.tiers {
		for row := 0; row < rowsPerTier; row++ {
			rowIndex := ti*rowsPerTier + row
			y := l.PaddingTop + float64(rowIndex)*(l.Height+l.Spacing)
			for col := 0; col < cols; col++ {
				x := l.PaddingLeft + float64(col)*(l.Width+l.Spacing)
				f.Bricks = append(f.Bricks, Brick{
					ID:     len(f.Bricks),
					Rect:   core.NewRect(x, y, l.Width, l.Height),
					Tier:   ti,
					Points: tier.Points,
					Color:  tier.Color,
				})
			}
		}
	}
}

// Hit destroys brick id and starts its hit effects. Only the first hit on
// a brick scores; later hits return 0 and false.
func (f *BrickField) Hit(id int, rng *SimpleRNG) (int, bool) {
	if id < 0 || id >= len(f.Bricks) {
		return 0, false
	}
	b := &f.Bricks[id]
	if b.Destroyed {
		return 0, false
	}

	fx := f.effects
	b.Destroyed = true
	b.Flash = fx.FlashFrames
	b.ShakeLeft = fx.ShakeFrames

	cx, cy := b.Rect.Center()
	for i := 0; i < fx.ParticleCount; i++ {
		b.Particles = append(b.Particles, Particle{
			X:     cx,
			Y:     cy,
			VX:    rng.Range(-fx.ParticleSpeed, fx.ParticleSpeed),
			VY:    rng.Range(-fx.ParticleSpeed, fx.ParticleSpeed),
			Life:  fx.ParticleLife,
			Color: b.Color,
		})
	}
	return b.Points, true
}

// Update advances every brick's hit effects by one frame.
func (f *BrickField) Update(rng *SimpleRNG) {
	amp := f.effects.ShakeAmplitude
	for i := range f.Bricks {
		b := &f.Bricks[i]

		if b.Flash > 0 {
			b.Flash--
		}

		if b.ShakeLeft > 0 {
			b.ShakeLeft--
			if b.ShakeLeft > 0 {
				b.OffsetX = rng.Range(-amp, amp)
				b.OffsetY = rng.Range(-amp, amp)
			} else {
				b.OffsetX, b.OffsetY = 0, 0
			}
		}

		if len(b.Particles) == 0 {
			continue
		}
		for j := range b.Particles {
			p := &b.Particles[j]
			p.X += p.VX
			p.Y += p.VY
			p.Life--
		}
		b.Particles = slices.DeleteFunc(b.Particles, func(p Particle) bool {
			return p.Life <= 0
		})
	}
}

// Live returns the number of bricks that still collide.
func (f *BrickField) Live() int {
	n := 0
	for i := range f.Bricks {
		if !f.Bricks[i].Destroyed {
			n++
		}
	}
	return n
}

// Cleared reports whether every brick is destroyed and all effects have
// finished.
func (f *BrickField) Cleared() bool {
	for i := range f.Bricks {
		if f.Bricks[i].Visible() {
			return false
		}
	}
	return len(f.Bricks) > 0
}
