package breakout

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func newTestField() *BrickField {
	cfg := config.DefaultBreakoutConfig()
	f := NewBrickField(cfg.Bricks, cfg.Effects)
	f.CreateGrid(550, 2)
	return f
}

func TestCreateGridLayout(t *testing.T) {
	f := newTestField()

	if got := f.Columns(550); got != 11 {
		t.Fatalf("Columns(550) = %d, expected 11", got)
	}
	if len(f.Bricks) != 66 {
		t.Fatalf("len(Bricks) = %d, expected 66", len(f.Bricks))
	}

	tests := []struct {
		id     int
		rect   core.Rect
		points int
		color  core.Color
	}{
		{0, core.NewRect(30, 90, 40, 20), 1, core.ColorGreen},
		{12, core.NewRect(75, 115, 40, 20), 1, core.ColorGreen},
		{22, core.NewRect(30, 140, 40, 20), 3, core.ColorYellow},
		{65, core.NewRect(480, 215, 40, 20), 5, core.ColorRed},
	}
	for _, tt := range tests {
		b := f.Bricks[tt.id]
		if b.ID != tt.id {
			t.Errorf("Bricks[%d].ID = %d", tt.id, b.ID)
		}
		if b.Rect != tt.rect {
			t.Errorf("Bricks[%d].Rect = %+v, expected %+v", tt.id, b.Rect, tt.rect)
		}
		if b.Points != tt.points || b.Color != tt.color {
			t.Errorf("Bricks[%d] = %d pts color %d, expected %d pts color %d", tt.id, b.Points, b.Color, tt.points, tt.color)
		}
	}
}

func TestCreateGridDeterministic(t *testing.T) {
	a := newTestField()
	b := newTestField()

	if !reflect.DeepEqual(a.Bricks, b.Bricks) {
		t.Error("CreateGrid produced different layouts for the same width")
	}

	// Regenerating over a used field yields the same wall.
	a.Hit(3, NewSimpleRNG(1))
	a.CreateGrid(550, 2)
	if !reflect.DeepEqual(a.Bricks, b.Bricks) {
		t.Error("CreateGrid did not restore a fresh wall")
	}
}

func TestColumnsNarrowField(t *testing.T) {
	f := newTestField()
	if got := f.Columns(40); got != 0 {
		t.Errorf("Columns(40) = %d, expected 0", got)
	}
	if got := f.Columns(100); got != 1 {
		t.Errorf("Columns(100) = %d, expected 1", got)
	}
}

func TestHitScoresOnce(t *testing.T) {
	f := newTestField()
	rng := NewSimpleRNG(3)

	pts, ok := f.Hit(22, rng)
	if !ok || pts != 3 {
		t.Fatalf("first Hit() = (%d, %v), expected (3, true)", pts, ok)
	}
	pts, ok = f.Hit(22, rng)
	if ok || pts != 0 {
		t.Errorf("second Hit() = (%d, %v), expected (0, false)", pts, ok)
	}
	if _, ok := f.Hit(999, rng); ok {
		t.Error("Hit() on unknown id succeeded")
	}

	b := f.Bricks[22]
	if !b.Destroyed || b.Flash != 6 || b.ShakeLeft != 10 || len(b.Particles) != 15 {
		t.Errorf("brick after hit = destroyed %v flash %d shake %d particles %d",
			b.Destroyed, b.Flash, b.ShakeLeft, len(b.Particles))
	}
	for _, p := range b.Particles {
		if p.VX < -3 || p.VX > 3 || p.VY < -3 || p.VY > 3 {
			t.Errorf("particle velocity (%v, %v) out of range", p.VX, p.VY)
		}
		if p.Life != 30 {
			t.Errorf("particle life = %d, expected 30", p.Life)
		}
	}
	if f.Live() != 65 {
		t.Errorf("Live() = %d, expected 65", f.Live())
	}
}

func TestUpdateAnimations(t *testing.T) {
	f := newTestField()
	rng := NewSimpleRNG(9)
	f.Hit(0, rng)
	home := f.Bricks[0].Rect

	for frame := 1; frame <= 30; frame++ {
		f.Update(rng)
		b := &f.Bricks[0]

		if b.OffsetX < -2 || b.OffsetX > 2 || b.OffsetY < -2 || b.OffsetY > 2 {
			t.Fatalf("frame %d: shake offset (%v, %v) out of range", frame, b.OffsetX, b.OffsetY)
		}
		if b.Rect != home {
			t.Fatalf("frame %d: collision rect moved", frame)
		}
		if frame < 30 && !b.Visible() {
			t.Fatalf("frame %d: brick hidden while particles remain", frame)
		}
	}

	b := f.Bricks[0]
	if b.Flash != 0 || b.ShakeLeft != 0 || b.OffsetX != 0 || b.OffsetY != 0 {
		t.Errorf("effects not finished: flash %d shake %d offset (%v, %v)", b.Flash, b.ShakeLeft, b.OffsetX, b.OffsetY)
	}
	if len(b.Particles) != 0 {
		t.Errorf("%d particles left after their lifetime", len(b.Particles))
	}
	if b.Visible() {
		t.Error("destroyed brick still visible after effects")
	}
}

func TestCleared(t *testing.T) {
	f := newTestField()
	rng := NewSimpleRNG(5)

	if f.Cleared() {
		t.Fatal("fresh field reported cleared")
	}
	for i := range f.Bricks {
		f.Hit(i, rng)
	}
	if f.Live() != 0 {
		t.Fatalf("Live() = %d, expected 0", f.Live())
	}
	if f.Cleared() {
		t.Error("Cleared() = true while animations are running")
	}

	for i := 0; i < 30; i++ {
		f.Update(rng)
	}
	if !f.Cleared() {
		t.Error("Cleared() = false after all animations finished")
	}
}
