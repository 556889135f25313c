package breakout

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/scoreboard"
)

// Glyphs used when drawing.
const (
	BallChar     = '●'
	TrailChar    = '·'
	PaddleChar   = '▀'
	BrickChar    = '█'
	FlashChar    = '▓'
	ParticleChar = '∙'
)

// viewport maps world units to screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	return viewport{
		sx: float64(dst.Width()) / worldW,
		sy: float64(dst.Height()) / worldH,
	}
}

func (v viewport) x(wx float64) int { return int(math.Floor(wx * v.sx)) }
func (v viewport) y(wy float64) int { return int(math.Floor(wy * v.sy)) }

// cells returns the cell span [x, x+w) x [y, y+h) covered by r, at least one cell each way.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x, y = v.x(r.X), v.y(r.Y)
	w = max(v.x(r.Right())-x, 1)
	h = max(v.y(r.Bottom())-y, 1)
	return x, y, w, h
}

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	s := g.session
	pf := g.cfg.Playfield
	v := newViewport(dst, pf.Width, pf.Height)

	g.renderBorder(dst, v)

	switch s.State() {
	case StateWelcome:
		g.renderWelcome(dst)
		return
	case StateGameOver:
		g.renderGameOver(dst, v)
		return
	}

	g.renderHUD(dst, v)
	g.renderBricks(dst, v)
	g.renderPaddle(dst, v)
	g.renderBall(dst, v)
	g.renderOverlay(dst, v)
}

func (g *Game) renderBorder(dst *core.Screen, v viewport) {
	pf := g.cfg.Playfield
	x0, y0 := v.x(pf.BorderMargin), v.y(pf.BorderMargin)
	x1, y1 := v.x(pf.Width-pf.BorderMargin), v.y(pf.Height-pf.BorderMargin)
	dst.DrawBox(x0, y0, x1-x0+1, y1-y0+1, core.ColorWhite)
}

// hudRow is the row between the top border and the top bound.
func (g *Game) hudRow(v viewport) int {
	pf := g.cfg.Playfield
	border := v.y(pf.BorderMargin)
	top := v.y(g.session.Bounds().Top)
	return max((border+top)/2, border+1)
}

func (g *Game) renderHUD(dst *core.Screen, v viewport) {
	s := g.session
	pf := g.cfg.Playfield
	row := g.hudRow(v)
	left := v.x(pf.BorderMargin) + 2
	right := v.x(pf.Width - pf.BorderMargin)

	dst.DrawTextColored(left, row, fmt.Sprintf("SCORE %d", s.Score()), core.ColorWhite)
	dst.DrawTextCenteredColored(row, fmt.Sprintf("HI %d", s.Best()), core.ColorBrightYellow)

	lives := fmt.Sprintf("LIVES %d", s.Lives())
	dst.DrawTextColored(right-1-utf8.RuneCountInString(lives), row, lives, core.ColorWhite)
}

func (g *Game) renderBricks(dst *core.Screen, v viewport) {
	field := g.session.Field()
	for i := range field.Bricks {
		b := &field.Bricks[i]
		if !b.Visible() {
			continue
		}

		switch {
		case !b.Destroyed:
			drawBrick(dst, v, b.DrawRect(), BrickChar, b.Color)
		case b.Flash > 0:
			drawBrick(dst, v, b.DrawRect(), FlashChar, b.Color.Bright())
		}

		for _, p := range b.Particles {
			dst.SetColored(v.x(p.X), v.y(p.Y), ParticleChar, p.Color)
		}
	}
}

// drawBrick leaves the rightmost cell empty when there is room, so
// neighbouring bricks stay apart.
func drawBrick(dst *core.Screen, v viewport, r core.Rect, ch rune, c core.Color) {
	x, y, w, h := v.cells(r)
	if w > 2 {
		w--
	}
	dst.FillRect(x, y, w, h, ch, c)
}

func (g *Game) renderPaddle(dst *core.Screen, v viewport) {
	x, y, w, _ := v.cells(g.session.Paddle().DrawRect())
	dst.FillRect(x, y, w, 1, PaddleChar, core.ColorBlue)
}

func (g *Game) renderBall(dst *core.Screen, v viewport) {
	ball := g.session.Ball()
	bx, by := v.x(ball.X), v.y(ball.Y)

	if g.session.BallActive() {
		for _, p := range ball.Trail() {
			tx, ty := v.x(p.X), v.y(p.Y)
			if tx != bx || ty != by {
				dst.SetColored(tx, ty, TrailChar, core.ColorGray)
			}
		}
	}
	dst.SetColored(bx, by, BallChar, core.ColorBrightWhite)
}

func (g *Game) renderOverlay(dst *core.Screen, v viewport) {
	s := g.session
	switch {
	case s.State() == StateLifeLost:
		drawCenteredBox(dst, "BALL LOST", fmt.Sprintf("Lives left: %d  |  ENTER to continue", s.Lives()))
	case s.Paused():
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case !s.BallActive():
		row := v.y(s.Paddle().Y) + 1
		if row >= v.y(g.cfg.Playfield.Height-g.cfg.Playfield.BorderMargin) {
			row = v.y(s.Paddle().Y) - 1
		}
		dst.DrawTextCenteredColored(row, "Press ENTER to launch", core.ColorYellow)
	}
}

func (g *Game) renderWelcome(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCenteredColored(mid-3, "B R E A K O U T", core.ColorBrightYellow)
	dst.DrawTextCenteredColored(mid-1, "Press SPACE to start", core.ColorWhite)
	dst.DrawTextCenteredColored(mid+1, "←/→ move  ENTER launch  P pause  Q quit", core.ColorGray)

	tiers := g.session.Field().Tiers()
	row := mid + 3
	for i := len(tiers) - 1; i >= 0; i-- {
		t := tiers[i]
		dst.DrawTextCenteredColored(row, fmt.Sprintf("%c%c %-6s %d PTS", BrickChar, BrickChar, t.Name, t.Points), t.Color)
		row++
	}
}

func (g *Game) renderGameOver(dst *core.Screen, v viewport) {
	s := g.session
	pf := g.cfg.Playfield
	top := v.y(pf.BorderMargin) + 1
	bottom := v.y(pf.Height-pf.BorderMargin) - 1

	dst.DrawTextCenteredColored(top, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCenteredColored(top+1, fmt.Sprintf("FINAL SCORE %d", s.Score()), core.ColorWhite)

	leaders, idx := s.Leaders()
	row := top + 3
	if len(leaders) > 0 {
		dst.DrawTextCenteredColored(row, "LEADERBOARD", core.ColorWhite)
		row++
		dst.DrawTextCenteredColored(row, leaderRow("RANK", "SCORE", "NAME"), core.ColorGray)
		row++
		for i, e := range leaders {
			c := core.ColorWhite
			if i == idx {
				c = core.ColorBrightGreen
			}
			dst.DrawTextCenteredColored(row, leaderRow(scoreboard.RankLabel(i+1), fmt.Sprint(e.Score), e.Name), c)
			row++
		}
	}

	switch {
	case s.EnteringInitials():
		n := g.cfg.Gameplay.InitialsLength
		typed := s.Initials()
		pad := n - utf8.RuneCountInString(typed)
		prompt := "NEW HIGH SCORE! ENTER INITIALS: " + typed
		for i := 0; i < pad; i++ {
			prompt += "_"
		}
		dst.DrawTextCenteredColored(min(row+1, bottom-1), prompt, core.ColorBrightYellow)
	case s.Qualified() && s.SaveError() != nil:
		dst.DrawTextCenteredColored(min(row+1, bottom-1), "SAVE FAILED", core.ColorBrightRed)
	case s.Qualified():
		dst.DrawTextCenteredColored(min(row+1, bottom-1), "SCORE SAVED", core.ColorBrightGreen)
	}

	if !s.EnteringInitials() {
		dst.DrawTextCenteredColored(bottom, "RETRY (R)      QUIT (Q)", core.ColorWhite)
	}
}

func leaderRow(rank, score, name string) string {
	return fmt.Sprintf("%-5s %6s  %-4s", rank, score, name)
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	tw := utf8.RuneCountInString(title)
	sw := utf8.RuneCountInString(subtitle)

	boxW := max(tw, sw) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-tw)/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-sw)/2, boxY+3, subtitle)
}
