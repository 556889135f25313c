package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/scoreboard"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	resets  int
	resized [2]int
	frames  []core.InputFrame
	cues    []core.Cue
	state   core.GameState
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Render(dst *core.Screen) { dst.Clear(); dst.DrawText(0, 0, "fake") }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, copyFrame(in))
	cues := g.cues
	g.cues = nil
	return core.StepResult{State: g.state, Cues: cues}
}

// copyFrame detaches a frame from the model, which reuses it every tick.
func copyFrame(in core.InputFrame) core.InputFrame {
	out := core.NewInputFrame()
	for a, on := range in.Actions {
		out.Actions[a] = on
	}
	out.Chars = append([]rune(nil), in.Chars...)
	return out
}

// recorder is an audio player that remembers what it was asked to do.
type recorder struct {
	played  []core.Cue
	music   int
	stopped int
}

func (r *recorder) Play(c core.Cue) { r.played = append(r.played, c) }
func (r *recorder) PlayMusic() { r.music++ }
func (r *recorder) StopMusic() { r.stopped++ }
func (r *recorder) Close() {}

func quietLogger() *log.Logger {
	return log.NewWithOptions(&strings.Builder{}, log.Options{})
}

func newTestModel(g Game, p *recorder) Model {
	m := NewModel(Options{
		Game:    g,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
		Audio:   p,
		Logger:  quietLogger(),
	})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelInitResetsGame(t *testing.T) {
	g := &fakeGame{}
	newTestModel(g, &recorder{})
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
}

func TestModelHeldKey(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, &recorder{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for i := 0; i < holdTicks+2; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	for i, f := range g.frames {
		expected := i < holdTicks
		if f.Has(core.ActionLeft) != expected {
			t.Errorf("frame %d: Left = %v, expected %v", i, f.Has(core.ActionLeft), expected)
		}
	}
}

func TestModelOppositeKeyCancelsHold(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, &recorder{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	_, _ = update(t, m, TickMsg{})

	last := g.frames[len(g.frames)-1]
	if last.Has(core.ActionLeft) || !last.Has(core.ActionRight) {
		t.Errorf("expected only Right after switching, got %v", last.Actions)
	}
}

func TestModelInputClearedEachTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, &recorder{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg{})
	_, _ = update(t, m, TickMsg{})

	if !g.frames[0].Has(core.ActionReady) {
		t.Error("first frame should carry Ready")
	}
	if g.frames[1].Has(core.ActionReady) {
		t.Error("Ready should not repeat on the next frame")
	}
}

func TestModelDispatchesCues(t *testing.T) {
	g := &fakeGame{cues: []core.Cue{core.CueStartup, core.CuePlayMusic, core.CueBrickHit}}
	p := &recorder{}
	m := newTestModel(g, p)

	_, _ = update(t, m, TickMsg{})

	if len(p.played) != 2 || p.played[0] != core.CueStartup || p.played[1] != core.CueBrickHit {
		t.Errorf("played = %v", p.played)
	}
	if p.music != 1 {
		t.Errorf("music started %d times, expected 1", p.music)
	}
}

func TestModelQuitEmitsExit(t *testing.T) {
	g := &fakeGame{state: core.GameState{Score: 42, GameOver: true, Quit: true}}
	p := &recorder{}
	m := newTestModel(g, p)

	m, cmd := update(t, m, TickMsg{})
	if !m.Quitting() {
		t.Error("model should be quitting")
	}
	if cmd == nil {
		t.Fatal("expected a command")
	}
	exit, ok := cmd().(ExitMsg)
	if !ok {
		t.Fatalf("expected ExitMsg")
	}
	if exit.Score != 42 {
		t.Errorf("exit score = %d, expected 42", exit.Score)
	}
	if p.stopped != 1 {
		t.Errorf("music should be stopped on exit")
	}

	_, cmd = update(t, m, exit)
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("standalone model should quit on ExitMsg")
	}
}

func TestModelCtrlCQuits(t *testing.T) {
	m := newTestModel(&fakeGame{}, &recorder{})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.Quitting() {
		t.Error("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, &recorder{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resized != [2]int{100, 30} {
		t.Errorf("resized = %v", g.resized)
	}
	if g.resets != 1 {
		t.Errorf("resize should not reset the game, resets = %d", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelDrivesBreakout(t *testing.T) {
	board := scoreboard.NewBoard(scoreboard.NewMemoryStore(10), 10)
	g := breakout.New(breakout.Options{
		Config: config.DefaultBreakoutConfig(),
		Board:  board,
		Logger: quietLogger(),
	})
	p := &recorder{}
	m := newTestModel(g, p)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = update(t, m, TickMsg{})

	if g.Session().State() != breakout.StateGameplay {
		t.Fatalf("state = %v, expected gameplay", g.Session().State())
	}
	if p.music != 1 {
		t.Error("starting should start the music")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg{})
	if !g.Session().BallActive() {
		t.Error("enter should launch the ball")
	}

	if !strings.Contains(m.View(), "SCORE") {
		t.Error("gameplay view should show the score")
	}
}
