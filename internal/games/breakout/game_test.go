package breakout

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/scoreboard"
)

func newTestGame(board *scoreboard.Board) *Game {
	return New(Options{
		Config: config.DefaultBreakoutConfig(),
		Board:  board,
		Logger: log.New(io.Discard),
	})
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical runs.
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionStart)
		case i == 2:
			inputs[i].Set(core.ActionReady)
		case i%7 < 3:
			inputs[i].Set(core.ActionLeft)
		case i%7 < 6:
			inputs[i].Set(core.ActionRight)
		default:
			inputs[i].Set(core.ActionReady) // Resumes after a lost life
		}
	}

	run := func() Snapshot {
		g := newTestGame(nil)
		g.Reset(testRuntime(12345))
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Frame != snap2.Frame {
		t.Errorf("Determinism failed: frames differ. Run1=%d, Run2=%d", snap1.Frame, snap2.Frame)
	}
}

func TestGameStepResult(t *testing.T) {
	g := newTestGame(nil)
	g.Reset(testRuntime(1))

	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	result := g.Step(start)

	if len(result.Cues) != 2 || result.Cues[0] != core.CueStartup {
		t.Errorf("Cues = %v, expected startup and play_music", result.Cues)
	}
	if result.State.Lives != 3 || result.State.GameOver || result.State.Quit {
		t.Errorf("State = %+v, expected 3 lives and running", result.State)
	}
}

func TestGameScreenTooSmall(t *testing.T) {
	g := newTestGame(nil)
	rt := testRuntime(1)
	rt.ScreenW, rt.ScreenH = 30, 12
	g.Reset(rt)

	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	g.Step(start)
	if g.Session().State() != StateWelcome {
		t.Error("game advanced while the screen is too small")
	}

	screen := core.NewScreen(30, 12)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too-small hint not rendered")
	}

	g.Resize(80, 24)
	g.Step(start)
	if g.Session().State() != StateGameplay {
		t.Error("game did not start after resizing")
	}
}

func TestGameRenderGameplay(t *testing.T) {
	g := newTestGame(nil)
	g.Reset(testRuntime(1))

	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	g.Step(start)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"SCORE 0", "LIVES 3", "Press ENTER to launch", string(BallChar), string(PaddleChar), string(BrickChar)} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	// Bottom brick row is red, top row green.
	if c := screen.GetCell(4, 3); c.Rune != BrickChar || c.Color != core.ColorGreen {
		t.Errorf("cell (4,3) = %+v, expected green brick", c)
	}
	if c := screen.GetCell(4, 8); c.Rune != BrickChar || c.Color != core.ColorRed {
		t.Errorf("cell (4,8) = %+v, expected red brick", c)
	}
}

func TestGameRenderWelcomeAndPause(t *testing.T) {
	g := newTestGame(nil)
	g.Reset(testRuntime(1))
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Press SPACE to start") {
		t.Error("welcome prompt not rendered")
	}

	for _, a := range []core.Action{core.ActionStart, core.ActionReady, core.ActionPause} {
		in := core.NewInputFrame()
		in.Set(a)
		g.Step(in)
	}
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay not rendered")
	}
}

func TestGameRenderGameOver(t *testing.T) {
	board := fullBoard(t)
	g := newTestGame(board)
	g.Reset(testRuntime(1))

	s := g.Session()
	startPlaying(t, s)
	s.lives = 1
	s.score = 95
	dropBall(s)

	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"GAME OVER", "FINAL SCORE 95", "LEADERBOARD", "ENTER INITIALS: ___", "6TH"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if strings.Contains(out, "RETRY (R)") {
		t.Error("retry shown while initials are being entered")
	}

	s.Step(typed("abc"))
	g.Render(screen)
	out = screen.String()
	if !strings.Contains(out, "ABC") || !strings.Contains(out, "RETRY (R)") {
		t.Error("saved entry or retry hint missing after initials")
	}
}

func TestGameRenderHighScore(t *testing.T) {
	g := newTestGame(fullBoard(t))
	g.Reset(testRuntime(1))

	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	g.Step(start)

	screen := core.NewScreen(MinScreenW, MinScreenH)
	g.Resize(MinScreenW, MinScreenH)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"SCORE 0", "HI 140", "LIVES 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestGameRenderSaveFailed(t *testing.T) {
	g := newTestGame(scoreboard.NewBoard(&readOnlyStore{}, scoreboard.MaxEntries))
	g.Reset(testRuntime(1))

	s := g.Session()
	startPlaying(t, s)
	s.lives = 1
	s.score = 30
	dropBall(s)
	s.Step(typed("abc"))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "SAVE FAILED") {
		t.Error("failed save not reported")
	}
	if strings.Contains(out, "SCORE SAVED") {
		t.Error("failed save reported as saved")
	}
}

func TestGameQuitState(t *testing.T) {
	g := newTestGame(nil)
	g.Reset(testRuntime(1))

	q := core.NewInputFrame()
	q.Set(core.ActionQuit)
	if !g.Step(q).State.Quit {
		t.Error("State.Quit = false after quit on the welcome screen")
	}
}

func TestSnapshotDetached(t *testing.T) {
	g := newTestGame(nil)
	g.Reset(testRuntime(1))
	s := g.Session()
	startPlaying(t, s)
	s.Field().Hit(0, s.rng)

	snap := g.Snapshot()
	if snap.State != "gameplay" || !snap.BallActive {
		t.Errorf("snapshot state %q active %v", snap.State, snap.BallActive)
	}
	if len(snap.Bricks) != 66 || !snap.Bricks[0].Destroyed || len(snap.Bricks[0].Particles) != 15 {
		t.Error("snapshot bricks do not reflect the hit")
	}

	h := snap.Hash()
	s.Step(core.NewInputFrame())
	if snap.Hash() != h {
		t.Error("snapshot changed when the session advanced")
	}
	if g.Snapshot().Hash() == h {
		t.Error("hash did not change after a frame")
	}
}
