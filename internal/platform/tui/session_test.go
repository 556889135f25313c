package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/scoreboard"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorGreen)
	s.DrawTextColored(2, 0, "cd", core.ColorRed)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "xyz") {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(80, 24)
	press := func(msg tea.KeyMsg) {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}

	press(tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor should stay at the top, got %d", m.cursor)
	}

	press(tea.KeyMsg{Type: tea.KeyDown})
	press(tea.KeyMsg{Type: tea.KeyDown})
	press(tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	if sel == nil {
		t.Fatal("expected a selection")
	}
	if sel.Choice != ChoicePlay || sel.Preset != config.DifficultyHard {
		t.Errorf("selected %+v, expected hard play", *sel)
	}
}

func TestMenuQuitItem(t *testing.T) {
	m := NewMenuModel(80, 24)
	for i, n := 0, len(m.items); i < n; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if !m.IsQuitting() || m.Selected() != nil {
		t.Error("last item should quit without a selection")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
}

type failingSource struct{}

func (failingSource) Entries() ([]scoreboard.Entry, error) {
	return nil, errors.New("disk on fire")
}

func TestScoreboardModel(t *testing.T) {
	store := scoreboard.NewMemoryStore(10)
	board := scoreboard.NewBoard(store, 10)
	for _, e := range []scoreboard.Entry{{Name: "AAA", Score: 10}, {Name: "BBB", Score: 30}} {
		if err := board.Submit(e.Name, e.Score); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}

	m := NewScoreboardModel(board, 80, 24)
	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("rows = %d, expected 2", len(rows))
	}
	if rows[0][0] != "1ST" || rows[0][1] != "BBB" || rows[0][2] != "30" {
		t.Errorf("first row = %v", rows[0])
	}

	if err := board.Submit("CCC", 50); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	next, _ := m.Update(runeKey('r'))
	m = next.(ScoreboardModel)
	if len(m.table.Rows()) != 3 {
		t.Errorf("reload should pick up new entries, rows = %d", len(m.table.Rows()))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back")
	}
}

func TestScoreboardModelLoadError(t *testing.T) {
	m := NewScoreboardModel(failingSource{}, 80, 24)
	if !strings.Contains(m.View(), "disk on fire") {
		t.Error("view should show the load error")
	}
}

func newTestSessionModel() SessionModel {
	board := scoreboard.NewBoard(scoreboard.NewMemoryStore(10), 10)
	return NewSessionModel(SessionOptions{
		Base:    config.DefaultBreakoutConfig(),
		Board:   board,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3},
		Logger:  quietLogger(),
	})
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestSessionModelPlayAndReturn(t *testing.T) {
	m := newTestSessionModel()

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame {
		t.Fatalf("view = %v, expected game", m.view)
	}

	game, ok := m.game.game.(*breakout.Game)
	if !ok {
		t.Fatalf("game is %T", m.game.game)
	}
	if got := game.State().Lives; got != 5 {
		t.Errorf("easy preset lives = %d, expected 5", got)
	}

	// q on the welcome screen leaves the game
	m, _ = sessionUpdate(t, m, runeKey('q'))
	m, cmd := sessionUpdate(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("expected exit command")
	}
	m, _ = sessionUpdate(t, m, cmd())

	if m.view != viewMenu {
		t.Errorf("view = %v, expected menu after leaving the game", m.view)
	}
	if m.quitting {
		t.Error("leaving a game should not end the session")
	}
}

func TestSessionModelScores(t *testing.T) {
	m := newTestSessionModel()

	for i := 0; i < 3; i++ {
		m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewScores {
		t.Fatalf("view = %v, expected scores", m.view)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scores view should show its title")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu || m.quitting {
		t.Error("esc should return to the menu")
	}
}

func TestSessionModelCtrlC(t *testing.T) {
	m := newTestSessionModel()
	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.quitting {
		t.Error("ctrl+c should end the session")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
}
