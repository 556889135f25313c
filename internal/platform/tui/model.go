package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// holdTicks is how long a Left/Right press stays asserted. Terminals send
// key repeats but no releases, so each repeat refreshes the window.
const holdTicks = 4

// Game is the simulation driven by the frame loop.
type Game interface {
	ID() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// ExitMsg is emitted once the player leaves the game from its own screens.
type ExitMsg struct {
	Score int
}

// Options configures a game Model.
type Options struct {
	Game    Game
	Runtime core.RuntimeConfig
	Audio   audio.Player // nil plays nothing
	Logger  *log.Logger
	// ScreenshotDir enables ctrl+s dumps. Empty disables them.
	ScreenshotDir string
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game          Game
	screen        *core.Screen
	config        core.RuntimeConfig
	inputFrame    core.InputFrame
	gameState     core.GameState
	keyMapper     *KeyMapper
	player        audio.Player
	logger        *log.Logger
	screenshotDir string
	holdLeft      int
	holdRight     int
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}
	player := opts.Audio
	if player == nil {
		player = audio.Silent()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		game:          opts.Game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:        cfg,
		inputFrame:    core.NewInputFrame(),
		keyMapper:     NewKeyMapper(),
		player:        player,
		logger:        logger,
		screenshotDir: opts.ScreenshotDir,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ExitMsg:
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.player.StopMusic()
		return m, tea.Quit
	}

	switch {
	case m.inputFrame.Has(core.ActionLeft):
		m.holdLeft, m.holdRight = holdTicks, 0
	case m.inputFrame.Has(core.ActionRight):
		m.holdLeft, m.holdRight = 0, holdTicks
	}

	return m, nil
}

// handleResize processes window resize events.
// The session survives; only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.holdLeft > 0 {
		m.inputFrame.Set(core.ActionLeft)
		m.holdLeft--
	}
	if m.holdRight > 0 {
		m.inputFrame.Set(core.ActionRight)
		m.holdRight--
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	audio.Dispatch(m.player, result.Cues)

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.gameState.Quit {
		m.quitting = true
		m.player.StopMusic()
		m.logger.Info("player left", "game", m.game.ID(), "score", m.gameState.Score)
		score := m.gameState.Score
		return m, func() tea.Msg { return ExitMsg{Score: score} }
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" {
		return
	}
	m.game.Render(m.screen)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.screenshotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(m.screenshotDir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Quitting reports whether the model has finished.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
