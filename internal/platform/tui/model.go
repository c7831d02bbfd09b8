package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/flappy"
)

// Model is the Bubble Tea model that drives a flappy.State.
// Each TickMsg is one frame: the state gets the time since the previous
// frame and at most one key press.
type Model struct {
	state    *flappy.State
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	pending  core.Action // latest key since the last frame
	lastTick time.Time
	mode     flappy.Mode // mode seen after the last frame
	termW    int
	termH    int
	quitting bool
}

// NewModel creates a model for the given game state.
func NewModel(state *flappy.State, cfg core.RuntimeConfig, logger *log.Logger) Model {
	return Model{
		state:  state,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		mode:   state.Mode(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
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
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey buffers the key for the next frame. A newer key replaces an
// older one that has not been consumed yet.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Interrupt) {
		m.logger.Info("interrupted", "mode", m.state.Mode(), "score", m.state.Score())
		m.quitting = true
		return m, tea.Quit
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		m.pending = action
	}
	return m, nil
}

// handleResize records the terminal size. The game keeps its logical
// size; the view is cropped to the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.termW = msg.Width
	m.termH = msg.Height
	if msg.Width < m.config.ScreenW || msg.Height < m.config.ScreenH+1 {
		m.logger.Warn("terminal smaller than the game screen",
			"terminal", [2]int{msg.Width, msg.Height},
			"screen", [2]int{m.config.ScreenW, m.config.ScreenH},
		)
	}
	return m, nil
}

// handleFrame runs one game frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := elapsedMs(m.lastTick, now)
	m.lastTick = now

	m.state.Tick(m.screen, elapsed, m.pending)
	m.pending = core.ActionNone

	if mode := m.state.Mode(); mode != m.mode {
		m.logger.Debug("mode changed", "from", m.mode, "to", mode, "score", m.state.Score())
		if mode == flappy.ModeEnd {
			m.logger.Info("game over", "score", m.state.Score(), "distance", m.state.Player().X)
		}
		if mode == flappy.ModePlaying {
			m.logger.Info("round started")
		}
		m.mode = mode
	}

	if m.state.Quitting() {
		m.logger.Info("quit", "mode", m.state.Mode(), "score", m.state.Score())
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the last frame followed by a help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	maxH := 0
	if m.termH > 0 {
		maxH = m.termH - 1 // leave room for the help line
	}
	return RenderScreen(m.screen, m.termW, maxH) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(state *flappy.State, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(state, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
