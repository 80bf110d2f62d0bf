package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/boxworld/internal/config"
)

// Model is the Bubble Tea model for one play session.
type Model struct {
	session  *Session
	keys     KeyMap
	buffer   *KeyBuffer
	painter  *Painter
	help     help.Model
	tickRate int
	width    int
	height   int
	quitting bool
	embedded bool // quit hands control back to a parent model
	clock    func() time.Time
}

// NewModel creates a new Bubble Tea model for the session.
func NewModel(s *Session, cfg config.EngineConfig) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		session: s,
		keys:    DefaultKeyMap(),
		buffer:  NewKeyBuffer(cfg.Input.HoldTimeout),
		painter: NewPainter(),
		help:    h,
		// Sample at twice the engine rate so the loop never starves.
		tickRate: cfg.Loop.TickRate * 2,
		clock:    time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Debug):
		m.session.Engine.ToggleDebug()
		return m, nil
	case key.Matches(msg, m.keys.Action):
		m.buffer.Pulse()
		return m, nil
	}

	if d, run, ok := m.keys.Direction(msg); ok {
		m.buffer.Press(d, run, m.clock())
	}
	return m, nil
}

// handleTick offers the engine a tick. Input is only consumed when one runs.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	e := m.session.Engine
	if e.Loop().Ready(now) {
		e.Tick(m.buffer.Frame(now))
	}
	return m, tickCmd(m.tickRate)
}

// View renders the latest frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.painter.View(m.session.Frame(), m.session.Pack.Title, m.help.View(m.keys))
}

// Session returns the model's session.
func (m Model) Session() *Session {
	return m.session
}

// Run starts the Bubble Tea program for a local session.
func Run(s *Session, cfg config.EngineConfig) error {
	p := tea.NewProgram(
		NewModel(s, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
