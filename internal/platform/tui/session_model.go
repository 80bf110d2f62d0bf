package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/boxworld/internal/config"
	"github.com/vovakirdan/boxworld/internal/storage"
)

// SessionModelConfig configures a remote session.
type SessionModelConfig struct {
	ID     string
	Engine config.EngineConfig
	Store  *storage.Store
	Logger *log.Logger
	Width  int
	Height int
}

// sessionSlot holds the running play session so it can be closed when the
// connection drops, whatever copy of the model is current.
type sessionSlot struct {
	mu      sync.Mutex
	session *Session
}

func (s *sessionSlot) set(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil {
		s.session.Close()
	}
	s.session = sess
}

func (s *sessionSlot) close() {
	s.set(nil)
}

// SessionModel manages the full remote flow: menu -> play -> menu, with the
// journal reachable from the menu.
type SessionModel struct {
	cfg     SessionModelConfig
	slot    *sessionSlot
	menu    MenuModel
	journal *JournalModel
	play    *Model
	err     string
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg SessionModelConfig) SessionModel {
	return SessionModel{
		cfg:  cfg,
		slot: &sessionSlot{},
		menu: NewMenuModel(cfg.Width, cfg.Height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.Width = wsm.Width
		m.cfg.Height = wsm.Height
	}

	switch {
	case m.play != nil:
		return m.updatePlay(msg)
	case m.journal != nil:
		return m.updateJournal(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.slot.close()
		return m, tea.Quit
	}

	if m.menu.WantsJournal() {
		j := NewJournalModel(m.cfg.Store, m.cfg.Width, m.cfg.Height)
		j.embedded = true
		m.journal = &j
		m.menu = NewMenuModel(m.cfg.Width, m.cfg.Height)
		return m, nil
	}

	if selected := m.menu.Selected(); selected != nil {
		m.menu = NewMenuModel(m.cfg.Width, m.cfg.Height)
		sess, err := NewSession(SessionConfig{
			PackID: selected.ID,
			ID:     m.cfg.ID,
			Engine: m.cfg.Engine,
			Store:  m.cfg.Store,
			Logger: m.cfg.Logger,
		})
		if err != nil {
			m.err = err.Error()
			if m.cfg.Logger != nil {
				m.cfg.Logger.Error("could not start session", "pack", selected.ID, "error", err)
			}
			return m, nil
		}
		m.err = ""
		m.slot.set(sess)
		play := NewModel(sess, m.cfg.Engine)
		play.width, play.height = m.cfg.Width, m.cfg.Height
		play.embedded = true
		m.play = &play
		return m, m.play.Init()
	}

	return m, cmd
}

// updatePlay handles updates while a world is running.
func (m SessionModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.play.Update(msg)
	if play, ok := newModel.(Model); ok {
		m.play = &play
	}

	if m.play.quitting {
		m.play = nil
		m.slot.close()
		// Drop the pending tick; the menu does not need one.
		return m, nil
	}
	return m, cmd
}

// updateJournal handles updates while the journal is open.
func (m SessionModel) updateJournal(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.journal.Update(msg)
	if j, ok := newModel.(JournalModel); ok {
		m.journal = &j
	}

	if m.journal.IsQuitting() {
		m.slot.close()
		return m, tea.Quit
	}
	if m.journal.IsGoingBack() {
		m.journal = nil
		return m, nil
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	switch {
	case m.play != nil:
		return m.play.View()
	case m.journal != nil:
		return m.journal.View()
	}
	v := m.menu.View()
	if m.err != "" {
		v += "\n" + centerText(dimStyle.Render(m.err), m.cfg.Width)
	}
	return v
}
