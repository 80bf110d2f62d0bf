package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/boxworld/internal/registry"
	"github.com/vovakirdan/boxworld/internal/storage"
)

// Journal layout constants
const (
	maxEntries = 200
)

// JournalKeyMap defines the key bindings for the journal viewer.
type JournalKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPack key.Binding
	PrevPack key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k JournalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPack, k.PrevPack, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k JournalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPack, k.PrevPack},
		{k.Back, k.Quit},
	}
}

// DefaultJournalKeyMap returns default key bindings.
func DefaultJournalKeyMap() JournalKeyMap {
	return JournalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextPack: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next world"),
		),
		PrevPack: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev world"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// JournalModel is the Bubble Tea model for the journal screen.
type JournalModel struct {
	packs      []string
	packCursor int
	store      *storage.Store
	entries    []storage.Entry
	table      table.Model
	help       help.Model
	keys       JournalKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
	embedded   bool // back returns to a parent model instead of quitting
}

// NewJournalModel creates a journal viewer. Extra pack IDs (for packs loaded
// from disk) are listed after the registered ones.
func NewJournalModel(store *storage.Store, width, height int, extra ...string) JournalModel {
	var packs []string
	for _, p := range registry.List() {
		packs = append(packs, p.ID)
	}
	for _, id := range extra {
		if !registry.Exists(id) {
			packs = append(packs, id)
		}
	}

	h := help.New()
	h.ShowAll = false

	m := JournalModel{
		packs:  packs,
		store:  store,
		keys:   DefaultJournalKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	if len(m.packs) > 0 {
		m.loadEntries(m.packs[0])
	}
	return m
}

// createTable creates a new table with appropriate columns.
func (m *JournalModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 14},
		{Title: "Event", Width: 14},
		{Title: "Subject", Width: 20},
		{Title: "Tick", Width: 8},
	}
	if extra := m.width - 70; extra > 0 {
		columns[2].Width += min(extra, 20)
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadEntries loads the newest entries for the given pack.
func (m *JournalModel) loadEntries(packID string) {
	m.entries = nil
	if m.store != nil {
		if entries, err := m.store.Recent(packID, maxEntries); err == nil {
			m.entries = entries
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current entries.
func (m *JournalModel) updateTableRows() {
	m.table.SetRows(journalRows(m.entries))
	m.table.GotoTop()
}

func journalRows(entries []storage.Entry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			e.CreatedAt.Format("Jan 02 15:04"),
			string(e.Kind),
			e.Subject,
			fmt.Sprintf("%d", e.Tick),
		}
	}
	return rows
}

// Init initializes the journal model.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPack):
			if len(m.packs) > 0 {
				m.packCursor = (m.packCursor + 1) % len(m.packs)
				m.loadEntries(m.packs[m.packCursor])
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevPack):
			if len(m.packs) > 0 {
				m.packCursor--
				if m.packCursor < 0 {
					m.packCursor = len(m.packs) - 1
				}
				m.loadEntries(m.packs[m.packCursor])
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal.
func (m JournalModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "JOURNAL"
	if len(m.packs) > 0 {
		title = fmt.Sprintf("JOURNAL - %s", m.packs[m.packCursor])
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	if len(m.entries) == 0 {
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("Nothing recorded yet.\nTalk to someone, find something!")
	} else {
		content = m.table.View()
	}
	b.WriteString(tableStyle.Render(content))

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// IsGoingBack returns true if user wants to go back.
func (m JournalModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m JournalModel) IsQuitting() bool {
	return m.quitting
}

// RunJournal runs the journal screen as its own program.
func RunJournal(store *storage.Store, width, height int, extra ...string) error {
	p := tea.NewProgram(
		NewJournalModel(store, width, height, extra...),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
