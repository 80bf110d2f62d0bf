package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/boxworld/internal/core"
)

// KeyMap defines the key bindings for play.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	RunUp    key.Binding
	RunDown  key.Binding
	RunLeft  key.Binding
	RunRight key.Binding
	Action   key.Binding
	Debug    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Action, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.RunUp, k.RunDown, k.RunLeft, k.RunRight},
		{k.Action, k.Debug, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "walk up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "walk down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "walk left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "walk right"),
		),
		RunUp: key.NewBinding(
			key.WithKeys("shift+up", "W", "K"),
			key.WithHelp("S-↑", "run up"),
		),
		RunDown: key.NewBinding(
			key.WithKeys("shift+down", "S", "J"),
			key.WithHelp("S-↓", "run down"),
		),
		RunLeft: key.NewBinding(
			key.WithKeys("shift+left", "A", "H"),
			key.WithHelp("S-←", "run left"),
		),
		RunRight: key.NewBinding(
			key.WithKeys("shift+right", "D", "L"),
			key.WithHelp("S-→", "run right"),
		),
		Action: key.NewBinding(
			key.WithKeys("enter", " ", "e"),
			key.WithHelp("enter", "talk/choose"),
		),
		Debug: key.NewBinding(
			key.WithKeys("f3", "`"),
			key.WithHelp("`", "debug"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Direction maps a key to a movement direction.
// ok is false when the key is not a movement key.
func (k KeyMap) Direction(msg tea.KeyMsg) (d core.Direction, run, ok bool) {
	switch {
	case key.Matches(msg, k.Up):
		return core.DirUp, false, true
	case key.Matches(msg, k.Down):
		return core.DirDown, false, true
	case key.Matches(msg, k.Left):
		return core.DirLeft, false, true
	case key.Matches(msg, k.Right):
		return core.DirRight, false, true
	case key.Matches(msg, k.RunUp):
		return core.DirUp, true, true
	case key.Matches(msg, k.RunDown):
		return core.DirDown, true, true
	case key.Matches(msg, k.RunLeft):
		return core.DirLeft, true, true
	case key.Matches(msg, k.RunRight):
		return core.DirRight, true, true
	}
	return core.DirNone, false, false
}
