package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/boxworld/internal/core"
	"github.com/vovakirdan/boxworld/internal/engine"
	"github.com/vovakirdan/boxworld/internal/worldmap"
)

// Layout constants
const (
	cellWidth   = 2 // terminal cells are about twice as tall as wide
	mapColumns  = worldmap.BlockSize * cellWidth
	sideWidth   = 26
	dialogWidth = mapColumns + sideWidth + 4
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	speakerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	endStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(1, 4).
			Align(lipgloss.Center)
)

// frameBuffer is the engine's Renderer: it keeps the latest frame for View.
type frameBuffer struct {
	frame  engine.Frame
	have   bool
	frames int
}

// Render implements engine.Renderer.
func (b *frameBuffer) Render(f engine.Frame) {
	b.frame = f
	b.have = true
	b.frames++
}

// Painter turns engine frames into styled strings.
type Painter struct {
	screen *core.Screen
}

// NewPainter creates a painter with its own map buffer.
func NewPainter() *Painter {
	return &Painter{screen: core.NewScreen(mapColumns, worldmap.BlockSize)}
}

// Map draws the 11x11 window with the player in the centre.
func (p *Painter) Map(f engine.Frame) string {
	p.screen.Clear()
	centre := worldmap.BlockSize / 2
	for i, c := range f.Window {
		x, y := i%worldmap.BlockSize, i/worldmap.BlockSize
		r, col := tileGlyph(c.Tile)
		if e := c.Entity; e != nil {
			r, col = e.Glyph, e.Color
			if e.Active {
				col = core.ColorBrightYellow
			}
		}
		if x == centre && y == centre {
			r, col = '@', core.ColorBrightWhite
		}
		p.screen.SetColored(x*cellWidth, y, r, col)
	}
	return RenderScreen(p.screen)
}

// View composes the whole play screen.
func (p *Painter) View(f engine.Frame, title, help string) string {
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(p.Map(f)),
		panelStyle.Width(sideWidth).Render(sidebar(f, title)),
	)

	var bottom string
	switch {
	case f.Finished:
		bottom = endStyle.Width(dialogWidth - 4).Render("THE END\n\n" + dimStyle.Render("press q to leave"))
	case f.Dialogue != nil:
		bottom = panelStyle.Width(dialogWidth - 2).Render(dialogue(f.Dialogue))
	case f.ShowActionTip && nearby(f) != "":
		bottom = dimStyle.Render(fmt.Sprintf("  [enter] talk to %s", nearby(f)))
	}

	parts := []string{top}
	if bottom != "" {
		parts = append(parts, bottom)
	}
	if help != "" {
		parts = append(parts, dimStyle.Render(help))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func sidebar(f engine.Frame, title string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(f.LevelName)
	b.WriteString("\n\n")

	b.WriteString(dimStyle.Render("Inventory"))
	b.WriteString("\n")
	if len(f.Inventory) == 0 {
		b.WriteString(dimStyle.Render("  (empty)"))
		b.WriteString("\n")
	}
	for _, it := range f.Inventory {
		b.WriteString("  • " + it.Name + "\n")
	}

	if f.Debug {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("tick %d  fps %.0f", f.Tick, f.FPS)))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("at %s  %s %d%%", f.Offset, f.Direction, f.Progress)))
		b.WriteString("\n")
		if f.Blocked {
			b.WriteString(dimStyle.Render("blocked"))
			b.WriteString("\n")
		}
		b.WriteString(dimStyle.Render(strings.Join(f.Classes, " ")))
	}
	return b.String()
}

func dialogue(d *engine.DialogueView) string {
	var b strings.Builder
	b.WriteString(speakerStyle.Render(d.Speaker))
	b.WriteString("\n")
	b.WriteString(d.Text)
	for i, c := range d.Choices {
		b.WriteString("\n")
		if i == d.Highlight {
			b.WriteString(selectedStyle.Render("> " + c))
		} else {
			b.WriteString("  " + c)
		}
	}
	return b.String()
}

// nearby returns the name of the first near entity in view.
func nearby(f engine.Frame) string {
	for _, c := range f.Window {
		if c.Entity != nil && c.Entity.Near {
			return c.Entity.Name
		}
	}
	return ""
}
