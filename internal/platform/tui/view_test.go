package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/boxworld/internal/content"
	"github.com/vovakirdan/boxworld/internal/core"
	"github.com/vovakirdan/boxworld/internal/engine"
	"github.com/vovakirdan/boxworld/internal/worldmap"
)

func TestTileGlyph(t *testing.T) {
	tests := []struct {
		name string
		tile worldmap.Tile
		want rune
	}{
		{"blank", worldmap.Tile{Blank: true}, ' '},
		{"empty", worldmap.Tile{}, ' '},
		{"grass", worldmap.Tile{Ground: "grass"}, '.'},
		{"wall over grass", worldmap.Tile{Ground: "grass", Foreground: "brick-wall"}, '#'},
		{"overlay wins", worldmap.Tile{Ground: "grass", Foreground: "tree-stem", Overlay: "tree-top"}, '♣'},
		{"unknown ground", worldmap.Tile{Ground: "lava"}, 'l'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := tileGlyph(tt.tile); got != tt.want {
				t.Errorf("tileGlyph() = %q, want %q", got, tt.want)
			}
		})
	}
}

func testFrame() engine.Frame {
	f := engine.Frame{LevelName: "Test Field"}
	f.Window = make([]engine.CellView, worldmap.WindowCells)
	for i := range f.Window {
		f.Window[i].Tile = worldmap.Tile{Ground: "grass"}
	}
	// Entity directly right of the player.
	f.Window[5*worldmap.BlockSize+6].Entity = &engine.EntityView{Name: "Sage", Glyph: 'S', Near: true}
	return f
}

func TestPainterMap(t *testing.T) {
	p := NewPainter()
	lines := strings.Split(ansi.Strip(p.Map(testFrame())), "\n")
	if len(lines) != worldmap.BlockSize {
		t.Fatalf("map has %d lines, want %d", len(lines), worldmap.BlockSize)
	}
	row := []rune(lines[5])
	if row[5*cellWidth] != '@' {
		t.Errorf("centre = %q, want '@'", row[5*cellWidth])
	}
	if row[6*cellWidth] != 'S' {
		t.Errorf("entity cell = %q, want 'S'", row[6*cellWidth])
	}
	if row[0] != '.' {
		t.Errorf("ground cell = %q, want '.'", row[0])
	}
}

func TestPainterViewDialogue(t *testing.T) {
	f := testFrame()
	f.Dialogue = &engine.DialogueView{
		Speaker:   "Sage",
		Text:      "Want a key?",
		Choices:   []string{"Yes", "No"},
		Highlight: 1,
	}
	f.Inventory = []content.Item{{ID: "key", Name: "Brass key"}}

	out := ansi.Strip(NewPainter().View(f, "Test Pack", ""))
	for _, want := range []string{"Test Pack", "Test Field", "Brass key", "Want a key?", "Yes", "> No"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}

func TestPainterViewTipAndEnd(t *testing.T) {
	f := testFrame()
	f.ShowActionTip = true
	out := ansi.Strip(NewPainter().View(f, "T", ""))
	if !strings.Contains(out, "talk to Sage") {
		t.Errorf("action tip missing:\n%s", out)
	}

	f.Finished = true
	out = ansi.Strip(NewPainter().View(f, "T", ""))
	if !strings.Contains(out, "THE END") {
		t.Errorf("game over overlay missing:\n%s", out)
	}
	if strings.Contains(out, "talk to") {
		t.Error("tip shown over game over")
	}
}

func TestPainterDebugLine(t *testing.T) {
	f := testFrame()
	f.Debug = true
	f.Tick = 42
	f.Offset = core.C(3, 4)
	out := ansi.Strip(NewPainter().View(f, "T", ""))
	if !strings.Contains(out, "tick 42") {
		t.Errorf("debug info missing:\n%s", out)
	}
}
