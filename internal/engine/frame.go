package engine

import (
	"github.com/vovakirdan/boxworld/internal/content"
	"github.com/vovakirdan/boxworld/internal/core"
	"github.com/vovakirdan/boxworld/internal/worldmap"
)

// EntityView is a read-only copy of an entity for the renderer.
type EntityView struct {
	Name    string
	Glyph   rune
	Color   core.Color
	Near    bool
	Active  bool
	Classes []string
}

// CellView is one window cell as the renderer sees it.
type CellView struct {
	Tile   worldmap.Tile
	Entity *EntityView
}

// DialogueView is the active conversation as the renderer sees it.
type DialogueView struct {
	Speaker   string
	Text      string
	Choices   []string
	Highlight int
	Response  bool
}

// Frame is the snapshot handed to the renderer.
type Frame struct {
	Tick      uint64
	Level     string
	LevelName string
	Offset    core.Coord
	Direction core.Direction
	Progress  int
	Blocked   bool

	Window     []CellView // row-major, worldmap.WindowCells long
	MapChanged bool

	Dialogue         *DialogueView
	Inventory        []content.Item
	InventoryChanged bool
	Classes          []string

	ShowActionTip bool
	Debug         bool
	Finished      bool
	FPS           float64
}

// Renderer receives a frame on every tick that changed something visible.
type Renderer interface {
	Render(f Frame)
}

func buildFrame(s *State, window []worldmap.Cell, mapChanged bool, fps float64) Frame {
	f := Frame{
		Tick:             s.Tick,
		Level:            s.Level.ID,
		LevelName:        s.Level.Name,
		Offset:           s.Offset,
		Direction:        s.Direction,
		Progress:         s.Progress,
		Blocked:          s.MovementBlocked,
		MapChanged:       mapChanged,
		Inventory:        s.Inventory.Items(),
		InventoryChanged: s.InventoryChanged,
		Classes:          s.Classes.Copy(),
		ShowActionTip:    s.ShowActionTip,
		Debug:            s.Debug,
		Finished:         s.Finished,
		FPS:              fps,
	}

	f.Window = make([]CellView, len(window))
	for i, c := range window {
		f.Window[i].Tile = c.Tile
		if e, ok := c.Occupant.(*content.Entity); ok {
			f.Window[i].Entity = &EntityView{
				Name:    e.Name,
				Glyph:   e.Glyph,
				Color:   e.Color,
				Near:    e.IsNear,
				Active:  e.IsActive,
				Classes: e.Classes.Copy(),
			}
		}
	}

	if s.Active != nil {
		dv := &DialogueView{
			Speaker:   s.Active.Name,
			Text:      s.Cursor.Text,
			Highlight: s.Cursor.Highlight,
			Response:  s.Cursor.ShowingResponse,
		}
		for _, c := range s.Cursor.Choices {
			dv.Choices = append(dv.Choices, c.Text)
		}
		f.Dialogue = dv
	}
	return f
}
