package engine

import "github.com/vovakirdan/boxworld/internal/core"

// Snapshot is a plain-value copy of the observable engine state.
type Snapshot struct {
	Tick            uint64
	Level           string
	Offset          core.Coord
	NextOffset      core.Coord
	Direction       core.Direction
	Progress        int
	MovementBlocked bool
	OutsideBounds   string
	Active          string
	CursorIndex     int
	Highlight       int
	ShowingResponse bool
	Text            string
	Inventory       []string
	Classes         []string
	Zoomed          bool
	Finished        bool
}

// Snapshot returns the current observable state.
func (e *Engine) Snapshot() Snapshot {
	s := e.state
	snap := Snapshot{
		Tick:            s.Tick,
		Level:           s.Level.ID,
		Offset:          s.Offset,
		NextOffset:      s.NextOffset,
		Direction:       s.Direction,
		Progress:        s.Progress,
		MovementBlocked: s.MovementBlocked,
		OutsideBounds:   string(s.OutsideBounds),
		CursorIndex:     s.Cursor.Index,
		Highlight:       s.Cursor.Highlight,
		ShowingResponse: s.Cursor.ShowingResponse,
		Text:            s.Cursor.Text,
		Inventory:       s.Inventory.Names(),
		Classes:         s.Classes.Copy(),
		Zoomed:          s.Zoomed,
		Finished:        s.Finished,
	}
	if s.Active != nil {
		snap.Active = s.Active.Name
	}
	return snap
}
