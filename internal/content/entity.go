package content

import "github.com/vovakirdan/boxworld/internal/core"

// Entity is a thing placed in a level: an NPC, a sign, a chest.
type Entity struct {
	Name        string
	Location    core.Coord
	Glyph       rune
	Color       core.Color
	Interactive bool
	Hidden      bool
	State       State
	Dialogue    []DialogueNode

	// Runtime flags, rebuilt from static data on every level switch.
	IsNear        bool
	IsActive      bool
	HasInteracted bool
	Classes       Classes
}

// Position implements worldmap.Occupant.
func (e *Entity) Position() core.Coord {
	return e.Location
}

// ResetRuntime clears every per-session flag.
func (e *Entity) ResetRuntime() {
	e.IsNear = false
	e.IsActive = false
	e.HasInteracted = false
	e.Classes = nil
	if e.State == nil {
		e.State = State{}
	}
}

// DialogueClasses returns every class declared by the entity's dialogue nodes
// and their choices.
func (e *Entity) DialogueClasses() []string {
	var out []string
	for _, n := range e.Dialogue {
		if n.Class != "" {
			out = append(out, n.Class)
		}
		for _, c := range n.Choices {
			if c.Class != "" {
				out = append(out, c.Class)
			}
		}
	}
	return out
}
