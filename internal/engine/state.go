package engine

import (
	"github.com/vovakirdan/boxworld/internal/content"
	"github.com/vovakirdan/boxworld/internal/core"
)

// Ambient display classes.
const (
	ClassChat    = "-chat"
	ClassZoomIn  = "-zoom-in"
	ClassNear    = "-near"
	ClassActive  = "-active"
	ClassVisited = "-visited"
	themePrefix  = "-theme-"
)

// Cursor is the bookkeeping for the current interaction.
type Cursor struct {
	Index           int // -1 when no line is shown
	Choices         []content.Choice
	Highlight       int // -1 when nothing is highlighted
	ShowingResponse bool
	Text            string
}

// Reset returns the cursor to its idle state.
func (c *Cursor) Reset() {
	*c = Cursor{Index: -1, Highlight: -1}
}

// State is the engine's aggregate root. Components receive it by pointer once
// per tick and own no other mutable state.
type State struct {
	Pack  *content.Pack
	Level *content.Level

	Tick       uint64
	Offset     core.Coord // committed focal offset
	NextOffset core.Coord // in-flight target, committed at the end of a tick

	Direction       core.Direction
	Progress        int
	MovementBlocked bool
	OutsideBounds   content.Bound

	Active    *content.Entity
	Cursor    Cursor
	Inventory Inventory
	Classes   content.Classes

	Zoomed           bool
	NeedRender       bool
	ForceMapRender   bool
	InventoryChanged bool
	ShowActionTip    bool
	Debug            bool
	Finished         bool

	// PrevHeld is the previous tick's held direction, for edge detection.
	PrevHeld core.Direction

	globals content.State
	cues    []Cue
	events  []Event
}

// NewState builds the session state and enters the pack's start level.
// It returns nil when the start level does not exist.
func NewState(pack *content.Pack) *State {
	s := &State{
		Pack:    pack,
		globals: content.State{},
	}
	s.Cursor.Reset()
	if !s.SetLevel(pack.StartLevel, nil) {
		return nil
	}
	return s
}

// SetLevel installs the level with the given id. entry overrides the default
// centre position. Unknown ids leave the state untouched and return false.
func (s *State) SetLevel(id string, entry *core.Coord) bool {
	next := s.Pack.Level(id)
	if next == nil {
		return false
	}

	if s.Level != nil && s.Level.Theme != "" {
		s.emit(Cue{Kind: CueThemeStop, Theme: s.Level.Theme})
	}
	if s.Active != nil {
		s.release()
	}
	if s.Direction != core.DirNone {
		s.emit(Cue{Kind: CueStepStop})
	}

	s.Level = next
	s.NextOffset = next.Centre()
	if entry != nil {
		s.NextOffset = *entry
	}
	s.Offset = s.NextOffset
	s.Direction = core.DirNone
	s.Progress = 0
	s.OutsideBounds = content.BoundNone
	s.ForceMapRender = true
	s.NeedRender = true

	s.Classes.RemoveContaining(themePrefix)
	if next.GroundTheme != "" {
		s.Classes.Add(themePrefix + next.GroundTheme)
	}
	if next.Theme != "" {
		s.emit(Cue{Kind: CueThemeStart, Theme: next.Theme})
	}
	for _, e := range next.Entities {
		e.ResetRuntime()
	}
	s.record(EventLevel, next.ID)
	return true
}

// Engaged reports whether a conversation is active.
func (s *State) Engaged() bool {
	return s.Active != nil
}

// release drops the engaged entity without the end-of-conversation bookkeeping.
func (s *State) release() {
	s.Active = nil
	s.Cursor.Reset()
	s.Classes.RemoveTag(ClassChat)
}

func (s *State) emit(c Cue) {
	s.cues = append(s.cues, c)
}

func (s *State) record(kind EventKind, subject string) {
	s.events = append(s.events, Event{Tick: s.Tick, Kind: kind, Subject: subject})
}

func (s *State) drainCues() []Cue {
	out := s.cues
	s.cues = nil
	return out
}

func (s *State) drainEvents() []Event {
	out := s.events
	s.events = nil
	return out
}

// Globals implements content.World.
func (s *State) Globals() content.State {
	return s.globals
}

// HasItem implements content.World.
func (s *State) HasItem(name string) bool {
	return s.Inventory.Has(name)
}

// GrantItem implements content.World. Already-held names are a no-op.
func (s *State) GrantItem(item content.Item) bool {
	if !s.Inventory.Add(item) {
		return false
	}
	s.InventoryChanged = true
	s.NeedRender = true
	s.emit(Cue{Kind: CueReward})
	s.record(EventReward, item.Name)
	return true
}

// SwitchLevel implements content.World.
func (s *State) SwitchLevel(id string) bool {
	return s.SetLevel(id, nil)
}

// Finish implements content.World.
func (s *State) Finish() {
	if s.Finished {
		return
	}
	s.Finished = true
	s.NeedRender = true
	s.record(EventFinish, s.Level.ID)
}

var _ content.World = (*State)(nil)
