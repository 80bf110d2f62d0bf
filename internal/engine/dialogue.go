package engine

import (
	"github.com/vovakirdan/boxworld/internal/content"
	"github.com/vovakirdan/boxworld/internal/core"
)

// Dialogue drives the conversation state machine:
// Inactive -> Line -> (Choice -> Response)? -> Line ... -> Inactive.
type Dialogue struct{}

// Update runs one tick of dialogue. The action pulse is used by at most one
// of selection, start and advance.
func (d Dialogue) Update(s *State, in core.InputFrame) {
	d.navigate(s, in)

	switch {
	case !in.Action:
	case s.Engaged() && s.Cursor.Highlight > -1 && len(s.Cursor.Choices) > 0:
		d.selectChoice(s)
	case !s.Engaged():
		d.start(s)
	default:
		d.advance(s)
	}

	if s.Engaged() && s.Cursor.Index >= 0 && !s.Cursor.ShowingResponse {
		s.Cursor.Text = s.Active.Dialogue[s.Cursor.Index].Text
	}

	if engaged := s.Engaged(); engaged != s.Zoomed {
		s.Zoomed = engaged
		s.NeedRender = true
		if engaged {
			s.Classes.Add(ClassZoomIn)
			s.emit(Cue{Kind: CueAmbient, Volume: VolumeAttenuated})
		} else {
			s.Classes.RemoveTag(ClassZoomIn)
			s.emit(Cue{Kind: CueAmbient, Volume: VolumeNormal})
		}
	}
}

// navigate moves the highlight on a fresh Up/Down press: either a press
// pulse or a held direction that differs from the previous tick's.
func (Dialogue) navigate(s *State, in core.InputFrame) {
	n := len(s.Cursor.Choices)
	if !s.Engaged() || n == 0 {
		return
	}
	dir := in.Pressed
	if dir == core.DirNone && in.Held != s.PrevHeld {
		dir = in.Held
	}
	switch dir {
	case core.DirUp:
		s.Cursor.Highlight = core.Clamp(s.Cursor.Highlight-1, 0, n-1)
	case core.DirDown:
		s.Cursor.Highlight = core.Clamp(s.Cursor.Highlight+1, 0, n-1)
	default:
		return
	}
	s.NeedRender = true
}

func (d Dialogue) selectChoice(s *State) {
	e := s.Active
	choice := s.Cursor.Choices[s.Cursor.Highlight]
	s.Cursor.Choices = nil
	s.Cursor.Highlight = -1
	s.NeedRender = true

	e.Classes.Add(choice.Class)
	if choice.Reward != nil {
		s.GrantItem(*choice.Reward)
	}
	resp := choice.Response
	if resp == nil {
		return
	}
	if resp.OnSelect != nil {
		resp.OnSelect.Apply(e.State, s)
		if s.Active != e {
			// The effect moved the session elsewhere.
			return
		}
	}
	s.Cursor.Text = resp.Text
	s.Cursor.ShowingResponse = true
	if resp.Reward != nil {
		s.GrantItem(*resp.Reward)
	}
	s.emit(TextCue(resp.Text))
}

// start engages the first near, interactive entity, preferring ones not yet
// talked to. It reports whether a conversation began.
func (d Dialogue) start(s *State) bool {
	var first, fresh *content.Entity
	for _, e := range s.Level.Entities {
		if !e.IsNear || !e.Interactive {
			continue
		}
		if first == nil {
			first = e
		}
		if fresh == nil && !e.HasInteracted {
			fresh = e
		}
	}
	e := fresh
	if e == nil {
		e = first
	}
	if e == nil || len(e.Dialogue) == 0 {
		return false
	}
	idx := content.NextAvailable(e.Dialogue, -1, e.State)
	if idx < 0 {
		return false
	}

	e.HasInteracted = true
	s.Active = e
	s.Classes.Add(ClassChat)
	d.enter(s, idx)
	return true
}

// advance moves to the next available line, or ends the conversation.
func (d Dialogue) advance(s *State) {
	s.Cursor.ShowingResponse = false
	next := content.NextAvailable(s.Active.Dialogue, s.Cursor.Index, s.Active.State)
	if next < 0 {
		d.end(s)
		return
	}
	d.enter(s, next)
}

func (Dialogue) enter(s *State, idx int) {
	e := s.Active
	node := e.Dialogue[idx]

	s.Cursor.Index = idx
	s.Cursor.Text = node.Text
	s.Cursor.ShowingResponse = false
	s.Cursor.Choices = node.Choices
	s.Cursor.Highlight = -1
	if len(node.Choices) > 0 {
		s.Cursor.Highlight = 0
	}
	s.NeedRender = true

	e.Classes.Add(node.Class)
	if node.Reward != nil {
		s.GrantItem(*node.Reward)
	}
	s.emit(TextCue(node.Text))
}

func (Dialogue) end(s *State) {
	e := s.Active
	for _, class := range e.DialogueClasses() {
		e.Classes.RemoveTag(class)
	}
	e.Classes.Add(ClassVisited)
	s.release()
	s.NeedRender = true
	s.record(EventConversation, e.Name)
}
