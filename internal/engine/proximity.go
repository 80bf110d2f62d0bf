package engine

import "github.com/vovakirdan/boxworld/internal/core"

// Proximity recomputes the near/active flags of every entity in the level.
// Nearness is measured against the in-flight target offset.
type Proximity struct{}

// Update runs one tick of proximity tracking.
func (Proximity) Update(s *State, _ core.InputFrame) {
	for _, e := range s.Level.Entities {
		near := !e.Hidden && e.Location.Near(s.NextOffset, 1)
		active := e == s.Active

		if near != e.IsNear {
			e.IsNear = near
			if near {
				e.Classes.Add(ClassNear)
				s.ShowActionTip = true
			} else {
				e.Classes.RemoveTag(ClassNear)
			}
			s.NeedRender = true
		}
		if active != e.IsActive {
			e.IsActive = active
			if active {
				e.Classes.Add(ClassActive)
			} else {
				e.Classes.RemoveTag(ClassActive)
			}
			s.NeedRender = true
		}
	}
}
