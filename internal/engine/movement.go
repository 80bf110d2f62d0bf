package engine

import (
	"github.com/vovakirdan/boxworld/internal/content"
	"github.com/vovakirdan/boxworld/internal/core"
)

// StepComplete is the progress a step must exceed before it commits.
const StepComplete = 100

// Movement advances the directional progress accumulator and commits steps.
type Movement struct {
	WalkStep      int
	RunMultiplier int
	DebugStep     int
}

// Step returns the per-tick progress increment.
func (m Movement) Step(run, debug bool) int {
	step := m.WalkStep
	if run {
		step *= m.RunMultiplier
	}
	if debug && step < m.DebugStep {
		step = m.DebugStep
	}
	return step
}

// Update runs one tick of movement.
func (m Movement) Update(s *State, in core.InputFrame) {
	if !in.HasDirection() {
		s.MovementBlocked = false
	}

	if s.Direction == core.DirNone {
		if !in.HasDirection() || s.MovementBlocked || s.Engaged() {
			return
		}
		s.Direction = in.Held
		s.emit(Cue{Kind: CueStepStart})
	}

	inc := s.Direction.Delta()
	if s.Progress == 0 && blocked(s, s.Offset.Add(inc)) {
		s.Direction = core.DirNone
		s.MovementBlocked = true
		s.NeedRender = true
		s.emit(Cue{Kind: CueStepStop})
		return
	}

	s.Progress += m.Step(in.Run, s.Debug)
	s.NeedRender = true
	if s.Progress <= StepComplete {
		return
	}

	// Overshoot is dropped, not carried into the next step.
	s.NextOffset = s.Offset.Add(inc)
	s.Progress = 0
	s.OutsideBounds = Bounds(s.NextOffset, s.Level.Size())
	if in.Held != s.Direction {
		s.Direction = core.DirNone
		s.emit(Cue{Kind: CueStepStop})
	}
}

// Bounds reports which edge of a square map of side n the offset touches or
// passes. Left wins over right, right over top, top over bottom.
func Bounds(c core.Coord, n int) content.Bound {
	switch {
	case c.X <= 0:
		return content.BoundLeft
	case c.X >= n-1:
		return content.BoundRight
	case c.Y <= 0:
		return content.BoundUp
	case c.Y >= n-1:
		return content.BoundDown
	}
	return content.BoundNone
}

func blocked(s *State, target core.Coord) bool {
	if s.Level.EntityAt(target) != nil {
		return true
	}
	return s.Level.Map.Blocked(target)
}
