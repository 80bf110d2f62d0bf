package engine

import (
	"testing"

	"github.com/vovakirdan/boxworld/internal/content"
	"github.com/vovakirdan/boxworld/internal/core"
)

var wallRight = []string{
	"...........",
	"...........",
	"...........",
	"...........",
	"...........",
	"......#....",
}

func TestWallBlocksStep(t *testing.T) {
	e, rec := newEngine(t, pack(room("a", wallRight)))
	e.Tick(idle)
	rec.reset()

	e.Tick(right)
	s := e.State()
	if !s.MovementBlocked {
		t.Error("MovementBlocked = false, want true")
	}
	if s.Offset != core.C(5, 5) {
		t.Errorf("Offset = %v, want 5,5", s.Offset)
	}
	if s.Direction != core.DirNone {
		t.Errorf("Direction = %v, want none", s.Direction)
	}
	want := []string{"step:start", "step:stop"}
	if got := rec.cueNames(); !equalStrings(got, want) {
		t.Errorf("cues = %v, want %v", got, want)
	}
}

func TestCollisionNeverDoubleBlocks(t *testing.T) {
	e, rec := newEngine(t, pack(room("a", wallRight)))
	e.Tick(right)
	rec.reset()

	for i := 0; i < 50; i++ {
		e.Tick(right)
		s := e.State()
		if s.Offset != core.C(5, 5) || s.NextOffset != core.C(5, 5) || s.Progress != 0 {
			t.Fatalf("tick %d: moved while blocked: offset=%v next=%v progress=%d",
				i, s.Offset, s.NextOffset, s.Progress)
		}
		if !s.MovementBlocked {
			t.Fatalf("tick %d: block cleared while key held", i)
		}
	}
	if len(rec.cues) != 0 {
		t.Errorf("blocked key produced cues: %v", rec.cueNames())
	}

	e.Tick(idle)
	if e.State().MovementBlocked {
		t.Error("release did not clear MovementBlocked")
	}
}

func TestEntityBlocksStep(t *testing.T) {
	npc := &content.Entity{Name: "npc", Location: core.C(5, 4)}
	e, _ := newEngine(t, pack(room("a", nil, npc)))

	e.Tick(up)
	if !e.State().MovementBlocked {
		t.Error("entity did not block")
	}

	npc.Hidden = true
	e.Tick(idle)
	ticks(e, 17, up)
	if got := e.State().Offset; got != core.C(5, 4) {
		t.Errorf("hidden entity blocked: offset = %v", got)
	}
}

func TestStepCommits(t *testing.T) {
	e, _ := newEngine(t, pack(room("a", nil)))

	ticks(e, 16, right)
	s := e.State()
	if s.Offset != core.C(5, 5) || s.Progress != 96 {
		t.Fatalf("after 16 ticks: offset=%v progress=%d, want 5,5 and 96", s.Offset, s.Progress)
	}

	e.Tick(right)
	if s.Offset != core.C(6, 5) {
		t.Errorf("Offset = %v, want 6,5", s.Offset)
	}
	if s.Progress != 0 {
		t.Errorf("Progress = %d, want 0", s.Progress)
	}
	if s.Direction != core.DirRight {
		t.Errorf("Direction = %v, want right (key still held)", s.Direction)
	}

	e.Tick(right)
	if s.Progress != 6 {
		t.Errorf("Progress = %d after next tick, want 6", s.Progress)
	}
}

func TestProgressResetsEveryStep(t *testing.T) {
	e, _ := newEngine(t, pack(room("a", nil)))
	s := e.State()
	prev := s.Offset
	steps := 0
	for i := 0; i < 200 && steps < 4; i++ {
		e.Tick(down)
		if s.Offset == prev {
			continue
		}
		if s.Progress != 0 {
			t.Fatalf("progress %d after commit", s.Progress)
		}
		if d := s.Offset.Y - prev.Y; d != 1 || s.Offset.X != prev.X {
			t.Fatalf("step %v -> %v is not one unit down", prev, s.Offset)
		}
		prev = s.Offset
		steps++
	}
	if steps != 4 {
		t.Errorf("completed %d steps, want 4", steps)
	}
}

func TestDirectionChangeFinishesStepThenChecksCollision(t *testing.T) {
	rows := []string{
		"...........",
		"...........",
		"...........",
		"...........",
		"......#....",
		"...........",
	}
	e, _ := newEngine(t, pack(room("a", rows)))
	s := e.State()

	ticks(e, 16, right)
	// Up is pressed on the tick the step overshoots: the step still lands
	// to the right and movement stops instead of turning mid-step.
	e.Tick(up)
	if s.Offset != core.C(6, 5) {
		t.Fatalf("Offset = %v, want 6,5", s.Offset)
	}
	if s.Direction != core.DirNone {
		t.Fatalf("Direction = %v, want none after mismatched commit", s.Direction)
	}

	// The new direction starts from progress 0, so its collision check runs.
	e.Tick(up)
	if !s.MovementBlocked {
		t.Error("wall above 6,5 was not checked")
	}
	if s.Offset != core.C(6, 5) {
		t.Errorf("Offset = %v, want 6,5", s.Offset)
	}
}

func TestCollisionOnlyChecksAtStepStart(t *testing.T) {
	e, _ := newEngine(t, pack(room("a", nil)))
	s := e.State()
	ticks(e, 5, right)

	// A wall appearing mid-step is not seen until the next step starts.
	s.Level.Map[5][6].Foreground = "wall"
	ticks(e, 12, right)
	if s.Offset != core.C(6, 5) {
		t.Fatalf("Offset = %v, want 6,5", s.Offset)
	}
	s.Level.Map[5][7].Foreground = "stem"
	e.Tick(right)
	if !s.MovementBlocked {
		t.Error("next step start did not check collision")
	}
}

func TestProximityLeadsCollision(t *testing.T) {
	npc := &content.Entity{Name: "npc", Location: core.C(7, 4)}
	lvl := room("a", nil, npc)
	lvl.Map[5][7].Foreground = "wall"
	s := NewState(pack(lvl))

	// Mid-commit: the target is one tile right of the committed offset.
	s.Offset = core.C(5, 5)
	s.NextOffset = core.C(6, 5)

	Proximity{}.Update(s, idle)
	if !npc.IsNear {
		t.Error("proximity should be measured from the next offset")
	}

	s.Direction = core.DirRight
	Movement{WalkStep: 6, RunMultiplier: 3, DebugStep: 20}.Update(s, right)
	if s.MovementBlocked {
		t.Error("collision should be measured from the committed offset")
	}
	if s.Progress != 6 {
		t.Errorf("Progress = %d, want 6", s.Progress)
	}
}

func TestStepSize(t *testing.T) {
	m := Movement{WalkStep: 6, RunMultiplier: 3, DebugStep: 20}
	tests := []struct {
		run, debug bool
		want       int
	}{
		{false, false, 6},
		{true, false, 18},
		{false, true, 20},
		{true, true, 20},
	}
	for _, tt := range tests {
		if got := m.Step(tt.run, tt.debug); got != tt.want {
			t.Errorf("Step(run=%v, debug=%v) = %d, want %d", tt.run, tt.debug, got, tt.want)
		}
	}
}

func TestRunCommitsFaster(t *testing.T) {
	e, _ := newEngine(t, pack(room("a", nil)))
	ticks(e, 6, core.InputFrame{Held: core.DirLeft, Run: true})
	if got := e.State().Offset; got != core.C(4, 5) {
		t.Errorf("Offset = %v after 6 running ticks, want 4,5", got)
	}
}

func TestNoMovementWhileEngaged(t *testing.T) {
	npc := &content.Entity{
		Name:        "npc",
		Location:    core.C(5, 6),
		Interactive: true,
		Dialogue:    []content.DialogueNode{{Text: "hello"}},
	}
	e, _ := newEngine(t, pack(room("a", nil, npc)))
	e.Tick(action)
	ticks(e, 30, right)
	s := e.State()
	if s.Active != npc {
		t.Fatal("conversation did not start")
	}
	if s.Direction != core.DirNone || s.Offset != core.C(5, 5) {
		t.Errorf("moved while engaged: dir=%v offset=%v", s.Direction, s.Offset)
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		c    core.Coord
		want content.Bound
	}{
		{core.C(5, 5), content.BoundNone},
		{core.C(0, 5), content.BoundLeft},
		{core.C(-1, 0), content.BoundLeft},
		{core.C(10, 5), content.BoundRight},
		{core.C(10, 0), content.BoundRight},
		{core.C(5, 0), content.BoundUp},
		{core.C(5, 10), content.BoundDown},
		{core.C(5, 12), content.BoundDown},
	}
	for _, tt := range tests {
		if got := Bounds(tt.c, 11); got != tt.want {
			t.Errorf("Bounds(%v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
