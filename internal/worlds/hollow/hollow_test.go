package hollow

import (
	"testing"
	"time"

	"github.com/vovakirdan/boxworld/internal/core"
	"github.com/vovakirdan/boxworld/internal/engine"
	"github.com/vovakirdan/boxworld/internal/registry"
	"github.com/vovakirdan/boxworld/internal/script"
)

func openPack(t *testing.T) (*engine.Engine, *script.VM) {
	t.Helper()
	vm, err := script.New(nil)
	if err != nil {
		t.Fatalf("script.New() error: %v", err)
	}
	t.Cleanup(vm.Close)

	pack, err := registry.Open(ID, vm)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	e, err := engine.New(pack, engine.DefaultConfig(), engine.Hooks{})
	if err != nil {
		t.Fatalf("engine.New() error: %v", err)
	}
	vm.BindGlobals(e.State().Globals())
	return e, vm
}

func TestPackLoads(t *testing.T) {
	e, _ := openPack(t)
	s := e.State()

	if s.Pack.ID != ID || s.Level.ID != "village" {
		t.Fatalf("pack %q starts at %q", s.Pack.ID, s.Level.ID)
	}
	want := []string{"village", "woods", "shrine"}
	for i, lvl := range s.Pack.Levels {
		if lvl.ID != want[i] {
			t.Errorf("level %d = %q, want %q", i, lvl.ID, want[i])
		}
	}
	if got := s.Pack.Level("woods").Size(); got != 22 {
		t.Errorf("woods size = %d, want 22", got)
	}
}

func TestOpenIsFresh(t *testing.T) {
	a, _ := Open(nil)
	if a != nil {
		t.Fatal("pack with Lua content loaded without a compiler")
	}

	vm, _ := script.New(nil)
	defer vm.Close()
	p1, err := Open(vm)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	p2, _ := Open(vm)
	if p1.Levels[0].Entities[0] == p2.Levels[0].Entities[0] {
		t.Error("packs share entity pointers")
	}
}

func TestElderQuest(t *testing.T) {
	e, _ := openPack(t)
	action := core.InputFrame{Action: true}
	idle := core.InputFrame{}
	up := core.InputFrame{Held: core.DirUp}

	// Walk up one tile; the Elder is then adjacent.
	for i := 0; i < 20 && e.State().Offset != (core.Coord{X: 5, Y: 4}); i++ {
		e.Tick(up)
	}
	e.Tick(idle)
	e.Tick(action)

	s := e.State()
	if s.Active == nil || s.Active.Name != "Elder" {
		t.Fatalf("expected conversation with Elder, got %+v", s.Active)
	}
	if len(s.Cursor.Choices) != 2 {
		t.Fatalf("expected 2 choices, got %d", len(s.Cursor.Choices))
	}

	e.Tick(action) // accept
	if !s.Inventory.Has("Lantern") {
		t.Error("lantern not granted")
	}
	if !s.Globals().Bool("quest") {
		t.Error("quest global not set")
	}
	if !s.Active.State.Bool("asked") {
		t.Error("elder state not updated")
	}

	e.Tick(action) // dismiss response
	if s.Active == nil || s.Cursor.Text != "The shrine lies north of the woods." {
		t.Errorf("expected follow-up line, got %q", s.Cursor.Text)
	}
	e.Tick(action)
	if s.Engaged() {
		t.Error("conversation should have ended")
	}
}

func TestPlaysWithLoop(t *testing.T) {
	e, _ := openPack(t)
	start := time.Unix(0, 0)
	ticked := 0
	for i := 0; i < 120; i++ {
		if e.Advance(start.Add(time.Duration(i)*time.Millisecond*10), core.InputFrame{}) {
			ticked++
		}
	}
	if ticked == 0 || e.State().Tick != uint64(ticked) {
		t.Errorf("ticked %d, state tick %d", ticked, e.State().Tick)
	}
}
