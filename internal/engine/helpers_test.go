package engine

import (
	"testing"

	"github.com/vovakirdan/boxworld/internal/content"
	"github.com/vovakirdan/boxworld/internal/core"
	"github.com/vovakirdan/boxworld/internal/worldmap"
)

// room builds an 11x11 level whose foreground is drawn with '#' for walls,
// 'f' for fences and '.' for open floor. Missing rows are open.
func room(id string, rows []string, entities ...*content.Entity) *content.Level {
	fg := make(worldmap.Block, len(rows))
	for y, row := range rows {
		fg[y] = make([]string, len(row))
		for x, r := range row {
			switch r {
			case '#':
				fg[y][x] = "wall"
			case 'f':
				fg[y][x] = "fence-post"
			}
		}
	}
	for _, e := range entities {
		if e.State == nil {
			e.State = content.State{}
		}
	}
	return &content.Level{
		ID:       id,
		Name:     id,
		Map:      worldmap.AssembleBlock(nil, fg, nil),
		Entities: entities,
	}
}

func pack(levels ...*content.Level) *content.Pack {
	return &content.Pack{ID: "test", StartLevel: levels[0].ID, Levels: levels}
}

type recorder struct {
	frames []Frame
	cues   []Cue
	events []Event
}

func (r *recorder) Render(f Frame) { r.frames = append(r.frames, f) }
func (r *recorder) Play(c Cue)     { r.cues = append(r.cues, c) }

func (r *recorder) cueNames() []string {
	out := make([]string, len(r.cues))
	for i, c := range r.cues {
		out[i] = c.String()
	}
	return out
}

func (r *recorder) reset() {
	r.frames = nil
	r.cues = nil
	r.events = nil
}

func newEngine(t *testing.T, p *content.Pack) (*Engine, *recorder) {
	t.Helper()
	rec := &recorder{}
	e, err := New(p, DefaultConfig(), Hooks{
		Renderer: rec,
		Audio:    rec,
		Journal:  func(ev Event) { rec.events = append(rec.events, ev) },
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return e, rec
}

var (
	idle   = core.InputFrame{}
	action = core.InputFrame{Action: true}
	right  = core.InputFrame{Held: core.DirRight}
	up     = core.InputFrame{Held: core.DirUp}
	down   = core.InputFrame{Held: core.DirDown}
)

func ticks(e *Engine, n int, in core.InputFrame) {
	for i := 0; i < n; i++ {
		e.Tick(in)
	}
}

func item(name string) *content.Item {
	return &content.Item{ID: name, Name: name, Asset: name + ".png"}
}
