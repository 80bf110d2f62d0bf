// Package engine is the deterministic tile-world simulation: movement,
// proximity and dialogue advanced once per fixed tick over an explicit State.
package engine

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/boxworld/internal/content"
	"github.com/vovakirdan/boxworld/internal/core"
	"github.com/vovakirdan/boxworld/internal/worldmap"
)

// Config holds the tunables that affect simulation.
type Config struct {
	TickRate      int
	WalkStep      int
	RunMultiplier int
	DebugStep     int
	Debug         bool
}

// DefaultConfig returns the stock tuning: 60 ticks per second, walking
// completes a step in 17 ticks.
func DefaultConfig() Config {
	return Config{
		TickRate:      60,
		WalkStep:      6,
		RunMultiplier: 3,
		DebugStep:     20,
	}
}

// Hooks are the external collaborators. Any of them may be nil.
type Hooks struct {
	Renderer Renderer
	Audio    Audio
	Journal  func(Event)
	Logger   *log.Logger
}

// Engine owns a State and runs the per-tick pipeline over it.
type Engine struct {
	cfg   Config
	state *State
	hooks Hooks
	log   *log.Logger
	loop  *Loop

	movement  Movement
	proximity Proximity
	dialogue  Dialogue

	window      []worldmap.Cell
	toggleDebug bool
}

// New creates an engine positioned at the pack's start level.
func New(pack *content.Pack, cfg Config, hooks Hooks) (*Engine, error) {
	if pack == nil {
		return nil, errors.New("engine: nil pack")
	}
	state := NewState(pack)
	if state == nil {
		return nil, fmt.Errorf("engine: start level %q not found", pack.StartLevel)
	}
	state.Debug = cfg.Debug

	logger := hooks.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	e := &Engine{
		cfg:   cfg,
		state: state,
		hooks: hooks,
		log:   logger,
		loop:  NewLoop(cfg.TickRate),
		movement: Movement{
			WalkStep:      cfg.WalkStep,
			RunMultiplier: cfg.RunMultiplier,
			DebugStep:     cfg.DebugStep,
		},
	}
	e.flush()
	return e, nil
}

// State exposes the engine state. Callers outside the tick must treat it as
// read-only.
func (e *Engine) State() *State {
	return e.state
}

// Loop returns the engine's pacing loop.
func (e *Engine) Loop() *Loop {
	return e.loop
}

// SetLevel switches level from outside the tick. Unknown ids return false.
func (e *Engine) SetLevel(id string) bool {
	if !e.state.SetLevel(id, nil) {
		return false
	}
	e.flush()
	return true
}

// AddEntity places an entity into a level at runtime. The entity starts with
// clean runtime flags. It returns false for unknown levels.
func (e *Engine) AddEntity(levelID string, ent *content.Entity) bool {
	lvl := e.state.Pack.Level(levelID)
	if lvl == nil || ent == nil {
		return false
	}
	ent.ResetRuntime()
	lvl.Entities = append(lvl.Entities, ent)
	if lvl == e.state.Level {
		e.state.ForceMapRender = true
	}
	return true
}

// ToggleDebug requests a debug mode flip. It is applied at the start of the
// next tick so state only changes inside the pipeline.
func (e *Engine) ToggleDebug() {
	e.toggleDebug = !e.toggleDebug
}

// Advance runs one tick if the loop says one is due at now.
func (e *Engine) Advance(now time.Time, in core.InputFrame) bool {
	if !e.loop.Ready(now) {
		return false
	}
	e.Tick(in)
	return true
}

// Tick runs exactly one simulation step with the given input snapshot.
func (e *Engine) Tick(in core.InputFrame) {
	s := e.state
	s.Tick++

	if e.toggleDebug {
		e.toggleDebug = false
		s.Debug = !s.Debug
		s.NeedRender = true
	}

	if !s.Finished {
		e.movement.Update(s, in)
		e.proximity.Update(s, in)
		e.dialogue.Update(s, in)
		e.crossEdge()
	}

	mapChanged := false
	if s.ForceMapRender || e.window == nil || s.NextOffset != s.Offset {
		s.Offset = s.NextOffset
		e.window = worldmap.Window(s.Offset, s.Level.Map, s.Level.Occupants())
		s.ForceMapRender = false
		mapChanged = true
		s.NeedRender = true
	}

	if s.NeedRender {
		if e.hooks.Renderer != nil {
			e.hooks.Renderer.Render(buildFrame(s, e.window, mapChanged, e.loop.FPS()))
		}
		s.NeedRender = false
		s.InventoryChanged = false
	}

	s.PrevHeld = in.Held
	e.flush()
}

// Window returns the last extracted window.
func (e *Engine) Window() []worldmap.Cell {
	return e.window
}

// Frame builds a frame from the current state without consuming any signal.
func (e *Engine) Frame() Frame {
	window := e.window
	if window == nil {
		window = worldmap.Window(e.state.NextOffset, e.state.Level.Map, e.state.Level.Occupants())
	}
	return buildFrame(e.state, window, false, e.loop.FPS())
}

// crossEdge follows a level neighbour when the last step reached an edge.
func (e *Engine) crossEdge() {
	s := e.state
	if s.OutsideBounds == content.BoundNone {
		return
	}
	nb, ok := s.Level.Neighbors[s.OutsideBounds]
	if !ok {
		return
	}
	from := s.Level.ID
	if !s.SetLevel(nb.Level, nb.Entry) {
		e.log.Warn("neighbour level not found", "from", from, "edge", string(s.OutsideBounds), "level", nb.Level)
		return
	}
	e.log.Debug("crossed level edge", "from", from, "to", nb.Level)
}

// flush hands queued cues and events to their collaborators.
func (e *Engine) flush() {
	for _, c := range e.state.drainCues() {
		if e.hooks.Audio != nil {
			e.hooks.Audio.Play(c)
		}
	}
	for _, ev := range e.state.drainEvents() {
		switch ev.Kind {
		case EventReward:
			e.log.Info("item granted", "item", ev.Subject, "tick", ev.Tick)
		case EventConversation:
			e.log.Debug("conversation ended", "entity", ev.Subject, "tick", ev.Tick)
		case EventLevel:
			e.log.Info("entered level", "level", ev.Subject, "tick", ev.Tick)
		case EventFinish:
			e.log.Info("world finished", "level", ev.Subject, "tick", ev.Tick)
		}
		if e.hooks.Journal != nil {
			e.hooks.Journal(ev)
		}
	}
}
