package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/boxworld/internal/config"
	"github.com/vovakirdan/boxworld/internal/content"
	"github.com/vovakirdan/boxworld/internal/engine"
	"github.com/vovakirdan/boxworld/internal/levels"
	"github.com/vovakirdan/boxworld/internal/registry"
	"github.com/vovakirdan/boxworld/internal/script"
	"github.com/vovakirdan/boxworld/internal/storage"
)

// SessionConfig describes one player's session.
type SessionConfig struct {
	// PackID selects a registered pack. Ignored when Dir is set.
	PackID string
	// Dir loads the pack from a content directory on disk.
	Dir string
	// ID names the session in the journal. Generated when empty.
	ID string

	Engine config.EngineConfig
	Store  *storage.Store // nil disables the journal
	Logger *log.Logger    // nil discards
	Bell   io.Writer      // receives bell characters; nil is silent
}

// Session owns everything a single player needs: a private Lua VM, a fresh
// copy of the pack and the engine over it.
type Session struct {
	ID     string
	Pack   *content.Pack
	Engine *engine.Engine
	Audio  *CueSink

	vm     *script.VM
	frames *frameBuffer
	store  *storage.Store
	logger *log.Logger
}

// OpenPack loads a pack from dir when given, otherwise from the registry.
func OpenPack(packID, dir string, c levels.Compiler) (*content.Pack, error) {
	if dir != "" {
		return levels.NewLoader(dir, c).LoadPack()
	}
	return registry.Open(packID, c)
}

// NewSession builds a ready-to-run session.
func NewSession(cfg SessionConfig) (*Session, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	id := cfg.ID
	if id == "" {
		id = fmt.Sprintf("local-%d", time.Now().UnixNano())
	}

	vm, err := script.New(logger.WithPrefix("lua"))
	if err != nil {
		return nil, err
	}

	pack, err := OpenPack(cfg.PackID, cfg.Dir, vm)
	if err != nil {
		vm.Close()
		return nil, err
	}

	s := &Session{
		ID:     id,
		Pack:   pack,
		Audio:  NewCueSink(cfg.Engine.Audio, cfg.Bell, logger),
		vm:     vm,
		frames: &frameBuffer{},
		store:  cfg.Store,
		logger: logger,
	}

	eng, err := engine.New(pack, cfg.Engine.Engine(), engine.Hooks{
		Renderer: s.frames,
		Audio:    s.Audio,
		Journal:  s.record,
		Logger:   logger,
	})
	if err != nil {
		vm.Close()
		return nil, err
	}
	vm.BindGlobals(eng.State().Globals())
	s.Engine = eng

	logger.Info("session started", "session", id, "pack", pack.ID, "level", eng.State().Level.ID)
	return s, nil
}

// record appends an engine event to the journal.
func (s *Session) record(ev engine.Event) {
	if s.store == nil {
		return
	}
	if _, err := s.store.Record(s.Pack.ID, s.ID, ev); err != nil {
		s.logger.Warn("could not record journal event", "error", err)
	}
}

// Frame returns the most recent frame, building one if the engine has not
// rendered yet.
func (s *Session) Frame() engine.Frame {
	if !s.frames.have {
		return s.Engine.Frame()
	}
	return s.frames.frame
}

// Close releases the Lua VM.
func (s *Session) Close() {
	s.vm.Close()
	s.logger.Info("session closed", "session", s.ID, "ticks", s.Engine.State().Tick)
}
