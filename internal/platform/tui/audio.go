package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/boxworld/internal/config"
	"github.com/vovakirdan/boxworld/internal/engine"
)

// bell is the terminal bell control character.
const bell = "\a"

// CueSink is the terminal stand-in for an audio device. It tracks the
// ambient state a real mixer would hold and rings the bell on rewards.
type CueSink struct {
	cfg    config.AudioConfig
	out    io.Writer // nil disables the bell
	logger *log.Logger

	theme  string
	volume float64
	played int
}

// NewCueSink creates a sink. out receives bell characters.
func NewCueSink(cfg config.AudioConfig, out io.Writer, logger *log.Logger) *CueSink {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &CueSink{cfg: cfg, out: out, logger: logger, volume: cfg.Normal}
}

// Play implements engine.Audio.
func (s *CueSink) Play(c engine.Cue) {
	s.played++
	switch c.Kind {
	case engine.CueThemeStart:
		s.theme = c.Theme
	case engine.CueThemeStop:
		if s.theme == c.Theme {
			s.theme = ""
		}
	case engine.CueAmbient:
		s.volume = s.cfg.Normal
		if c.Volume == engine.VolumeAttenuated {
			s.volume = s.cfg.Attenuated
		}
	case engine.CueReward:
		if s.cfg.Bell && s.out != nil {
			//nolint:errcheck // Best-effort bell
			io.WriteString(s.out, bell)
		}
	}
	s.logger.Debug("cue", "cue", c.String(), "theme", s.theme, "volume", s.volume)
}

// Theme returns the ambient theme currently playing.
func (s *CueSink) Theme() string {
	return s.theme
}

// Volume returns the current ambient volume.
func (s *CueSink) Volume() float64 {
	return s.volume
}
