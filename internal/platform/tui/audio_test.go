package tui

import (
	"bytes"
	"testing"

	"github.com/vovakirdan/boxworld/internal/config"
	"github.com/vovakirdan/boxworld/internal/engine"
)

func TestCueSinkAmbientState(t *testing.T) {
	cfg := config.DefaultEngineConfig().Audio
	sink := NewCueSink(cfg, nil, nil)

	sink.Play(engine.Cue{Kind: engine.CueThemeStart, Theme: "meadow"})
	if sink.Theme() != "meadow" {
		t.Errorf("theme = %q, want meadow", sink.Theme())
	}

	sink.Play(engine.Cue{Kind: engine.CueAmbient, Volume: engine.VolumeAttenuated})
	if sink.Volume() != cfg.Attenuated {
		t.Errorf("volume = %v, want %v", sink.Volume(), cfg.Attenuated)
	}
	sink.Play(engine.Cue{Kind: engine.CueAmbient, Volume: engine.VolumeNormal})
	if sink.Volume() != cfg.Normal {
		t.Errorf("volume = %v, want %v", sink.Volume(), cfg.Normal)
	}

	// Stopping a theme that is not playing leaves the current one alone.
	sink.Play(engine.Cue{Kind: engine.CueThemeStop, Theme: "cellar"})
	if sink.Theme() != "meadow" {
		t.Errorf("theme = %q after unrelated stop", sink.Theme())
	}
	sink.Play(engine.Cue{Kind: engine.CueThemeStop, Theme: "meadow"})
	if sink.Theme() != "" {
		t.Errorf("theme = %q after stop", sink.Theme())
	}
}

func TestCueSinkBell(t *testing.T) {
	var out bytes.Buffer
	cfg := config.DefaultEngineConfig().Audio

	sink := NewCueSink(cfg, &out, nil)
	sink.Play(engine.Cue{Kind: engine.CueText, Length: engine.TextShort})
	sink.Play(engine.Cue{Kind: engine.CueReward})
	if out.String() != bell {
		t.Errorf("output = %q, want one bell", out.String())
	}

	out.Reset()
	cfg.Bell = false
	NewCueSink(cfg, &out, nil).Play(engine.Cue{Kind: engine.CueReward})
	if out.Len() != 0 {
		t.Errorf("bell rang while disabled: %q", out.String())
	}
}
