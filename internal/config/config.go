// Package config provides YAML-based engine configuration loading and the
// named pace presets for the boxworld front-ends.
package config

import (
	"time"

	"github.com/vovakirdan/boxworld/internal/engine"
)

// EngineConfig contains all configuration for a play session.
type EngineConfig struct {
	Loop     LoopConfig     `yaml:"loop"`
	Movement MovementConfig `yaml:"movement"`
	Input    InputConfig    `yaml:"input"`
	Audio    AudioConfig    `yaml:"audio"`
}

// LoopConfig defines the fixed-step loop.
type LoopConfig struct {
	TickRate int  `yaml:"tick_rate"`
	Debug    bool `yaml:"debug"`
}

// MovementConfig defines per-tick progress increments.
type MovementConfig struct {
	WalkStep      int `yaml:"walk_step"`
	RunMultiplier int `yaml:"run_multiplier"`
	DebugStep     int `yaml:"debug_step"`
}

// InputConfig defines terminal key handling.
type InputConfig struct {
	// HoldTimeout releases a direction when no key repeat arrives in time.
	// Terminals report presses, never releases.
	HoldTimeout time.Duration `yaml:"hold_timeout"`
}

// AudioConfig defines ambient volume levels.
type AudioConfig struct {
	Normal     float64 `yaml:"normal"`
	Attenuated float64 `yaml:"attenuated"`
	Bell       bool    `yaml:"bell"` // ring the terminal bell on rewards
}

// Engine converts the file configuration into engine tuning.
func (c EngineConfig) Engine() engine.Config {
	return engine.Config{
		TickRate:      c.Loop.TickRate,
		WalkStep:      c.Movement.WalkStep,
		RunMultiplier: c.Movement.RunMultiplier,
		DebugStep:     c.Movement.DebugStep,
		Debug:         c.Loop.Debug,
	}
}

// Pace represents a named movement speed.
type Pace string

const (
	PaceStroll Pace = "stroll"
	PaceNormal Pace = "normal"
	PaceBrisk  Pace = "brisk"
)

// WalkStepForPace returns the walk increment for a pace preset.
func WalkStepForPace(p Pace) int {
	switch p {
	case PaceStroll:
		return 4
	case PaceBrisk:
		return 9
	default:
		return 6
	}
}

// ParsePace validates a pace name. The empty string means normal.
func ParsePace(s string) (Pace, bool) {
	switch Pace(s) {
	case "", PaceNormal:
		return PaceNormal, true
	case PaceStroll, PaceBrisk:
		return Pace(s), true
	}
	return "", false
}

// ApplyPace modifies the config based on a pace preset.
func ApplyPace(cfg *EngineConfig, p Pace) {
	cfg.Movement.WalkStep = WalkStepForPace(p)
}
