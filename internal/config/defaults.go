package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// DefaultEngineConfig returns the default engine configuration.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Loop: LoopConfig{
			TickRate: 60,
		},
		Movement: MovementConfig{
			WalkStep:      6,
			RunMultiplier: 3,
			DebugStep:     20,
		},
		Input: InputConfig{
			HoldTimeout: 500 * time.Millisecond,
		},
		Audio: AudioConfig{
			Normal:     1.0,
			Attenuated: 0.5,
			Bell:       true,
		},
	}
}
