package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EngineFile is the configuration file name searched for.
const EngineFile = "engine.yaml"

// LoadEngine loads the engine configuration.
// Search order: customPath -> ~/.boxworld/configs/engine.yaml -> ./configs/engine.yaml -> embedded default.
// Files are decoded over the defaults, so partial files are allowed.
func LoadEngine(customPath string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, validate(cfg)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(EngineFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, validate(cfg)
			}
			cfg = DefaultEngineConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", EngineFile)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, validate(cfg)
		}
		cfg = DefaultEngineConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultEngineYAML, &cfg); err != nil {
		return DefaultEngineConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".boxworld", "configs", filename)
}

func validate(cfg EngineConfig) error {
	switch {
	case cfg.Loop.TickRate <= 0:
		return fmt.Errorf("config: tick_rate must be positive, got %d", cfg.Loop.TickRate)
	case cfg.Movement.WalkStep <= 0:
		return fmt.Errorf("config: walk_step must be positive, got %d", cfg.Movement.WalkStep)
	case cfg.Movement.RunMultiplier < 1:
		return fmt.Errorf("config: run_multiplier must be at least 1, got %d", cfg.Movement.RunMultiplier)
	case cfg.Input.HoldTimeout <= 0:
		return fmt.Errorf("config: hold_timeout must be positive, got %s", cfg.Input.HoldTimeout)
	}
	return nil
}
