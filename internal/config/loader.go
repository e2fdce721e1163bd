package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.orbit/configs/orbit.yaml -> ./configs/orbit.yaml -> embedded default
//
// Files are decoded on top of DefaultConfig, so a file only has to name
// the values it changes. The result is validated.
func Load(customPath string) (GameConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("orbit.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "orbit.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the default configuration.
// Lists and the caption table replace the defaults when present; an
// explicit empty captions map removes every caption.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultConfig()
	// yaml.v3 merges into a non-nil map, so start captions empty.
	cfg.Scenario.Captions = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	if cfg.Scenario.Captions == nil {
		cfg.Scenario.Captions = DefaultConfig().Scenario.Captions
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".orbit", "configs", filename)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the spawn table based on a difficulty preset.
// Easy stretches every delay by half, hard halves it, and fixed keeps the
// first delay for the whole game. Each preset keeps delays non-increasing.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	steps := cfg.Scenario.SpawnDelays
	if len(steps) == 0 {
		return
	}
	scaled := make([]SpawnStep, len(steps))
	copy(scaled, steps)

	switch preset {
	case DifficultyEasy:
		for i := range scaled {
			scaled[i].Delay = int(math.Ceil(float64(scaled[i].Delay) * 1.5))
		}
	case DifficultyHard:
		for i := range scaled {
			scaled[i].Delay = max(1, scaled[i].Delay/2)
		}
	case DifficultyFixed:
		scaled = scaled[:1]
	}
	cfg.Scenario.SpawnDelays = scaled
}
