package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted presets in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset validates a preset name. An empty name yields "" with no error,
// meaning the configured timing is kept as is.
func ParsePreset(name string) (DifficultyPreset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
}

// BaseIntervalForPreset returns the level-1 fall interval for a preset.
func BaseIntervalForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.7
	case DifficultyHard:
		return 0.3
	default:
		return 0.5
	}
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// Only the starting speed changes; levels still come from cleared lines.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Timing.BaseInterval = BaseIntervalForPreset(preset)
	if cfg.Timing.MinInterval > cfg.Timing.BaseInterval {
		cfg.Timing.MinInterval = cfg.Timing.BaseInterval
	}
}
