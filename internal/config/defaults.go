package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultTetrisYAML))
	copy(out, defaultTetrisYAML)
	return out
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			BaseInterval: 0.5,
			IntervalStep: 0.05,
			MinInterval:  0.05,
		},
		Scoring: ScoringConfig{
			LinesPerLevel: 10,
			LineScores:    []int{100, 300, 500, 800},
		},
		Display: DisplayConfig{
			TickRate: 60,
			Palette: map[string]string{
				"I": "cyan",
				"J": "blue",
				"L": "orange",
				"O": "yellow",
				"S": "green",
				"T": "magenta",
				"Z": "red",
			},
		},
	}
}
