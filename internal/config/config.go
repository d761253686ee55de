// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris binary.
package config

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// TetrisConfig contains all configuration for a game of Tetris.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the playfield size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the gravity curve.
type TimingConfig struct {
	BaseInterval float64 `yaml:"base_interval"` // Seconds per row at level 1
	IntervalStep float64 `yaml:"interval_step"` // Seconds removed per level
	MinInterval  float64 `yaml:"min_interval"`  // Fastest fall speed
}

// ScoringConfig defines line rewards and level progression.
type ScoringConfig struct {
	LinesPerLevel int   `yaml:"lines_per_level"`
	LineScores    []int `yaml:"line_scores"` // Points for 1, 2, 3 and 4 lines
}

// DisplayConfig defines frame rate and piece colors.
type DisplayConfig struct {
	TickRate int               `yaml:"tick_rate"`
	Palette  map[string]string `yaml:"palette"` // Piece letter -> color name
}

// Validate checks that the configuration describes a playable game.
func (c TetrisConfig) Validate() error {
	if c.Display.TickRate < 1 || c.Display.TickRate > 240 {
		return fmt.Errorf("config: tick_rate %d out of range [1, 240]", c.Display.TickRate)
	}
	if len(c.Scoring.LineScores) != 4 {
		return fmt.Errorf("config: line_scores needs 4 entries, got %d", len(c.Scoring.LineScores))
	}
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	names := make([]string, 0, len(c.Display.Palette))
	for name := range c.Display.Palette {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := kindByName(name); !ok {
			return fmt.Errorf("config: palette has unknown piece %q", name)
		}
		if _, ok := core.ParseColor(c.Display.Palette[name]); !ok {
			return fmt.Errorf("config: palette color %q for piece %s is unknown", c.Display.Palette[name], name)
		}
	}
	return nil
}

// Rules converts the configuration into engine rules.
func (c TetrisConfig) Rules() tetris.Rules {
	r := tetris.Rules{
		Width:         c.Board.Width,
		Height:        c.Board.Height,
		BaseInterval:  c.Timing.BaseInterval,
		IntervalStep:  c.Timing.IntervalStep,
		MinInterval:   c.Timing.MinInterval,
		LinesPerLevel: c.Scoring.LinesPerLevel,
	}
	copy(r.LineScores[:], c.Scoring.LineScores)
	return r
}

// Palette resolves the configured color for every piece kind.
// Pieces missing from the config keep their default color.
func (c TetrisConfig) Palette() map[tetris.Kind]core.Color {
	palette := DefaultPalette()
	for name, colorName := range c.Display.Palette {
		kind, ok := kindByName(name)
		if !ok {
			continue
		}
		if color, ok := core.ParseColor(colorName); ok {
			palette[kind] = color
		}
	}
	return palette
}

// DefaultPalette returns the classic piece colors.
func DefaultPalette() map[tetris.Kind]core.Color {
	return map[tetris.Kind]core.Color{
		tetris.PieceI: core.ColorCyan,
		tetris.PieceJ: core.ColorBlue,
		tetris.PieceL: core.ColorOrange,
		tetris.PieceO: core.ColorYellow,
		tetris.PieceS: core.ColorGreen,
		tetris.PieceT: core.ColorMagenta,
		tetris.PieceZ: core.ColorRed,
	}
}

func kindByName(name string) (tetris.Kind, bool) {
	for _, k := range tetris.Kinds() {
		if k.String() == name {
			return k, true
		}
	}
	return tetris.Empty, false
}
