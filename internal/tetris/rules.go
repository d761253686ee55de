package tetris

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRules is returned by New when the rules cannot describe a
// playable board.
var ErrInvalidRules = errors.New("invalid rules")

// Rules holds the board dimensions and the timing and scoring constants.
// Rules are fixed for the lifetime of an Engine.
type Rules struct {
	Width  int // Columns
	Height int // Rows

	BaseInterval float64 // Seconds per row at level 1
	IntervalStep float64 // Seconds removed from the interval per level
	MinInterval  float64 // Floor for the fall interval

	LinesPerLevel int    // Cleared lines needed per level
	LineScores    [4]int // Points for 1, 2, 3 and 4+ lines, multiplied by level
}

// DefaultRules returns the classic 10x20 board with the reference timing
// and scoring table.
func DefaultRules() Rules {
	return Rules{
		Width:         10,
		Height:        20,
		BaseInterval:  0.5,
		IntervalStep:  0.05,
		MinInterval:   0.05,
		LinesPerLevel: 10,
		LineScores:    [4]int{100, 300, 500, 800},
	}
}

// Validate reports whether the rules can drive a game.
func (r Rules) Validate() error {
	switch {
	case r.Width < maxShapeWidth:
		return fmt.Errorf("tetris: width %d is narrower than the widest piece (%d): %w",
			r.Width, maxShapeWidth, ErrInvalidRules)
	case r.Height < 2:
		return fmt.Errorf("tetris: height %d is too small: %w", r.Height, ErrInvalidRules)
	case r.BaseInterval <= 0 || r.MinInterval <= 0:
		return fmt.Errorf("tetris: fall intervals must be positive: %w", ErrInvalidRules)
	case r.MinInterval > r.BaseInterval:
		return fmt.Errorf("tetris: min interval %.3f exceeds base interval %.3f: %w",
			r.MinInterval, r.BaseInterval, ErrInvalidRules)
	case r.IntervalStep < 0:
		return fmt.Errorf("tetris: interval step must not be negative: %w", ErrInvalidRules)
	case r.LinesPerLevel < 1:
		return fmt.Errorf("tetris: lines per level must be at least 1: %w", ErrInvalidRules)
	}
	for i, s := range r.LineScores {
		if s < 0 {
			return fmt.Errorf("tetris: line score %d is negative: %w", i+1, ErrInvalidRules)
		}
	}
	return nil
}

// LevelFor returns the level reached after clearing the given number of lines.
func (r Rules) LevelFor(lines int) int {
	return 1 + lines/r.LinesPerLevel
}

// IntervalFor returns the seconds per row at the given level.
func (r Rules) IntervalFor(level int) float64 {
	return math.Max(r.MinInterval, r.BaseInterval-float64(level-1)*r.IntervalStep)
}

// LineScore returns the points awarded for clearing n lines at once.
// Four or more lines share the top tier.
func (r Rules) LineScore(n, level int) int {
	if n <= 0 {
		return 0
	}
	return r.LineScores[min(n, len(r.LineScores))-1] * level
}
