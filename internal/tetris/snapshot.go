package tetris

// Snapshot is a read-only copy of the engine state for renderers and tests.
// Mutating it does not affect the engine.
type Snapshot struct {
	Width   int
	Height  int
	Grid    [][]Kind
	Current Piece
	Next    Piece

	Score int
	Level int
	Lines int

	FallInterval float64
	FallTimer    float64

	Status Status
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Width:        e.grid.Width(),
		Height:       e.grid.Height(),
		Grid:         e.grid.Rows(),
		Current:      e.current,
		Next:         e.next,
		Score:        e.score,
		Level:        e.level,
		Lines:        e.lines,
		FallInterval: e.interval,
		FallTimer:    e.timer,
		Status:       e.Status(),
	}
}

// Grid returns a copy of the playfield.
func (e *Engine) Grid() *Grid { return e.grid.Clone() }

// Current returns the falling piece.
func (e *Engine) Current() Piece { return e.current }

// Next returns the piece that spawns after the current one locks.
func (e *Engine) Next() Piece { return e.next }

// Score returns the points earned so far.
func (e *Engine) Score() int { return e.score }

// Level returns the current level, starting at 1.
func (e *Engine) Level() int { return e.level }

// Lines returns the total number of cleared lines.
func (e *Engine) Lines() int { return e.lines }

// FallInterval returns the seconds per row at the current level.
func (e *Engine) FallInterval() float64 { return e.interval }

// FallTimer returns the seconds accumulated toward the next fall.
func (e *Engine) FallTimer() float64 { return e.timer }

// Rules returns the rules the engine was created with.
func (e *Engine) Rules() Rules { return e.rules }

// Running reports whether the game accepts commands.
func (e *Engine) Running() bool { return e.active() }

// Paused reports whether the game is paused.
func (e *Engine) Paused() bool { return e.paused }

// GameOver reports whether the game has ended.
func (e *Engine) GameOver() bool { return e.gameOver }

// Status returns the state machine position.
func (e *Engine) Status() Status {
	switch {
	case e.gameOver:
		return StatusGameOver
	case e.paused:
		return StatusPaused
	default:
		return StatusRunning
	}
}

// CanMove reports whether the current piece fits shifted by (dx, dy).
func (e *Engine) CanMove(dx, dy int) bool {
	return e.grid.Fits(e.current, dx, dy)
}
