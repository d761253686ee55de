// Package tetris implements the falling-block game engine: piece
// generation, collision checks, rotation, locking, line clears, scoring and
// the time-based fall. It has no rendering, input or I/O; a driver loop calls
// the commands and Tick once per frame and reads the state back.
package tetris

import "fmt"

// Randomizer picks piece indices. *math/rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// Status is the engine's state machine position.
type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusGameOver
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Engine owns the complete game state. It is not safe for concurrent use;
// one loop drives it. Restarting means constructing a new Engine.
type Engine struct {
	rules Rules
	rng   Randomizer

	grid    *Grid
	current Piece
	next    Piece

	score int
	level int
	lines int

	interval float64 // Seconds per row at the current level
	timer    float64 // Seconds accumulated toward the next fall

	gameOver bool
	paused   bool
}

// New creates a running game with an empty grid and two fresh pieces.
func New(rules Rules, rng Randomizer) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("tetris: nil randomizer: %w", ErrInvalidRules)
	}

	e := &Engine{
		rules: rules,
		rng:   rng,
		grid:  NewGrid(rules.Width, rules.Height),
		level: 1,
	}
	e.interval = rules.IntervalFor(e.level)
	e.current = e.spawn()
	e.next = e.spawn()
	e.gameOver = !e.grid.Fits(e.current, 0, 0)
	return e, nil
}

// spawn picks a piece uniformly from the catalog and centers it on row 0.
func (e *Engine) spawn() Piece {
	k := kinds[e.rng.Intn(len(kinds))]
	s := catalog[k]
	return Piece{
		Kind:  k,
		Shape: s,
		X:     e.rules.Width/2 - s.Width()/2,
		Y:     0,
	}
}

// active reports whether commands and time steps take effect.
func (e *Engine) active() bool {
	return !e.gameOver && !e.paused
}

// MoveLeft shifts the current piece one column left if it fits.
func (e *Engine) MoveLeft() { e.shift(-1, 0) }

// MoveRight shifts the current piece one column right if it fits.
func (e *Engine) MoveRight() { e.shift(1, 0) }

// SoftDrop moves the current piece one row down if it fits.
// A blocked soft drop does not lock; the fall timer does that.
func (e *Engine) SoftDrop() { e.shift(0, 1) }

func (e *Engine) shift(dx, dy int) bool {
	if !e.active() || !e.grid.Fits(e.current, dx, dy) {
		return false
	}
	e.current.X += dx
	e.current.Y += dy
	return true
}

// Rotate turns the current piece clockwise in place. There are no wall
// kicks: if the rotated shape does not fit at the same anchor the piece is
// left as it was.
func (e *Engine) Rotate() {
	if !e.active() {
		return
	}
	rotated := e.current
	rotated.Shape = e.current.Shape.Rotated()
	if e.grid.Fits(rotated, 0, 0) {
		e.current = rotated
	}
}

// HardDrop drops the current piece to the lowest row it fits in and locks
// it immediately.
func (e *Engine) HardDrop() {
	if !e.active() {
		return
	}
	// The floor check in Fits bounds this loop by the grid height.
	for e.grid.Fits(e.current, 0, 1) {
		e.current.Y++
	}
	e.lock()
}

// TogglePause switches between running and paused. It has no effect once
// the game is over.
func (e *Engine) TogglePause() {
	if e.gameOver {
		return
	}
	e.paused = !e.paused
}

// Tick advances game time by dt seconds. When the accumulated time reaches
// the fall interval the timer resets to zero and the piece falls one row,
// or locks if it cannot. A single call never moves the piece more than one
// row, however large dt is.
func (e *Engine) Tick(dt float64) {
	if !e.active() {
		return
	}
	if dt > 0 {
		e.timer += dt
	}
	if e.timer < e.interval {
		return
	}
	e.timer = 0
	if !e.shift(0, 1) {
		e.lock()
	}
}

// lock commits the current piece to the grid, clears lines, promotes the
// next piece and checks whether it can enter the board.
func (e *Engine) lock() {
	e.grid.Place(e.current)
	e.clearLines()

	e.current = e.next
	e.next = e.spawn()

	if !e.grid.Fits(e.current, 0, 0) {
		e.gameOver = true
	}
}

// clearLines removes full rows and updates score, level and fall interval.
func (e *Engine) clearLines() {
	n := e.grid.ClearFullRows()
	if n > 0 {
		e.lines += n
		e.score += e.rules.LineScore(n, e.level)
	}
	e.level = e.rules.LevelFor(e.lines)
	e.interval = e.rules.IntervalFor(e.level)
}
