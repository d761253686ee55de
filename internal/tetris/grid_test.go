package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRow occupies every cell of row y except the listed columns.
func fillRow(g *Grid, y int, k Kind, gaps ...int) {
	for x := range g.Width() {
		g.Set(x, y, k)
	}
	for _, x := range gaps {
		g.Set(x, y, Empty)
	}
}

// countFilled returns the number of occupied cells.
func countFilled(g *Grid) int {
	n := 0
	for y := range g.Height() {
		for x := range g.Width() {
			if g.At(x, y) != Empty {
				n++
			}
		}
	}
	return n
}

func TestNewGridIsEmpty(t *testing.T) {
	g := NewGrid(10, 20)

	assert.Equal(t, 10, g.Width())
	assert.Equal(t, 20, g.Height())
	assert.Equal(t, 0, countFilled(g))
	for _, row := range g.Rows() {
		assert.Len(t, row, 10)
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(10, 20)

	// Should not panic
	g.Set(-1, 0, PieceI)
	g.Set(10, 0, PieceI)
	g.Set(0, -1, PieceI)
	g.Set(0, 20, PieceI)

	assert.Equal(t, 0, countFilled(g))
	assert.Equal(t, Empty, g.At(-1, 0))
	assert.Equal(t, Empty, g.At(0, 20))
	assert.False(t, g.RowFull(-1))
	assert.False(t, g.RowFull(20))
}

func TestGridFits(t *testing.T) {
	// O piece sits on columns 4-5, rows 0-1.
	// A locked cell at (5, 10).
	tests := []struct {
		name     string
		y        int
		dx, dy   int
		expected bool
	}{
		{name: "spawn position", expected: true},
		{name: "against left wall", dx: -4, expected: true},
		{name: "through left wall", dx: -5, expected: false},
		{name: "against right wall", dx: 4, expected: true},
		{name: "through right wall", dx: 5, expected: false},
		{name: "on the floor", dy: 18, expected: true},
		{name: "through the floor", dy: 19, expected: false},
		{name: "above locked cell", dy: 8, expected: true},
		{name: "onto locked cell", dy: 9, expected: false},
		{name: "partly above the grid", y: -1, expected: true},
		{name: "entirely above the grid", y: -5, expected: true},
		{name: "above the grid through left wall", y: -5, dx: -5, expected: false},
		{name: "above the grid through right wall", y: -5, dx: 5, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(10, 20)
			g.Set(5, 10, PieceT)

			p := Piece{Kind: PieceO, Shape: ShapeOf(PieceO), X: 4, Y: tc.y}
			assert.Equal(t, tc.expected, g.Fits(p, tc.dx, tc.dy))
		})
	}
}

func TestGridFitsIgnoresShapeHoles(t *testing.T) {
	g := NewGrid(10, 20)
	// T spawn shape has free corners on its top row.
	g.Set(4, 0, PieceZ)
	g.Set(6, 0, PieceZ)

	p := Piece{Kind: PieceT, Shape: ShapeOf(PieceT), X: 4, Y: 0}
	assert.True(t, g.Fits(p, 0, 0))

	g.Set(5, 0, PieceZ)
	assert.False(t, g.Fits(p, 0, 0))
}

func TestGridPlaceDropsCellsAboveTop(t *testing.T) {
	g := NewGrid(10, 20)
	p := Piece{Kind: PieceO, Shape: ShapeOf(PieceO), X: 0, Y: -1}

	g.Place(p)

	assert.Equal(t, 2, countFilled(g))
	assert.Equal(t, PieceO, g.At(0, 0))
	assert.Equal(t, PieceO, g.At(1, 0))
}

func TestClearFullRows(t *testing.T) {
	t.Run("no full rows", func(t *testing.T) {
		g := NewGrid(10, 20)
		fillRow(g, 19, PieceZ, 3)

		assert.Equal(t, 0, g.ClearFullRows())
		assert.Equal(t, 9, countFilled(g))
	})

	t.Run("single row collapses rows above", func(t *testing.T) {
		g := NewGrid(10, 20)
		fillRow(g, 19, PieceZ)
		g.Set(2, 18, PieceT)
		g.Set(7, 0, PieceI)

		require.Equal(t, 1, g.ClearFullRows())
		assert.Equal(t, PieceT, g.At(2, 19))
		assert.Equal(t, PieceI, g.At(7, 1))
		assert.Equal(t, 2, countFilled(g))
		for x := range 10 {
			assert.Equal(t, Empty, g.At(x, 0), "row 0 must be empty")
		}
	})

	t.Run("separated rows cascade correctly", func(t *testing.T) {
		g := NewGrid(10, 20)
		fillRow(g, 19, PieceZ)
		g.Set(1, 18, PieceJ)
		fillRow(g, 17, PieceS)
		g.Set(8, 16, PieceL)

		require.Equal(t, 2, g.ClearFullRows())
		assert.Equal(t, PieceJ, g.At(1, 19))
		assert.Equal(t, PieceL, g.At(8, 18))
		assert.Equal(t, 2, countFilled(g))
	})

	t.Run("four rows", func(t *testing.T) {
		g := NewGrid(10, 20)
		for y := 16; y < 20; y++ {
			fillRow(g, y, PieceI)
		}
		g.Set(0, 15, PieceO)

		require.Equal(t, 4, g.ClearFullRows())
		assert.Equal(t, PieceO, g.At(0, 19))
		assert.Equal(t, 1, countFilled(g))
	})

	t.Run("every row full", func(t *testing.T) {
		g := NewGrid(4, 3)
		for y := range 3 {
			fillRow(g, y, PieceT)
		}

		assert.Equal(t, 3, g.ClearFullRows())
		assert.Equal(t, 0, countFilled(g))
		assert.Len(t, g.Rows(), 3)
	})

	t.Run("rows stay independent after collapse", func(t *testing.T) {
		g := NewGrid(10, 20)
		fillRow(g, 19, PieceZ)
		g.ClearFullRows()

		g.Set(0, 0, PieceI)
		assert.Equal(t, 1, countFilled(g))
	})
}

func TestGridCloneIsDeep(t *testing.T) {
	g := NewGrid(10, 20)
	g.Set(3, 3, PieceS)

	c := g.Clone()
	c.Set(4, 4, PieceZ)
	rows := g.Rows()
	rows[3][3] = Empty

	assert.Equal(t, PieceS, g.At(3, 3))
	assert.Equal(t, Empty, g.At(4, 4))
	assert.Equal(t, PieceS, c.At(3, 3))
}
