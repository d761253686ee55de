package tetris

// Grid is the playfield: Height rows of Width cells. Dimensions are fixed
// at creation and every row always holds exactly Width cells.
type Grid struct {
	w, h int
	rows [][]Kind
}

// NewGrid creates an empty grid.
func NewGrid(width, height int) *Grid {
	g := &Grid{w: width, h: height, rows: make([][]Kind, height)}
	for y := range g.rows {
		g.rows[y] = make([]Kind, width)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// inBounds reports whether (x, y) is a cell of the grid.
func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the cell at (x, y). Out-of-bounds positions read as Empty.
func (g *Grid) At(x, y int) Kind {
	if !g.inBounds(x, y) {
		return Empty
	}
	return g.rows[y][x]
}

// Set stores k at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, k Kind) {
	if !g.inBounds(x, y) {
		return
	}
	g.rows[y][x] = k
}

// RowFull reports whether every cell of row y is occupied.
func (g *Grid) RowFull(y int) bool {
	if y < 0 || y >= g.h {
		return false
	}
	for _, c := range g.rows[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// Fits reports whether p shifted by (dx, dy) lies inside the side walls,
// above the floor and on free cells. Cells above row 0 are only checked
// against the walls so pieces can poke out of the top while spawning.
func (g *Grid) Fits(p Piece, dx, dy int) bool {
	for _, b := range p.Shape.Blocks() {
		x := p.X + b.X + dx
		y := p.Y + b.Y + dy
		if x < 0 || x >= g.w || y >= g.h {
			return false
		}
		if y >= 0 && g.rows[y][x] != Empty {
			return false
		}
	}
	return true
}

// Place writes the piece's cells into the grid. Cells above row 0 are
// dropped.
func (g *Grid) Place(p Piece) {
	for _, b := range p.Blocks() {
		g.Set(b.X, b.Y, p.Kind)
	}
}

// ClearFullRows removes every full row, collapses the rows above it and
// refills the top with empty rows. Returns the number of rows removed.
func (g *Grid) ClearFullRows() int {
	write := g.h - 1
	for read := g.h - 1; read >= 0; read-- {
		if g.RowFull(read) {
			continue
		}
		g.rows[write] = g.rows[read]
		write--
	}
	cleared := write + 1
	for y := write; y >= 0; y-- {
		g.rows[y] = make([]Kind, g.w)
	}
	return cleared
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{w: g.w, h: g.h, rows: g.Rows()}
	return c
}

// Rows returns a deep copy of the cells, row by row.
func (g *Grid) Rows() [][]Kind {
	rows := make([][]Kind, g.h)
	for y, row := range g.rows {
		rows[y] = make([]Kind, g.w)
		copy(rows[y], row)
	}
	return rows
}

// String renders the grid one row per line using piece letters.
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.w+1)*g.h)
	for y, row := range g.rows {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for _, c := range row {
			buf = append(buf, c.String()...)
		}
	}
	return string(buf)
}
