package tetris

import "strings"

// Kind identifies one of the seven pieces. It doubles as the color of a
// locked cell; Empty marks a free cell.
type Kind uint8

const (
	Empty Kind = iota
	PieceI
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceT
	PieceZ
)

// String returns the piece letter, or "." for Empty.
func (k Kind) String() string {
	switch k {
	case PieceI:
		return "I"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	case PieceO:
		return "O"
	case PieceS:
		return "S"
	case PieceT:
		return "T"
	case PieceZ:
		return "Z"
	default:
		return "."
	}
}

// Point is a cell position: X is the column, Y the row (0 at the top).
type Point struct {
	X, Y int
}

// Shape is an immutable occupancy matrix. The zero value is an empty 0x0
// shape.
type Shape struct {
	w, h  int
	cells []bool // Row-major, never written after construction
}

// newShape builds a shape from rows of '#' (filled) and '.' (free).
func newShape(rows ...string) Shape {
	s := Shape{w: len(rows[0]), h: len(rows)}
	s.cells = make([]bool, s.w*s.h)
	for y, row := range rows {
		for x, ch := range row {
			s.cells[y*s.w+x] = ch == '#'
		}
	}
	return s
}

// Width returns the number of columns.
func (s Shape) Width() int { return s.w }

// Height returns the number of rows.
func (s Shape) Height() int { return s.h }

// Filled reports whether the cell at (x, y) is occupied.
// Out-of-range positions are free.
func (s Shape) Filled(x, y int) bool {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return false
	}
	return s.cells[y*s.w+x]
}

// Blocks returns the offsets of the occupied cells, top to bottom.
func (s Shape) Blocks() []Point {
	blocks := make([]Point, 0, 4)
	for y := range s.h {
		for x := range s.w {
			if s.cells[y*s.w+x] {
				blocks = append(blocks, Point{X: x, Y: y})
			}
		}
	}
	return blocks
}

// Rotated returns a new shape turned 90 degrees clockwise: the rows are
// reversed and the result transposed. The receiver is left untouched.
func (s Shape) Rotated() Shape {
	r := Shape{w: s.h, h: s.w}
	r.cells = make([]bool, len(s.cells))
	for y := range r.h {
		for x := range r.w {
			r.cells[y*r.w+x] = s.Filled(y, s.h-1-x)
		}
	}
	return r
}

// Equal reports whether two shapes have the same dimensions and cells.
func (s Shape) Equal(o Shape) bool {
	if s.w != o.w || s.h != o.h {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the shape as rows of '#' and '.' joined by '/'.
func (s Shape) String() string {
	var sb strings.Builder
	for y := range s.h {
		if y > 0 {
			sb.WriteByte('/')
		}
		for x := range s.w {
			if s.Filled(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// maxShapeWidth is the width of the widest piece in any rotation (I).
const maxShapeWidth = 4

// kinds lists the catalog in generation order.
var kinds = [...]Kind{PieceI, PieceJ, PieceL, PieceO, PieceS, PieceT, PieceZ}

// catalog holds the spawn orientation of every piece.
var catalog = map[Kind]Shape{
	PieceI: newShape("####"),
	PieceJ: newShape("#..", "###"),
	PieceL: newShape("..#", "###"),
	PieceO: newShape("##", "##"),
	PieceS: newShape(".##", "##."),
	PieceT: newShape(".#.", "###"),
	PieceZ: newShape("##.", ".##"),
}

// Kinds returns the seven piece kinds in generation order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds[:])
	return out
}

// ShapeOf returns the spawn orientation of the given kind.
// Empty yields the zero shape.
func ShapeOf(k Kind) Shape {
	return catalog[k]
}

// Piece is a shape placed on the board. X and Y are the column and row of
// the shape's top-left corner.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
}

// Blocks returns the absolute board positions of the piece's cells.
func (p Piece) Blocks() []Point {
	blocks := p.Shape.Blocks()
	for i := range blocks {
		blocks[i].X += p.X
		blocks[i].Y += p.Y
	}
	return blocks
}
