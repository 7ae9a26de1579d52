package tetris

// Shape is a small occupancy grid; non-zero cells are solid.
type Shape [][]uint8

// Shape indices.
const (
	ShapeI = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
	shapeCount
)

// Shapes holds the spawn orientation of each tetromino.
var Shapes = [shapeCount]Shape{
	ShapeI: {{1, 1, 1, 1}},
	ShapeO: {{1, 1}, {1, 1}},
	ShapeT: {{0, 1, 0}, {1, 1, 1}},
	ShapeS: {{0, 1, 1}, {1, 1, 0}},
	ShapeZ: {{1, 1, 0}, {0, 1, 1}},
	ShapeJ: {{1, 0, 0}, {1, 1, 1}},
	ShapeL: {{0, 0, 1}, {1, 1, 1}},
}

// ShapeNames maps indices to letters for display.
var ShapeNames = [shapeCount]string{"I", "O", "T", "S", "Z", "J", "L"}

// Width returns the shape's column count.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the shape's row count.
func (s Shape) Height() int {
	return len(s)
}

// Rotate returns the shape turned 90° clockwise: transpose, then reverse
// each row. The receiver is left untouched.
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for r := range w {
		out[r] = make([]uint8, h)
		for c := range h {
			out[r][c] = s[c][r]
		}
		for i, j := 0, h-1; i < j; i, j = i+1, j-1 {
			out[r][i], out[r][j] = out[r][j], out[r][i]
		}
	}
	return out
}

// Piece is a shape placed on the board. Color is a 1-based color id.
type Piece struct {
	Shape Shape
	Kind  int
	X, Y  int
	Color uint8
}

// Spawn returns a piece of kind k centered at the top of the board.
func Spawn(k int) Piece {
	sh := Shapes[k]
	return Piece{
		Shape: sh,
		Kind:  k,
		X:     (Width - sh.Width()) / 2,
		Y:     0,
		Color: uint8(k + 1), //nolint:gosec // k < shapeCount
	}
}

// Cells calls fn for every solid cell in board coordinates.
func (p Piece) Cells(fn func(x, y int)) {
	for r, row := range p.Shape {
		for c, v := range row {
			if v != 0 {
				fn(p.X+c, p.Y+r)
			}
		}
	}
}

// Moved returns a copy shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}
