package tetris

// Board dimensions.
const (
	Width  = 10
	Height = 20
)

// Board is the grid of locked cells, row-major from the top. Zero is empty,
// any other value is the color id of the piece that locked there.
type Board [Height][Width]uint8

// Fits reports whether every solid cell of p is on the board and empty.
func (b *Board) Fits(p Piece) bool {
	ok := true
	p.Cells(func(x, y int) {
		if x < 0 || x >= Width || y < 0 || y >= Height || b[y][x] != 0 {
			ok = false
		}
	})
	return ok
}

// Place writes p's color into every cell it covers. Cells outside the board
// are skipped.
func (b Board) Place(p Piece) Board {
	p.Cells(func(x, y int) {
		if x >= 0 && x < Width && y >= 0 && y < Height {
			b[y][x] = p.Color
		}
	})
	return b
}

// RowFull reports whether every cell of row y is filled.
func (b *Board) RowFull(y int) bool {
	for _, v := range b[y] {
		if v == 0 {
			return false
		}
	}
	return true
}

// OccupiedRows counts rows holding at least one locked cell.
func (b *Board) OccupiedRows() int {
	n := 0
	for y := range Height {
		for _, v := range b[y] {
			if v != 0 {
				n++
				break
			}
		}
	}
	return n
}

// ClearLines removes full rows, shifting the rows above down and filling
// the top with empty rows. Remaining rows keep their relative order.
func ClearLines(b Board) (Board, int) {
	var out Board
	dst := Height - 1
	cleared := 0
	for y := Height - 1; y >= 0; y-- {
		if b.RowFull(y) {
			cleared++
			continue
		}
		out[dst] = b[y]
		dst--
	}
	return out, cleared
}
