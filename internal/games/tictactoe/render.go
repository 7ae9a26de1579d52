package tictactoe

import (
	"fmt"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

// Cell size in screen characters, excluding grid lines.
const (
	CellW = 7
	CellH = 3
)

// layout places the board on the screen grid.
type layout struct {
	ox, oy int // Top-left corner of the grid
	set    bool
}

func (l layout) cellAt(x, y int) (int, bool) {
	if !l.set {
		return 0, false
	}
	dx, dy := x-l.ox, y-l.oy
	if dx < 0 || dy < 0 {
		return 0, false
	}
	col, row := dx/(CellW+1), dy/(CellH+1)
	if col > 2 || row > 2 || dx%(CellW+1) == CellW || dy%(CellH+1) == CellH {
		return 0, false
	}
	return row*3 + col, true
}

func (l layout) origin(i int) (int, int) {
	return l.ox + (i%3)*(CellW+1), l.oy + (i/3)*(CellH+1)
}

// Render draws the board centered with the turn or outcome above it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	gridW, gridH := 3*CellW+2, 3*CellH+2
	if dst.Width() < gridW+2 || dst.Height() < gridH+4 {
		dst.DrawMessage("Window too small", fmt.Sprintf("Need %dx%d", gridW+2, gridH+4))
		return
	}

	l := layout{ox: (dst.Width() - gridW) / 2, oy: (dst.Height()-gridH)/2 + 1, set: true}
	g.layout = l

	for i := 1; i < 3; i++ {
		dst.DrawVLine(l.ox+i*(CellW+1)-1, l.oy, gridH, '│', core.ColorGray)
		dst.DrawHLine(l.ox, l.oy+i*(CellH+1)-1, gridW, '─', core.ColorGray)
		for j := 1; j < 3; j++ {
			dst.SetColor(l.ox+i*(CellW+1)-1, l.oy+j*(CellH+1)-1, '┼', core.ColorGray)
		}
	}

	line, won := Line(g.state.Cells)
	inLine := func(i int) bool {
		return won && (line[0] == i || line[1] == i || line[2] == i)
	}

	for i, m := range g.state.Cells {
		x, y := l.origin(i)
		if i == g.cursor && g.state.Winner == WinnerNone {
			dst.DrawRect(core.NewRect(x, y, CellW, CellH), '░', core.ColorGray)
		}
		if m == Empty {
			continue
		}
		c := core.ColorBrightCyan
		if m == O {
			c = core.ColorBrightMagenta
		}
		if inLine(i) {
			c = core.ColorBrightYellow
		}
		dst.SetColor(x+CellW/2, y+CellH/2, []rune(m.String())[0], c)
	}

	header := fmt.Sprintf("%s to move", g.state.Turn)
	switch g.state.Winner {
	case WinnerX, WinnerO:
		header = fmt.Sprintf("%s wins!  R to restart", g.state.Winner)
	case WinnerDraw:
		header = "Draw  R to restart"
	}
	dst.DrawTextCentered(l.oy-2, header)

	if g.state.Status() == core.StatusPaused {
		dst.DrawStatus(core.StatusPaused, "", 0)
	}
}
