package tetris

import (
	"fmt"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

const (
	cellW  = 2
	panelW = 14
)

// Render draws the well with a side panel holding the queue and counters.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	wellW := Width*cellW + 2
	wellH := Height + 2
	totalW := wellW + 2 + panelW
	if dst.Width() < totalW || dst.Height() < wellH {
		dst.DrawMessage("Window too small", fmt.Sprintf("Need %dx%d", totalW, wellH))
		return
	}

	ox := (dst.Width() - totalW) / 2
	oy := (dst.Height() - wellH) / 2
	dst.DrawBox(core.NewRect(ox, oy, wellW, wellH), core.ColorGray)

	block := func(x, y int, color uint8) {
		c := core.PaletteColor(int(color))
		dst.SetColor(x, y, '█', c)
		dst.SetColor(x+1, y, '█', c)
	}

	for y := range Height {
		for x := range Width {
			sx, sy := ox+1+x*cellW, oy+1+y
			if v := g.state.Board[y][x]; v != 0 {
				block(sx, sy, v)
			} else {
				dst.SetColor(sx, sy, '·', core.ColorGray)
			}
		}
	}

	if g.state.Status() != core.StatusOver {
		g.state.Active.Cells(func(x, y int) {
			block(ox+1+x*cellW, oy+1+y, g.state.Active.Color)
		})
	}

	px := ox + wellW + 2
	dst.DrawTextColor(px, oy, "TETRIS", core.ColorBrightWhite)
	dst.DrawText(px, oy+2, fmt.Sprintf("Score %d", g.state.Score))
	dst.DrawText(px, oy+3, fmt.Sprintf("Best  %d", g.best))
	dst.DrawText(px, oy+4, fmt.Sprintf("Level %d", g.state.Level))
	dst.DrawText(px, oy+5, fmt.Sprintf("Lines %d", g.state.Lines))

	if g.preview {
		dst.DrawText(px, oy+7, "Next")
		next := Spawn(g.state.Next)
		next.X, next.Y = 0, 0
		next.Cells(func(x, y int) {
			block(px+x*cellW, oy+8+y, next.Color)
		})
	}

	dst.DrawStatus(g.state.Status(), "", g.state.Score)
}
