package snake

import (
	"fmt"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

const (
	hudHeight = 2
	cellW     = 2 // Terminal cells are roughly twice as tall as wide
)

// Render draws the board centered below a one-line HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Snake  Score: %d  Best: %d  Speed: %dms", g.state.Score, g.best, g.state.Interval.Milliseconds())
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)

	boardW := g.rules.Width*cellW + 2
	boardH := g.rules.Height + 2
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight {
		dst.DrawMessage("Window too small", fmt.Sprintf("Need %dx%d", boardW, boardH+hudHeight))
		return
	}

	ox := (dst.Width() - boardW) / 2
	oy := hudHeight + (dst.Height()-hudHeight-boardH)/2
	dst.DrawBox(core.NewRect(ox, oy, boardW, boardH), core.ColorGray)

	cell := func(p Point, r rune, c core.Color) {
		x := ox + 1 + p.X*cellW
		y := oy + 1 + p.Y
		dst.SetColor(x, y, r, c)
		dst.SetColor(x+1, y, r, c)
	}

	if g.state.Food != NoFood {
		cell(g.state.Food, '●', core.ColorBrightRed)
	}
	for i := len(g.state.Body) - 1; i >= 0; i-- {
		if i == 0 {
			cell(g.state.Body[i], '█', core.ColorBrightGreen)
		} else {
			cell(g.state.Body[i], '▓', core.ColorGreen)
		}
	}

	dst.DrawStatus(g.state.Status(), "", g.state.Score)
}
