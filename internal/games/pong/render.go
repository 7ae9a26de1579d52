package pong

import (
	"fmt"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '┊'
)

// layout places the continuous field on the screen grid.
type layout struct {
	ox, oy int // Top-left cell of the field interior
	w, h   int // Interior size in cells
}

func (l layout) col(r Rules, x float64) int {
	return l.ox + int(x*float64(l.w)/r.Width)
}

func (l layout) row(r Rules, y float64) int {
	return l.oy + int(y*float64(l.h)/r.Height)
}

func (l layout) rows(r Rules, h float64) int {
	return max(1, int(h*float64(l.h)/r.Height+0.5))
}

// Render scales the field to fill the screen below the score line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < 30 || dst.Height() < 12 {
		dst.DrawMessage("Window too small", "Need 30x12")
		return
	}

	l := layout{ox: 1, oy: 2, w: dst.Width() - 2, h: dst.Height() - 3}
	g.layout = l
	r := g.rules

	dst.DrawTextColor(1, 0, "YOU", core.ColorBrightCyan)
	dst.DrawTextColor(dst.Width()-4, 0, "CPU", core.ColorBrightMagenta)
	dst.DrawTextCentered(0, fmt.Sprintf("%d   %d", g.state.PlayerScore, g.state.AIScore))
	dst.DrawBox(core.NewRect(0, 1, dst.Width(), dst.Height()-1), core.ColorGray)

	net := l.ox + l.w/2
	for y := l.oy; y < l.oy+l.h; y += 2 {
		dst.SetColor(net, y, NetChar, core.ColorGray)
	}

	paddle := func(box core.RectF, c core.Color) {
		x := l.col(r, box.X)
		y := l.row(r, box.Y)
		for i := range l.rows(r, box.H) {
			dst.SetColor(x, min(y+i, l.oy+l.h-1), PaddleChar, c)
		}
	}
	paddle(r.PlayerPaddle(g.state.PlayerY), core.ColorBrightCyan)
	paddle(r.AIPaddle(g.state.AIY), core.ColorBrightMagenta)

	// Blink the ball while waiting to serve
	if g.state.Serve <= 0 || (g.state.Serve.Milliseconds()/150)%2 == 0 {
		bx := core.Clamp(l.col(r, g.state.Ball.X), l.ox, l.ox+l.w-1)
		by := core.Clamp(l.row(r, g.state.Ball.Y), l.oy, l.oy+l.h-1)
		dst.SetColor(bx, by, BallChar, core.ColorBrightWhite)
	}

	title := ""
	if g.state.Status() == core.StatusOver {
		title = "CPU WINS!"
		if g.state.Winner == SidePlayer {
			title = "YOU WIN!"
		}
	}
	dst.DrawStatus(g.state.Status(), title, g.state.PlayerScore)
}
