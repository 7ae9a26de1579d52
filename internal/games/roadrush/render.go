package roadrush

import (
	"fmt"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

// Visual characters for rendering
const (
	CarChar    = '▓'
	PlayerChar = '█'
	CoinChar   = '●'
	LaneChar   = '╎'
)

// layout places the road on the screen grid.
type layout struct {
	ox, oy int
	w, h   int
}

func (l layout) col(r Rules, x float64) int {
	return l.ox + int(x*float64(l.w)/r.Width)
}

func (l layout) row(r Rules, y float64) int {
	return l.oy + int(y*float64(l.h)/r.Height)
}

func (l layout) laneAt(r Rules, x int) int {
	lane := int(float64(x-l.ox) * float64(r.Lanes) / float64(l.w))
	return core.Clamp(lane, 0, r.Lanes-1)
}

// fill draws box clipped to the road interior, at least one cell in each axis.
func (l layout) fill(dst *core.Screen, r Rules, box core.RectF, ch rune, c core.Color) {
	x0, y0 := l.col(r, box.X), l.row(r, box.Y)
	x1, y1 := max(x0+1, l.col(r, box.Right())), max(y0+1, l.row(r, box.Bottom()))
	for y := max(y0, l.oy); y < min(y1, l.oy+l.h); y++ {
		for x := max(x0, l.ox); x < min(x1, l.ox+l.w); x++ {
			dst.SetColor(x, y, ch, c)
		}
	}
}

// Render draws the road centered with a stats panel to its right.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < 40 || dst.Height() < 16 {
		dst.DrawMessage("Window too small", "Need 40x16")
		return
	}

	r := g.rules
	h := dst.Height() - 2
	w := min(dst.Width()-22, max(r.Lanes*6, int(float64(h)*2*r.Width/r.Height)))
	l := layout{ox: 1, oy: 1, w: w, h: h}
	g.layout = l

	dst.DrawBox(core.NewRect(0, 0, w+2, h+2), core.ColorGray)
	for lane := 1; lane < r.Lanes; lane++ {
		x := l.col(r, float64(lane)*r.LaneWidth())
		for y := l.oy; y < l.oy+l.h; y++ {
			if (y+int(g.state.Elapsed.Milliseconds()/120))%3 != 0 {
				dst.SetColor(x, y, LaneChar, core.ColorGray)
			}
		}
	}

	for _, o := range Visible(g.state.Obstacles) {
		if o.Kind == KindCoin {
			l.fill(dst, r, o.Box(r), CoinChar, core.ColorBrightYellow)
			continue
		}
		l.fill(dst, r, o.Box(r), CarChar, core.PaletteColor(o.ID%5+1))
	}

	playerColor := core.ColorBrightCyan
	if g.state.Boost > 0 {
		playerColor = core.ColorOrange
	}
	l.fill(dst, r, r.PlayerBox(g.state.Lane), PlayerChar, playerColor)

	px := w + 4
	dst.DrawTextColor(px, 1, "ROAD RUSH", core.ColorBrightWhite)
	dst.DrawText(px, 3, fmt.Sprintf("Score: %d", g.state.Score))
	dst.DrawText(px, 4, fmt.Sprintf("Best:  %d", g.best))
	dst.DrawText(px, 5, fmt.Sprintf("Speed: %.0f", g.state.BaseSpeed(r)*g.state.SpeedScale(r)))
	if g.state.Boost > 0 {
		dst.DrawTextColor(px, 7, fmt.Sprintf("BOOST %.1fs", g.state.Boost.Seconds()), core.ColorOrange)
	}
	dst.DrawTextColor(px, dst.Height()-2, "←/→ lane  Space boost", core.ColorGray)

	dst.DrawStatus(g.state.Status(), "Crashed!", g.state.Score)
}
