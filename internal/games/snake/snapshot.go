package snake

import (
	"time"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

// Snapshot is a read-only copy of the session for presentation and tests.
type Snapshot struct {
	Width, Height int
	Body          []Point
	Food          Point
	Dir           Point
	Score         int
	Status        core.Status
	Interval      time.Duration
}

// Snapshot returns the current state. The body slice is a copy.
func (g *Game) Snapshot() Snapshot {
	body := make([]Point, len(g.state.Body))
	copy(body, g.state.Body)
	return Snapshot{
		Width:    g.rules.Width,
		Height:   g.rules.Height,
		Body:     body,
		Food:     g.state.Food,
		Dir:      g.state.Dir,
		Score:    g.state.Score,
		Status:   g.state.Status(),
		Interval: g.state.Interval,
	}
}
