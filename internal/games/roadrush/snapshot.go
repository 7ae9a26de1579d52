package roadrush

import (
	"time"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

// Snapshot is a read-only copy of the run. Collected coins are omitted.
type Snapshot struct {
	Lane      int
	Obstacles []Obstacle
	Score     int
	Best      int
	Speed     float64 // Current effective speed including boost
	Boosting  bool
	BoostLeft time.Duration
	Elapsed   time.Duration
	Status    core.Status
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	return Snapshot{
		Lane:      s.Lane,
		Obstacles: Visible(s.Obstacles),
		Score:     s.Score,
		Best:      g.best,
		Speed:     s.BaseSpeed(g.rules) * s.SpeedScale(g.rules),
		Boosting:  s.Boost > 0,
		BoostLeft: s.Boost,
		Elapsed:   s.Elapsed,
		Status:    s.Status(),
	}
}
