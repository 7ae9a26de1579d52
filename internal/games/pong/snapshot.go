package pong

import (
	"time"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

// Snapshot is a read-only copy of the match.
type Snapshot struct {
	Ball        Ball
	PlayerY     float64
	AIY         float64
	PlayerScore int
	AIScore     int
	Serving     bool
	Serve       time.Duration
	Winner      Side
	Status      core.Status
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Ball:        g.state.Ball,
		PlayerY:     g.state.PlayerY,
		AIY:         g.state.AIY,
		PlayerScore: g.state.PlayerScore,
		AIScore:     g.state.AIScore,
		Serving:     g.state.Serve > 0,
		Serve:       g.state.Serve,
		Winner:      g.state.Winner,
		Status:      g.state.Status(),
	}
}
