package tetris

import (
	"time"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

// Snapshot is a read-only copy of the session.
type Snapshot struct {
	Board    Board // Locked cells only
	Active   Piece
	Next     int
	Score    int
	Level    int
	Lines    int
	Status   core.Status
	Interval time.Duration
}

// Snapshot returns the current state. Board is copied by value; the active
// piece's shape is shared and must not be modified.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:    g.state.Board,
		Active:   g.state.Active,
		Next:     g.state.Next,
		Score:    g.state.Score,
		Level:    g.state.Level,
		Lines:    g.state.Lines,
		Status:   g.state.Status(),
		Interval: g.state.Interval,
	}
}
