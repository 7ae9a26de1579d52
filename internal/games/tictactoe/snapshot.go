package tictactoe

import "github.com/vovakirdan/folio-arcade/internal/core"

// Snapshot is a read-only copy of the round.
type Snapshot struct {
	Cells  Cells
	Turn   Mark
	Winner Winner
	Cursor int
	Status core.Status
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Cells:  g.state.Cells,
		Turn:   g.state.Turn,
		Winner: g.state.Winner,
		Cursor: g.cursor,
		Status: g.state.Status(),
	}
}
