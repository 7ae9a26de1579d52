package tictactoe

import (
	"math/rand"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

// Mark is the content of one cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// String returns the mark as drawn on the board.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Other returns the opposing mark.
func (m Mark) Other() Mark {
	if m == X {
		return O
	}
	return X
}

// Winner is the outcome of a round.
type Winner uint8

const (
	WinnerNone Winner = iota
	WinnerX
	WinnerO
	WinnerDraw
)

// String returns the outcome name.
func (w Winner) String() string {
	switch w {
	case WinnerX:
		return "X"
	case WinnerO:
		return "O"
	case WinnerDraw:
		return "Draw"
	default:
		return "None"
	}
}

func winnerOf(m Mark) Winner {
	if m == X {
		return WinnerX
	}
	return WinnerO
}

// Cue is an audible event produced by a placement.
type Cue int

const (
	CuePlace Cue = iota
	CueWinX
	CueWinO
	CueDraw
)

// Cells is the 3x3 board in row-major order.
type Cells [9]Mark

// WinCombos are the eight winning triples, checked in this order.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Result evaluates the board. The first complete triple in WinCombos decides
// the winner; a full board without one is a draw.
func Result(c Cells) Winner {
	for _, combo := range WinCombos {
		a, b, d := c[combo[0]], c[combo[1]], c[combo[2]]
		if a != Empty && a == b && b == d {
			return winnerOf(a)
		}
	}
	for _, m := range c {
		if m == Empty {
			return WinnerNone
		}
	}
	return WinnerDraw
}

// Line returns the winning triple, if any.
func Line(c Cells) ([3]int, bool) {
	for _, combo := range WinCombos {
		a := c[combo[0]]
		if a != Empty && a == c[combo[1]] && a == c[combo[2]] {
			return combo, true
		}
	}
	return [3]int{}, false
}

// EmptyCells lists the free cell indexes in ascending order.
func EmptyCells(c Cells) []int {
	var free []int
	for i, m := range c {
		if m == Empty {
			free = append(free, i)
		}
	}
	return free
}

// State is one round.
type State struct {
	core.Lifecycle

	Cells  Cells
	Turn   Mark
	Winner Winner
}

// NewState returns an empty board with X to move.
func NewState() State {
	return State{Turn: X}
}

// Place marks index for the player to move. It is a no-op once the round is
// decided, while paused, for an occupied cell or for an index off the board.
// A round that has not started starts with its first placement.
func Place(s State, index int) (State, []Cue) {
	if s.Winner != WinnerNone || index < 0 || index >= len(s.Cells) || s.Cells[index] != Empty {
		return s, nil
	}
	switch s.Status() {
	case core.StatusPaused, core.StatusOver:
		return s, nil
	case core.StatusNotStarted:
		s.Start()
	}

	s.Cells[index] = s.Turn
	s.Turn = s.Turn.Other()

	cues := []Cue{CuePlace}
	switch s.Winner = Result(s.Cells); s.Winner {
	case WinnerX:
		cues = append(cues, CueWinX)
	case WinnerO:
		cues = append(cues, CueWinO)
	case WinnerDraw:
		cues = append(cues, CueDraw)
	}
	if s.Winner != WinnerNone {
		s.Finish()
	}
	return s, cues
}

// RandomMove picks a uniformly random empty cell.
func RandomMove(c Cells, rng *rand.Rand) (int, bool) {
	free := EmptyCells(c)
	if len(free) == 0 {
		return 0, false
	}
	return free[rng.Intn(len(free))], true
}
