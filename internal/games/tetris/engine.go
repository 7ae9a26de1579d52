package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/folio-arcade/internal/config"
	"github.com/vovakirdan/folio-arcade/internal/core"
)

// CueKind identifies an audible event.
type CueKind int

const (
	CueMove CueKind = iota
	CueRotate
	CueLock
	CueLineClear
	CueLevelUp
	CueGameOver
)

// Cue is an audible event. Index orders the line-clear cues of one lock.
type Cue struct {
	Kind  CueKind
	Index int
}

// Rules are the fixed parameters of a session.
type Rules struct {
	LineScores    []int
	LinesPerLevel int
	Interval      config.Ramp // Milliseconds per level above 1
	Bag           bool
	LockOutRow    int
}

// RulesFrom derives session rules from tuning.
func RulesFrom(c config.TetrisConfig) Rules {
	scores := c.LineScores
	if len(scores) < 5 {
		scores = config.DefaultTetrisConfig().LineScores
	}
	return Rules{
		LineScores:    scores,
		LinesPerLevel: max(1, c.LinesPerLvl),
		Interval:      c.Difficulty.Curve(c.Interval),
		Bag:           c.Randomizer == "bag",
		LockOutRow:    c.LockOutRow,
	}
}

// IntervalFor returns the gravity period at a level.
func (r Rules) IntervalFor(level int) time.Duration {
	return time.Duration(r.Interval.At(float64(level-1))) * time.Millisecond
}

// LevelFor returns the level reached after clearing lines.
func (r Rules) LevelFor(lines int) int {
	return 1 + lines/r.LinesPerLevel
}

// Points returns the award for clearing n lines at once on level.
func (r Rules) Points(n, level int) int {
	if n < 0 || n >= len(r.LineScores) {
		return 0
	}
	return r.LineScores[n] * level
}

// State is a complete Tetris session.
type State struct {
	core.Lifecycle

	Board    Board
	Active   Piece
	Next     int
	Score    int
	Level    int
	Lines    int
	Interval time.Duration
	Bag      []int // Remaining draws of the current 7-bag
}

// NewState creates an empty board with an active and a queued piece.
func NewState(r Rules, rng *rand.Rand) State {
	s := State{
		Level:    1,
		Interval: r.IntervalFor(1),
	}
	var first int
	first, s = draw(s, r, rng)
	s.Active = Spawn(first)
	s.Next, s = draw(s, r, rng)
	return s
}

func draw(s State, r Rules, rng *rand.Rand) (int, State) {
	if !r.Bag {
		return rng.Intn(shapeCount), s
	}
	if len(s.Bag) == 0 {
		s.Bag = rng.Perm(shapeCount)
	}
	k := s.Bag[0]
	s.Bag = append([]int(nil), s.Bag[1:]...)
	return k, s
}

// MoveHorizontal shifts the active piece by dx columns when it fits.
func MoveHorizontal(s State, dx int) (State, []Cue) {
	if !s.Running() || dx == 0 {
		return s, nil
	}
	moved := s.Active.Moved(dx, 0)
	if !s.Board.Fits(moved) {
		return s, nil
	}
	s.Active = moved
	return s, []Cue{{Kind: CueMove}}
}

// Rotate turns the active piece clockwise in place. There is no wall kick:
// a rotation that does not fit at the current origin is dropped.
func Rotate(s State) (State, []Cue) {
	if !s.Running() {
		return s, nil
	}
	rotated := s.Active
	rotated.Shape = s.Active.Shape.Rotate()
	if !s.Board.Fits(rotated) {
		return s, nil
	}
	s.Active = rotated
	return s, []Cue{{Kind: CueRotate}}
}

// SoftDrop moves the active piece down one row, locking it when blocked.
// Gravity ticks use the same operation.
func SoftDrop(s State, r Rules, rng *rand.Rand) (State, []Cue) {
	if !s.Running() {
		return s, nil
	}
	moved := s.Active.Moved(0, 1)
	if s.Board.Fits(moved) {
		s.Active = moved
		return s, nil
	}
	return Lock(s, r, rng)
}

// HardDrop drops the active piece as far as it goes and locks it.
func HardDrop(s State, r Rules, rng *rand.Rand) (State, []Cue) {
	if !s.Running() {
		return s, nil
	}
	for s.Board.Fits(s.Active.Moved(0, 1)) {
		s.Active = s.Active.Moved(0, 1)
	}
	return Lock(s, r, rng)
}

// Lock commits the active piece, clears full rows, scores them and brings in
// the queued piece. The session ends when a piece locks at or above the
// lock-out row or the next piece cannot spawn.
func Lock(s State, r Rules, rng *rand.Rand) (State, []Cue) {
	if !s.Running() {
		return s, nil
	}

	cues := []Cue{{Kind: CueLock}}
	lockedAt := s.Active.Y

	board, n := ClearLines(s.Board.Place(s.Active))
	s.Board = board
	if n > 0 {
		s.Score += r.Points(n, s.Level)
		s.Lines += n
		for i := range n {
			cues = append(cues, Cue{Kind: CueLineClear, Index: i})
		}
		if lvl := r.LevelFor(s.Lines); lvl > s.Level {
			s.Level = lvl
			s.Interval = r.IntervalFor(lvl)
			cues = append(cues, Cue{Kind: CueLevelUp})
		}
	}

	if lockedAt <= r.LockOutRow && n == 0 {
		s.Finish()
		return s, append(cues, Cue{Kind: CueGameOver})
	}

	s.Active = Spawn(s.Next)
	s.Next, s = draw(s, r, rng)
	if !s.Board.Fits(s.Active) {
		s.Finish()
		cues = append(cues, Cue{Kind: CueGameOver})
	}
	return s, cues
}
