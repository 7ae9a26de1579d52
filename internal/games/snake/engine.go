package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/folio-arcade/internal/config"
	"github.com/vovakirdan/folio-arcade/internal/core"
)

// Point is a grid cell, or a unit direction vector.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction vectors.
var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// NoFood marks a board with no free cell left.
var NoFood = Point{X: -1, Y: -1}

// Cue is an audible event produced by a step.
type Cue int

const (
	CueEat Cue = iota
	CueSpeedUp
	CueGameOver
)

// Rules are the fixed parameters of a session.
type Rules struct {
	Width        int
	Height       int
	FoodPoints   int
	SpeedUpEvery int
	Interval     config.Ramp // Milliseconds per speed-up count
}

// RulesFrom derives session rules from tuning.
func RulesFrom(c config.SnakeConfig) Rules {
	return Rules{
		Width:        max(2, c.Grid.Width),
		Height:       max(2, c.Grid.Height),
		FoodPoints:   c.Scoring.FoodPoints,
		SpeedUpEvery: max(1, c.Scoring.SpeedUpEvery),
		Interval:     c.Difficulty.Curve(c.Interval),
	}
}

// IntervalFor returns the tick interval for a score.
func (r Rules) IntervalFor(score int) time.Duration {
	steps := float64(score / r.SpeedUpEvery)
	return time.Duration(r.Interval.At(steps)) * time.Millisecond
}

// InBounds reports whether p lies on the board.
func (r Rules) InBounds(p Point) bool {
	return p.X >= 0 && p.X < r.Width && p.Y >= 0 && p.Y < r.Height
}

// State is a complete Snake session. It is a value: Step returns a new
// State and never mutates the Body of the one it was given.
type State struct {
	core.Lifecycle

	Body     []Point // Head first
	Food     Point
	Dir      Point // Requested direction, applied on the next step
	Heading  Point // Direction of the last applied step
	Score    int
	Interval time.Duration
}

// NewState places a one-cell snake in the middle of the board heading up
// and spawns the first food.
func NewState(r Rules, rng *rand.Rand) State {
	head := Point{X: r.Width / 2, Y: r.Height / 2}
	body := []Point{head}
	return State{
		Body:     body,
		Food:     SpawnFood(body, r, rng),
		Dir:      Up,
		Heading:  Up,
		Interval: r.IntervalFor(0),
	}
}

// Head returns the first body cell.
func (s State) Head() Point {
	return s.Body[0]
}

// SetDirection requests a new heading. Requests are dropped while paused or
// over, when d is not a unit vector, or when d would reverse the heading of
// the last applied step.
func SetDirection(s State, d Point) State {
	switch s.Status() {
	case core.StatusPaused, core.StatusOver:
		return s
	}
	if abs(d.X)+abs(d.Y) != 1 {
		return s
	}
	if d.X == -s.Heading.X && d.Y == -s.Heading.Y {
		return s
	}
	s.Dir = d
	return s
}

// Step advances the snake one cell. It is a no-op unless Running.
func Step(s State, r Rules, rng *rand.Rand) (State, []Cue) {
	if !s.Running() {
		return s, nil
	}

	next := s.Head().Add(s.Dir)
	s.Heading = s.Dir

	if !r.InBounds(next) || occupies(s.Body, next) {
		s.Finish()
		return s, []Cue{CueGameOver}
	}

	body := make([]Point, len(s.Body)+1)
	body[0] = next
	copy(body[1:], s.Body)

	if next != s.Food {
		s.Body = body[:len(body)-1]
		return s, nil
	}

	cues := []Cue{CueEat}
	s.Body = body
	s.Score += r.FoodPoints
	s.Food = SpawnFood(body, r, rng)

	if iv := r.IntervalFor(s.Score); iv < s.Interval {
		s.Interval = iv
		cues = append(cues, CueSpeedUp)
	}
	return s, cues
}

// SpawnFood picks a uniformly random cell not covered by body. Rejection
// sampling handles the common sparse case; a full scan takes over once the
// board is crowded. Returns NoFood when every cell is occupied.
func SpawnFood(body []Point, r Rules, rng *rand.Rand) Point {
	cells := r.Width * r.Height
	if len(body) >= cells {
		return NoFood
	}

	for range cells {
		p := Point{X: rng.Intn(r.Width), Y: rng.Intn(r.Height)}
		if !occupies(body, p) {
			return p
		}
	}

	taken := make(map[Point]struct{}, len(body))
	for _, b := range body {
		taken[b] = struct{}{}
	}
	free := make([]Point, 0, cells-len(taken))
	for y := range r.Height {
		for x := range r.Width {
			p := Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return NoFood
	}
	return free[rng.Intn(len(free))]
}

func occupies(body []Point, p Point) bool {
	for _, b := range body {
		if b == p {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
