package roadrush

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/folio-arcade/internal/config"
	"github.com/vovakirdan/folio-arcade/internal/core"
)

// Cue is an audible event produced by a step.
type Cue int

const (
	CueLane Cue = iota
	CuePass
	CueCoin
	CueBoost
	CueBoostEnd
	CueCrash
)

// Rules are the fixed parameters of a run, in play-field units and seconds.
type Rules struct {
	Lanes      int
	Width      float64
	Height     float64
	Player     config.RoadBox
	Car        config.RoadBox
	Coin       config.RoadBox
	Speed      config.Ramp // Units per second over elapsed seconds
	Spawn      config.Ramp // Milliseconds over elapsed seconds
	CoinChance float64
	JitterMin  float64
	JitterMax  float64
	PassScore  int
	CoinScore  int
	BoostMult  float64
	BoostFor   time.Duration
}

// RulesFrom derives run rules from tuning.
func RulesFrom(c config.RoadRushConfig) Rules {
	jmin, jmax := c.Spawning.JitterMin, c.Spawning.JitterMax
	if jmax < jmin {
		jmin, jmax = jmax, jmin
	}
	return Rules{
		Lanes:      max(1, c.Field.Lanes),
		Width:      c.Field.Width,
		Height:     c.Field.Height,
		Player:     c.Player,
		Car:        c.Car,
		Coin:       c.Coin,
		Speed:      c.Difficulty.Curve(c.Speed),
		Spawn:      c.Difficulty.Curve(c.Spawn),
		CoinChance: c.Spawning.CoinChance,
		JitterMin:  jmin,
		JitterMax:  jmax,
		PassScore:  c.Scoring.Pass,
		CoinScore:  c.Scoring.Coin,
		BoostMult:  max(1, c.Boost.Multiplier),
		BoostFor:   time.Duration(c.Boost.DurationMS) * time.Millisecond,
	}
}

// LaneWidth returns the width of one lane.
func (r Rules) LaneWidth() float64 {
	return r.Width / float64(r.Lanes)
}

// LaneX returns the left edge of a box of width w centered in lane.
func (r Rules) LaneX(lane int, w float64) float64 {
	lw := r.LaneWidth()
	return float64(lane)*lw + (lw-w)/2
}

// PlayerBox returns the player's collision box in lane.
func (r Rules) PlayerBox(lane int) core.RectF {
	return core.RectF{X: r.LaneX(lane, r.Player.Width), Y: r.Player.Y, W: r.Player.Width, H: r.Player.Height}
}

// State is a complete Road-Rush run.
type State struct {
	core.Lifecycle

	Lane      int
	Obstacles []Obstacle // Spawn order, IDs increasing
	NextID    int
	Elapsed   time.Duration // Running time only; drives the difficulty ramps
	SpawnIn   time.Duration
	Boost     time.Duration // Remaining boost time
	Score     int
	Best      int // Best score of this session, captured on crash
}

// NewState places the player in the middle lane with an empty road.
func NewState(r Rules) State {
	s := State{Lane: r.Lanes / 2}
	s.SpawnIn = s.SpawnInterval(r)
	return s
}

// BaseSpeed is the current obstacle speed before jitter and boost.
func (s State) BaseSpeed(r Rules) float64 {
	return r.Speed.At(s.Elapsed.Seconds())
}

// SpawnInterval is the current gap between spawns.
func (s State) SpawnInterval(r Rules) time.Duration {
	return time.Duration(r.Spawn.At(s.Elapsed.Seconds()) * float64(time.Millisecond))
}

// SpeedScale is the global multiplier, raised while boosting.
func (s State) SpeedScale(r Rules) float64 {
	if s.Boost > 0 {
		return r.BoostMult
	}
	return 1
}

// MoveLane shifts the player one lane left (d < 0) or right (d > 0).
// Ignored while paused or over.
func MoveLane(s State, r Rules, d int) (State, []Cue) {
	switch s.Status() {
	case core.StatusPaused, core.StatusOver:
		return s, nil
	}
	if d == 0 {
		return s, nil
	}
	step := 1
	if d < 0 {
		step = -1
	}
	lane := core.Clamp(s.Lane+step, 0, r.Lanes-1)
	if lane == s.Lane {
		return s, nil
	}
	s.Lane = lane
	return s, []Cue{CueLane}
}

// Boost raises the speed scale for a fixed time. Ignored unless running and
// not already boosting.
func Boost(s State, r Rules) (State, []Cue) {
	if !s.Running() || s.Boost > 0 || r.BoostFor <= 0 {
		return s, nil
	}
	s.Boost = r.BoostFor
	return s, []Cue{CueBoost}
}

// Step advances the run by dt. It is a no-op unless Running.
func Step(s State, r Rules, dt time.Duration, rng *rand.Rand) (State, []Cue) {
	if !s.Running() || dt <= 0 {
		return s, nil
	}

	var cues []Cue
	scale := s.SpeedScale(r)
	if s.Boost > 0 {
		s.Boost -= dt
		if s.Boost <= 0 {
			s.Boost = 0
			cues = append(cues, CueBoostEnd)
		}
	}

	s.Elapsed += dt
	s.Obstacles = advance(s.Obstacles, r, s.BaseSpeed(r)*scale*dt.Seconds())

	s.SpawnIn -= dt
	for s.SpawnIn <= 0 {
		s.Obstacles = append(s.Obstacles, spawn(s.NextID, r, rng))
		s.NextID++
		s.SpawnIn += max(s.SpawnInterval(r), time.Millisecond)
	}

	player := r.PlayerBox(s.Lane)
	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		box := o.Box(r)

		switch o.Kind {
		case KindCar:
			if box.Intersects(player) {
				s.Finish()
				s.Best = max(s.Best, s.Score)
				return s, append(cues, CueCrash)
			}
			if !o.Passed && box.Y >= player.Bottom() {
				o.Passed = true
				s.Score += r.PassScore
				cues = append(cues, CuePass)
			}
		case KindCoin:
			if !o.Collected && box.Intersects(player) {
				o.Collected = true
				s.Score += r.CoinScore
				cues = append(cues, CueCoin)
			}
		}
	}
	return s, cues
}
