package pong

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/folio-arcade/internal/config"
	"github.com/vovakirdan/folio-arcade/internal/core"
)

// Side identifies a player.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideAI
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideAI:
		return "ai"
	default:
		return "none"
	}
}

// Cue is an audible event produced by a step.
type Cue int

const (
	CueWall Cue = iota
	CuePaddle
	CuePlayerScores
	CueAIScores
	CueWin
	CueLose
)

// Rules are the fixed parameters of a match, in play-field units and seconds.
type Rules struct {
	Width, Height float64
	PaddleW       float64
	PaddleH       float64
	Inset         float64
	KeyStep       float64
	BallSize      float64
	ServeSpeed    float64
	HitBoost      float64
	MaxVY         float64
	Spin          float64
	AISpeed       float64
	WinScore      int
	ServeDelay    time.Duration
}

// RulesFrom derives match rules from tuning.
func RulesFrom(c config.PongConfig) Rules {
	return Rules{
		Width:      c.Field.Width,
		Height:     c.Field.Height,
		PaddleW:    c.Paddles.Width,
		PaddleH:    min(c.Paddles.Height, c.Field.Height),
		Inset:      c.Paddles.Inset,
		KeyStep:    c.Paddles.KeyStep,
		BallSize:   c.Ball.Size,
		ServeSpeed: c.Ball.ServeSpeed,
		HitBoost:   hitBoost(c.Ball.HitBoost),
		MaxVY:      c.Ball.MaxVY,
		Spin:       c.Ball.Spin,
		AISpeed:    c.AI.MaxSpeed,
		WinScore:   max(1, c.Gameplay.WinScore),
		ServeDelay: time.Duration(c.Gameplay.ServeDelayMS) * time.Millisecond,
	}
}

// hitBoost keeps every paddle hit speeding the ball up. Values at or below 1
// fall back to the default.
func hitBoost(v float64) float64 {
	if v <= 1 {
		return config.DefaultPongConfig().Ball.HitBoost
	}
	return v
}

// PlayerPaddle returns the left paddle's box at y.
func (r Rules) PlayerPaddle(y float64) core.RectF {
	return core.RectF{X: r.Inset, Y: y, W: r.PaddleW, H: r.PaddleH}
}

// AIPaddle returns the right paddle's box at y.
func (r Rules) AIPaddle(y float64) core.RectF {
	return core.RectF{X: r.Width - r.Inset - r.PaddleW, Y: y, W: r.PaddleW, H: r.PaddleH}
}

// ClampPaddle keeps a paddle inside the field.
func (r Rules) ClampPaddle(y float64) float64 {
	return core.ClampF(y, 0, r.Height-r.PaddleH)
}

// Ball is the ball's top-left corner and velocity in units per second.
type Ball struct {
	X, Y   float64
	VX, VY float64
}

// State is a complete Pong match.
type State struct {
	core.Lifecycle

	Ball        Ball
	PlayerY     float64
	AIY         float64
	PlayerScore int
	AIScore     int
	Serve       time.Duration // Remaining serve delay; the ball waits while positive
	Winner      Side
}

// NewState centers both paddles and readies a serve toward the player.
func NewState(r Rules, rng *rand.Rand) State {
	mid := r.ClampPaddle((r.Height - r.PaddleH) / 2)
	s := State{PlayerY: mid, AIY: mid}
	return serve(s, r, SidePlayer, rng)
}

// serve centers the ball heading toward the side that receives.
func serve(s State, r Rules, toward Side, rng *rand.Rand) State {
	dir := 1.0
	if toward == SidePlayer {
		dir = -1
	}
	angle := (rng.Float64() - 0.5) * 0.6
	s.Ball = Ball{
		X:  (r.Width - r.BallSize) / 2,
		Y:  (r.Height - r.BallSize) / 2,
		VX: dir * r.ServeSpeed,
		VY: r.ServeSpeed * angle,
	}
	s.Serve = r.ServeDelay
	return s
}

// SetPlayerY moves the player's paddle directly, clamped to the field.
// Ignored while paused or over.
func SetPlayerY(s State, r Rules, y float64) State {
	switch s.Status() {
	case core.StatusPaused, core.StatusOver:
		return s
	}
	s.PlayerY = r.ClampPaddle(y)
	return s
}

// Step integrates the match over dt. It is a no-op unless Running.
func Step(s State, r Rules, dt time.Duration, rng *rand.Rand) (State, []Cue) {
	if !s.Running() || dt <= 0 {
		return s, nil
	}
	secs := dt.Seconds()

	s.AIY = pursue(s, r, secs)

	if s.Serve > 0 {
		s.Serve -= dt
		if s.Serve > 0 {
			return s, nil
		}
		s.Serve = 0
	}

	var cues []Cue
	prev := s.ballBox(r)
	s.Ball.X += s.Ball.VX * secs
	s.Ball.Y += s.Ball.VY * secs

	top, bottom := 0.0, r.Height-r.BallSize
	switch {
	case s.Ball.Y < top:
		s.Ball.Y = min(bottom, top+(top-s.Ball.Y))
		s.Ball.VY = math.Abs(s.Ball.VY)
		cues = append(cues, CueWall)
	case s.Ball.Y > bottom:
		s.Ball.Y = max(top, bottom-(s.Ball.Y-bottom))
		s.Ball.VY = -math.Abs(s.Ball.VY)
		cues = append(cues, CueWall)
	}

	cur := s.ballBox(r)
	swept := prev.Union(cur)
	switch {
	case s.Ball.VX < 0:
		paddle := r.PlayerPaddle(s.PlayerY)
		if prev.X >= paddle.Right() && swept.Intersects(paddle) {
			s.Ball.X = paddle.Right()
			s.Ball = deflect(s.Ball, r, paddle)
			cues = append(cues, CuePaddle)
		}
	case s.Ball.VX > 0:
		paddle := r.AIPaddle(s.AIY)
		if prev.Right() <= paddle.X && swept.Intersects(paddle) {
			s.Ball.X = paddle.X - r.BallSize
			s.Ball = deflect(s.Ball, r, paddle)
			cues = append(cues, CuePaddle)
		}
	}

	switch {
	case s.Ball.X+r.BallSize <= 0:
		s.AIScore++
		cues = append(cues, CueAIScores)
		s, cues = point(s, r, SidePlayer, rng, cues)
	case s.Ball.X >= r.Width:
		s.PlayerScore++
		cues = append(cues, CuePlayerScores)
		s, cues = point(s, r, SideAI, rng, cues)
	}
	return s, cues
}

func (s State) ballBox(r Rules) core.RectF {
	return core.RectF{X: s.Ball.X, Y: s.Ball.Y, W: r.BallSize, H: r.BallSize}
}

// deflect reverses and amplifies vx, adding spin by how far off the paddle
// center the ball struck.
func deflect(b Ball, r Rules, paddle core.RectF) Ball {
	b.VX = -b.VX * r.HitBoost

	center := b.Y + r.BallSize/2
	offset := (center - (paddle.Y + paddle.H/2)) / (paddle.H / 2)
	offset = core.ClampF(offset, -1, 1)
	b.VY += offset * r.Spin * math.Abs(b.VX)
	if r.MaxVY > 0 {
		b.VY = core.ClampF(b.VY, -r.MaxVY, r.MaxVY)
	}
	return b
}

// point resolves a goal conceded by loser: the match ends at the win score,
// otherwise the ball is served back toward loser.
func point(s State, r Rules, loser Side, rng *rand.Rand, cues []Cue) (State, []Cue) {
	switch {
	case s.PlayerScore >= r.WinScore:
		s.Winner = SidePlayer
		s.Finish()
		return s, append(cues, CueWin)
	case s.AIScore >= r.WinScore:
		s.Winner = SideAI
		s.Finish()
		return s, append(cues, CueLose)
	}
	return serve(s, r, loser, rng), cues
}

// pursue moves the AI paddle toward the ball's center at no more than the
// configured speed.
func pursue(s State, r Rules, secs float64) float64 {
	target := s.Ball.Y + r.BallSize/2 - r.PaddleH/2
	limit := r.AISpeed * secs
	move := core.ClampF(target-s.AIY, -limit, limit)
	return r.ClampPaddle(s.AIY + move)
}
