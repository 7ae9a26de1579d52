// Package pong implements Pong against a pursuit-controller opponent.
// The player owns the left paddle and may steer it with the keyboard or
// directly with the mouse.
package pong

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/folio-arcade/internal/audio"
	"github.com/vovakirdan/folio-arcade/internal/config"
	"github.com/vovakirdan/folio-arcade/internal/core"
	"github.com/vovakirdan/folio-arcade/internal/registry"
)

// Game adapts the pure Pong engine to the platform.
type Game struct {
	tuning *config.PongConfig

	rules  Rules
	rng    *rand.Rand
	state  State
	tones  audio.Player
	best   int
	layout layout // Field placement of the last render, for pointer mapping
}

// New creates a Pong game that loads its tuning on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a Pong game with fixed tuning.
func NewWithConfig(c config.PongConfig) *Game {
	return &Game{tuning: &c}
}

func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Reset initializes or restarts the match.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rules = RulesFrom(g.loadTuning(cfg))
	g.rng = rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // gameplay randomness
	g.state = NewState(g.rules, g.rng)
	g.tones = cfg.Tones()
}

func (g *Game) loadTuning(cfg core.RuntimeConfig) config.PongConfig {
	if g.tuning != nil {
		return *g.tuning
	}
	c, err := config.LoadPong(cfg.ConfigPath)
	if err != nil {
		c = config.DefaultPongConfig()
	}
	if cfg.Difficulty != "" {
		config.ApplyPongPreset(&c, config.ParsePreset(cfg.Difficulty))
	}
	return c
}

// Start begins the match.
func (g *Game) Start() {
	g.state.Start()
}

// TogglePause pauses or resumes.
func (g *Game) TogglePause() {
	g.state.TogglePause()
}

// Apply handles a player intent.
func (g *Game) Apply(a core.Action) {
	switch a {
	case core.ActionUp:
		g.state = SetPlayerY(g.state, g.rules, g.state.PlayerY-g.rules.KeyStep)
	case core.ActionDown:
		g.state = SetPlayerY(g.state, g.rules, g.state.PlayerY+g.rules.KeyStep)
	case core.ActionPrimary, core.ActionConfirm:
		g.Start()
	case core.ActionPause:
		g.TogglePause()
	}
}

// Point centers the player's paddle on the pointer row. A click also starts
// a fresh match.
func (g *Game) Point(_, y int, click bool) {
	if g.layout.h <= 0 {
		return
	}
	fieldY := (float64(y-g.layout.oy) + 0.5) * g.rules.Height / float64(g.layout.h)
	g.state = SetPlayerY(g.state, g.rules, fieldY-g.rules.PaddleH/2)
	if click {
		g.Start()
	}
}

// Advance integrates the match over dt.
func (g *Game) Advance(dt time.Duration) {
	next, cues := Step(g.state, g.rules, dt, g.rng)
	g.state = next
	g.best = max(g.best, next.PlayerScore)
	for _, c := range cues {
		audio.Play(g.tones, tones[c])
	}
}

// State reports the player's points as the score.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.state.PlayerScore,
		Best:   g.best,
		Status: g.state.Status(),
	}
}

var tones = map[Cue]audio.Tone{
	CueWall:         {Freq: 300, Duration: 30 * time.Millisecond, Volume: 0.15, Wave: audio.Square},
	CuePaddle:       {Freq: 460, Duration: 40 * time.Millisecond, Volume: 0.2, Wave: audio.Square},
	CuePlayerScores: {Freq: 740, Duration: 150 * time.Millisecond, Volume: 0.25, Wave: audio.Triangle},
	CueAIScores:     {Freq: 196, Duration: 200 * time.Millisecond, Volume: 0.25, Wave: audio.Triangle},
	CueWin:          {Freq: 988, Duration: 500 * time.Millisecond, Volume: 0.3, Wave: audio.Sine},
	CueLose:         {Freq: 130, Duration: 500 * time.Millisecond, Volume: 0.3, Wave: audio.Sawtooth},
}

var (
	_ registry.Game    = (*Game)(nil)
	_ registry.Framed  = (*Game)(nil)
	_ registry.Pointer = (*Game)(nil)
)
