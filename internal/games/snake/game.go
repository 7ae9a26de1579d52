// Package snake implements the classic grid Snake on a fixed tick.
// The snake grows by one cell per food and speeds up every few pickups.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/folio-arcade/internal/audio"
	"github.com/vovakirdan/folio-arcade/internal/config"
	"github.com/vovakirdan/folio-arcade/internal/core"
	"github.com/vovakirdan/folio-arcade/internal/registry"
)

// Game adapts the pure Snake engine to the platform.
type Game struct {
	tuning *config.SnakeConfig // Fixed tuning; nil loads from YAML on Reset

	rules Rules
	rng   *rand.Rand
	state State
	tones audio.Player
	best  int
}

// New creates a Snake game that loads its tuning on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a Snake game with fixed tuning.
func NewWithConfig(c config.SnakeConfig) *Game {
	return &Game{tuning: &c}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset starts a fresh session. The session best survives resets.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rules = RulesFrom(g.loadTuning(cfg))
	g.rng = rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // gameplay randomness
	g.state = NewState(g.rules, g.rng)
	g.tones = cfg.Tones()
}

func (g *Game) loadTuning(cfg core.RuntimeConfig) config.SnakeConfig {
	if g.tuning != nil {
		return *g.tuning
	}
	c, err := config.LoadSnake(cfg.ConfigPath)
	if err != nil {
		c = config.DefaultSnakeConfig()
	}
	if cfg.Difficulty != "" {
		config.ApplySnakePreset(&c, config.ParsePreset(cfg.Difficulty))
	}
	return c
}

// Start begins a fresh session.
func (g *Game) Start() {
	g.state.Start()
}

// TogglePause pauses or resumes.
func (g *Game) TogglePause() {
	g.state.TogglePause()
}

// Apply handles a player intent. A direction press also starts a fresh session.
func (g *Game) Apply(a core.Action) {
	var dir Point
	switch a {
	case core.ActionUp:
		dir = Up
	case core.ActionDown:
		dir = Down
	case core.ActionLeft:
		dir = Left
	case core.ActionRight:
		dir = Right
	case core.ActionPrimary, core.ActionConfirm:
		g.Start()
		return
	case core.ActionPause:
		g.TogglePause()
		return
	default:
		return
	}

	g.state = SetDirection(g.state, dir)
	g.Start()
}

// Tick advances the simulation by one step.
func (g *Game) Tick() {
	next, cues := Step(g.state, g.rules, g.rng)
	g.state = next
	g.best = max(g.best, next.Score)
	for _, c := range cues {
		audio.Play(g.tones, tones[c])
	}
}

// Interval returns the current step period.
func (g *Game) Interval() time.Duration {
	return g.state.Interval
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.state.Score,
		Best:   g.best,
		Status: g.state.Status(),
	}
}

var tones = map[Cue]audio.Tone{
	CueEat:      {Freq: 660, Duration: 60 * time.Millisecond, Volume: 0.25, Wave: audio.Square},
	CueSpeedUp:  {Freq: 880, Duration: 120 * time.Millisecond, Volume: 0.2, Wave: audio.Triangle},
	CueGameOver: {Freq: 110, Duration: 400 * time.Millisecond, Volume: 0.3, Wave: audio.Sawtooth},
}

var (
	_ registry.Game   = (*Game)(nil)
	_ registry.Ticked = (*Game)(nil)
)
