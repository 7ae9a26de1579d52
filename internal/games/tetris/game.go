// Package tetris implements falling-block Tetris on a 10×20 board with
// gravity on a fixed tick that shortens as the level rises.
package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/folio-arcade/internal/audio"
	"github.com/vovakirdan/folio-arcade/internal/config"
	"github.com/vovakirdan/folio-arcade/internal/core"
	"github.com/vovakirdan/folio-arcade/internal/registry"
)

// Game adapts the pure Tetris engine to the platform.
type Game struct {
	tuning *config.TetrisConfig

	rules   Rules
	rng     *rand.Rand
	state   State
	tones   audio.Player
	best    int
	preview bool
}

// New creates a Tetris game that loads its tuning on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a Tetris game with fixed tuning.
func NewWithConfig(c config.TetrisConfig) *Game {
	return &Game{tuning: &c}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	c := g.loadTuning(cfg)
	g.rules = RulesFrom(c)
	g.preview = c.PreviewPiece
	g.rng = rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // gameplay randomness
	g.state = NewState(g.rules, g.rng)
	g.tones = cfg.Tones()
}

func (g *Game) loadTuning(cfg core.RuntimeConfig) config.TetrisConfig {
	if g.tuning != nil {
		return *g.tuning
	}
	c, err := config.LoadTetris(cfg.ConfigPath)
	if err != nil {
		c = config.DefaultTetrisConfig()
	}
	if cfg.Difficulty != "" {
		config.ApplyTetrisPreset(&c, config.ParsePreset(cfg.Difficulty))
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

// Apply handles a player intent.
func (g *Game) Apply(a core.Action) {
	var cues []Cue
	switch a {
	case core.ActionLeft:
		g.state, cues = MoveHorizontal(g.state, -1)
	case core.ActionRight:
		g.state, cues = MoveHorizontal(g.state, 1)
	case core.ActionUp:
		g.state, cues = Rotate(g.state)
	case core.ActionDown:
		g.state, cues = SoftDrop(g.state, g.rules, g.rng)
	case core.ActionPrimary:
		if g.state.Status() == core.StatusNotStarted {
			g.Start()
			return
		}
		g.state, cues = HardDrop(g.state, g.rules, g.rng)
	case core.ActionConfirm:
		g.Start()
	case core.ActionPause:
		g.TogglePause()
	}
	g.emit(cues)
}

// Tick applies one row of gravity.
func (g *Game) Tick() {
	var cues []Cue
	g.state, cues = SoftDrop(g.state, g.rules, g.rng)
	g.emit(cues)
}

// Interval returns the current gravity period.
func (g *Game) Interval() time.Duration {
	return g.state.Interval
}

func (g *Game) emit(cues []Cue) {
	g.best = max(g.best, g.state.Score)
	for _, c := range cues {
		audio.Play(g.tones, toneFor(c))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.state.Score,
		Best:   g.best,
		Status: g.state.Status(),
	}
}

func toneFor(c Cue) audio.Tone {
	switch c.Kind {
	case CueMove:
		return audio.Tone{Freq: 220, Duration: 25 * time.Millisecond, Volume: 0.1, Wave: audio.Square}
	case CueRotate:
		return audio.Tone{Freq: 330, Duration: 35 * time.Millisecond, Volume: 0.12, Wave: audio.Square}
	case CueLock:
		return audio.Tone{Freq: 150, Duration: 60 * time.Millisecond, Volume: 0.2, Wave: audio.Triangle}
	case CueLineClear:
		// Each cleared line rings a step higher
		return audio.Tone{Freq: 523.25 * (1 + 0.25*float64(c.Index)), Duration: 90 * time.Millisecond, Volume: 0.25, Wave: audio.Sine}
	case CueLevelUp:
		return audio.Tone{Freq: 1046.5, Duration: 200 * time.Millisecond, Volume: 0.25, Wave: audio.Triangle}
	default:
		return audio.Tone{Freq: 98, Duration: 600 * time.Millisecond, Volume: 0.3, Wave: audio.Sawtooth}
	}
}

var (
	_ registry.Game   = (*Game)(nil)
	_ registry.Ticked = (*Game)(nil)
)
