// Package roadrush implements an endless lane-dodging racer. Cars and coins
// scroll down three lanes; the player switches lanes to dodge cars, collects
// coins and may trigger a short speed boost.
package roadrush

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/vovakirdan/folio-arcade/internal/audio"
	"github.com/vovakirdan/folio-arcade/internal/config"
	"github.com/vovakirdan/folio-arcade/internal/core"
	"github.com/vovakirdan/folio-arcade/internal/registry"
)

// DefaultHighScoreKey is the prefs key used when tuning leaves it empty.
const DefaultHighScoreKey = "roadrush.highscore"

// Game adapts the pure Road-Rush engine to the platform.
type Game struct {
	tuning *config.RoadRushConfig

	rules  Rules
	rng    *rand.Rand
	state  State
	tones  audio.Player
	prefs  core.Prefs
	key    string
	stored int // Persisted high score as last read or written
	best   int
	layout layout
}

// New creates a Road-Rush game that loads its tuning on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a Road-Rush game with fixed tuning.
func NewWithConfig(c config.RoadRushConfig) *Game {
	return &Game{tuning: &c}
}

func init() {
	registry.Register("roadrush", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "roadrush"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Road Rush"
}

// Reset initializes or restarts the run and reloads the persisted high score.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	c := g.loadTuning(cfg)
	g.rules = RulesFrom(c)
	g.rng = rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // gameplay randomness
	g.state = NewState(g.rules)
	g.tones = cfg.Tones()

	g.prefs = cfg.Prefs
	g.key = c.HighScore
	if g.key == "" {
		g.key = DefaultHighScoreKey
	}
	g.stored = g.readHighScore()
	g.best = max(g.best, g.stored)
	g.state.Best = g.best
}

func (g *Game) loadTuning(cfg core.RuntimeConfig) config.RoadRushConfig {
	if g.tuning != nil {
		return *g.tuning
	}
	c, err := config.LoadRoadRush(cfg.ConfigPath)
	if err != nil {
		c = config.DefaultRoadRushConfig()
	}
	if cfg.Difficulty != "" {
		config.ApplyRoadRushPreset(&c, config.ParsePreset(cfg.Difficulty))
	}
	return c
}

func (g *Game) readHighScore() int {
	if g.prefs == nil {
		return 0
	}
	v, ok := g.prefs.Get(g.key)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// saveHighScore persists score when it beats the stored value. The store is
// re-read first since other sessions may share it. Failures are ignored; the
// next crash tries again.
func (g *Game) saveHighScore(score int) {
	if g.prefs == nil {
		return
	}
	g.stored = max(g.stored, g.readHighScore())
	if score <= g.stored {
		return
	}
	if err := g.prefs.Set(g.key, strconv.Itoa(score)); err != nil {
		return
	}
	g.stored = score
}

// Start begins the run.
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
	case core.ActionLeft:
		g.emit(MoveLane(g.state, g.rules, -1))
	case core.ActionRight:
		g.emit(MoveLane(g.state, g.rules, 1))
	case core.ActionUp:
		g.emit(Boost(g.state, g.rules))
	case core.ActionPrimary:
		if g.state.Status() == core.StatusNotStarted {
			g.Start()
			return
		}
		g.emit(Boost(g.state, g.rules))
	case core.ActionConfirm:
		g.Start()
	case core.ActionPause:
		g.TogglePause()
	}
}

// Point moves one lane toward the lane under the pointer on click.
func (g *Game) Point(x, _ int, click bool) {
	if !click || g.layout.w <= 0 {
		return
	}
	if g.state.Status() == core.StatusNotStarted {
		g.Start()
		return
	}
	lane := g.layout.laneAt(g.rules, x)
	g.emit(MoveLane(g.state, g.rules, lane-g.state.Lane))
}

// Advance integrates the run over dt.
func (g *Game) Advance(dt time.Duration) {
	g.emit(Step(g.state, g.rules, dt, g.rng))
}

func (g *Game) emit(next State, cues []Cue) {
	g.state = next
	for _, c := range cues {
		if c == CueCrash {
			g.best = max(g.best, next.Score)
			g.state.Best = g.best
			g.saveHighScore(next.Score)
		}
		audio.Play(g.tones, tones[c])
	}
}

// State reports the run score and the best across sessions.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.state.Score,
		Best:   g.best,
		Status: g.state.Status(),
	}
}

var tones = map[Cue]audio.Tone{
	CueLane:     {Freq: 520, Duration: 25 * time.Millisecond, Volume: 0.1, Wave: audio.Square},
	CuePass:     {Freq: 620, Duration: 40 * time.Millisecond, Volume: 0.15, Wave: audio.Triangle},
	CueCoin:     {Freq: 1046.5, Duration: 90 * time.Millisecond, Volume: 0.25, Wave: audio.Sine},
	CueBoost:    {Freq: 330, Duration: 250 * time.Millisecond, Volume: 0.25, Wave: audio.Sawtooth},
	CueBoostEnd: {Freq: 247, Duration: 120 * time.Millisecond, Volume: 0.15, Wave: audio.Triangle},
	CueCrash:    {Freq: 98, Duration: 450 * time.Millisecond, Volume: 0.35, Wave: audio.Sawtooth},
}

var (
	_ registry.Game    = (*Game)(nil)
	_ registry.Framed  = (*Game)(nil)
	_ registry.Pointer = (*Game)(nil)
)
