// Package tictactoe implements Tic-Tac-Toe for two players at one keyboard,
// or against a CPU that plays O with random moves.
package tictactoe

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/folio-arcade/internal/audio"
	"github.com/vovakirdan/folio-arcade/internal/core"
	"github.com/vovakirdan/folio-arcade/internal/registry"
)

// Game adapts the Tic-Tac-Toe state machine to the platform.
type Game struct {
	cpu bool

	rng    *rand.Rand
	state  State
	cursor int
	tones  audio.Player
	wins   int // Rounds won by X since the game was created
	layout layout
}

// New creates a two-player game.
func New() *Game {
	return &Game{}
}

// NewCPU creates a game where the CPU answers every X move.
func NewCPU() *Game {
	return &Game{cpu: true}
}

func init() {
	registry.Register("tictactoe", func() registry.Game {
		return New()
	})
	registry.Register("tictactoe_cpu", func() registry.Game {
		return NewCPU()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.cpu {
		return "tictactoe_cpu"
	}
	return "tictactoe"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.cpu {
		return "Tic-Tac-Toe vs CPU"
	}
	return "Tic-Tac-Toe"
}

// Reset clears the board. The cursor starts on the center cell.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // gameplay randomness
	g.state = NewState()
	g.cursor = 4
	g.tones = cfg.Tones()
}

// Start begins the round.
func (g *Game) Start() {
	g.state.Start()
}

// TogglePause pauses or resumes.
func (g *Game) TogglePause() {
	g.state.TogglePause()
}

// Apply handles a player intent.
func (g *Game) Apply(a core.Action) {
	row, col := g.cursor/3, g.cursor%3
	switch a {
	case core.ActionUp:
		row = max(0, row-1)
	case core.ActionDown:
		row = min(2, row+1)
	case core.ActionLeft:
		col = max(0, col-1)
	case core.ActionRight:
		col = min(2, col+1)
	case core.ActionPrimary, core.ActionConfirm:
		g.Place(g.cursor)
		return
	case core.ActionPause:
		g.TogglePause()
		return
	default:
		return
	}
	g.cursor = row*3 + col
}

// Point moves the cursor to the hovered cell and places on click.
func (g *Game) Point(x, y int, click bool) {
	i, ok := g.layout.cellAt(x, y)
	if !ok {
		return
	}
	g.cursor = i
	if click {
		g.Place(i)
	}
}

// Place marks index for the player to move. Against the CPU, O answers
// immediately while the round is still open.
func (g *Game) Place(index int) {
	if g.cpu && g.state.Turn != X {
		return
	}
	if !g.place(index) || !g.cpu || g.state.Winner != WinnerNone {
		return
	}
	if i, ok := RandomMove(g.state.Cells, g.rng); ok {
		g.place(i)
	}
}

func (g *Game) place(index int) bool {
	decided := g.state.Winner != WinnerNone
	next, cues := Place(g.state, index)
	g.state = next
	for _, c := range cues {
		audio.Play(g.tones, tones[c])
	}
	if !decided && next.Winner == WinnerX {
		g.wins++
	}
	return len(cues) > 0
}

// State reports 1 for a round won by X. Best is the number of rounds X has won.
func (g *Game) State() core.GameState {
	score := 0
	if g.state.Winner == WinnerX {
		score = 1
	}
	return core.GameState{
		Score:  score,
		Best:   g.wins,
		Status: g.state.Status(),
	}
}

var tones = map[Cue]audio.Tone{
	CuePlace: {Freq: 440, Duration: 50 * time.Millisecond, Volume: 0.15, Wave: audio.Triangle},
	CueWinX:  {Freq: 880, Duration: 400 * time.Millisecond, Volume: 0.3, Wave: audio.Sine},
	CueWinO:  {Freq: 660, Duration: 400 * time.Millisecond, Volume: 0.3, Wave: audio.Sine},
	CueDraw:  {Freq: 220, Duration: 300 * time.Millisecond, Volume: 0.25, Wave: audio.Square},
}

var (
	_ registry.Game    = (*Game)(nil)
	_ registry.Pointer = (*Game)(nil)
)
