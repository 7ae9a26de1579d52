package tictactoe

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/folio-arcade/internal/audio"
	"github.com/vovakirdan/folio-arcade/internal/core"
)

func play(t *testing.T, moves ...int) State {
	t.Helper()
	s := NewState()
	for _, i := range moves {
		s, _ = Place(s, i)
	}
	return s
}

func TestPlace(t *testing.T) {
	t.Run("Top row resolves to X and freezes the board", func(t *testing.T) {
		// Given: X X _ / O O _ with X to move
		s := play(t, 0, 3, 1, 4)
		require.Equal(t, WinnerNone, s.Winner)

		// When: X completes the top row
		s, cues := Place(s, 2)

		// Then: X wins and further placements change nothing
		require.Equal(t, WinnerX, s.Winner)
		assert.Equal(t, Cells{X, X, X, O, O, Empty, Empty, Empty, Empty}, s.Cells)
		assert.Contains(t, cues, CueWinX)
		assert.Equal(t, core.StatusOver, s.Status())

		for i := range 9 {
			after, cues := Place(s, i)
			assert.Equal(t, s.Cells, after.Cells)
			assert.Empty(t, cues)
		}
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: a sequence that fills the board as
		//   X O X
		//   X O O
		//   O X X
		s := play(t, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		// Then: the round is drawn
		assert.Equal(t, WinnerDraw, s.Winner)
		assert.Empty(t, EmptyCells(s.Cells))
	})

	t.Run("Occupied cell is a no-op", func(t *testing.T) {
		// Given: X on the center
		s := play(t, 4)

		// When: O tries the same cell
		after, cues := Place(s, 4)

		// Then: nothing changes and it is still O's turn
		assert.Equal(t, s, after)
		assert.Empty(t, cues)
		assert.Equal(t, O, after.Turn)
	})

	t.Run("Out of range index is a no-op", func(t *testing.T) {
		s := NewState()
		for _, i := range []int{-1, 9, 100} {
			after, cues := Place(s, i)
			assert.Equal(t, s, after)
			assert.Empty(t, cues)
		}
	})

	t.Run("Turns alternate starting with X", func(t *testing.T) {
		s := NewState()
		require.Equal(t, X, s.Turn)

		s, _ = Place(s, 0)
		assert.Equal(t, X, s.Cells[0])
		assert.Equal(t, O, s.Turn)

		s, _ = Place(s, 8)
		assert.Equal(t, O, s.Cells[8])
		assert.Equal(t, X, s.Turn)
	})

	t.Run("First placement starts the round", func(t *testing.T) {
		s, _ := Place(NewState(), 0)
		assert.Equal(t, core.StatusRunning, s.Status())
	})

	t.Run("Paused round ignores placements", func(t *testing.T) {
		s := play(t, 0)
		require.True(t, s.Pause())

		after, _ := Place(s, 1)
		assert.Equal(t, Empty, after.Cells[1])
	})
}

func TestEndToEndTopRow(t *testing.T) {
	// Given: placements 0,3,1,4,2 alternating X and O
	s := play(t, 0, 3, 1, 4, 2)

	// Then: X wins on the top row
	assert.Equal(t, WinnerX, s.Winner)
	line, ok := Line(s.Cells)
	require.True(t, ok)
	assert.Equal(t, [3]int{0, 1, 2}, line)
}

func TestResult(t *testing.T) {
	tests := []struct {
		name  string
		cells Cells
		want  Winner
	}{
		{"empty", Cells{}, WinnerNone},
		{"column", Cells{O, X, Empty, O, X, Empty, O, Empty, X}, WinnerO},
		{"diagonal", Cells{X, O, O, Empty, X, Empty, Empty, Empty, X}, WinnerX},
		{"anti-diagonal", Cells{X, X, O, Empty, O, Empty, O, Empty, X}, WinnerO},
		{"first combo wins", Cells{X, X, X, O, O, O, Empty, Empty, Empty}, WinnerX},
		{"open", Cells{X, O, Empty, Empty, Empty, Empty, Empty, Empty, Empty}, WinnerNone},
		{"draw", Cells{X, O, X, X, O, O, O, X, X}, WinnerDraw},
		{"win on full board", Cells{X, O, X, O, X, O, O, X, X}, WinnerX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Result(tt.cells))
		})
	}
}

func TestRandomMove(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("Picks only empty cells", func(t *testing.T) {
		cells := Cells{X, O, X, Empty, O, Empty, X, O, X}
		for range 100 {
			i, ok := RandomMove(cells, rng)
			require.True(t, ok)
			assert.Contains(t, []int{3, 5}, i)
		}
	})

	t.Run("Full board has no move", func(t *testing.T) {
		_, ok := RandomMove(Cells{X, O, X, X, O, O, O, X, X}, rng)
		assert.False(t, ok)
	})
}

func TestCPUAnswersEveryMove(t *testing.T) {
	for seed := range int64(50) {
		cfg := core.DefaultConfig()
		cfg.Seed = seed
		g := NewCPU()
		g.Reset(cfg)

		for g.Snapshot().Winner == WinnerNone {
			free := EmptyCells(g.Snapshot().Cells)
			require.NotEmpty(t, free)
			before := len(free)

			g.Place(free[0])

			after := len(EmptyCells(g.Snapshot().Cells))
			snap := g.Snapshot()
			if snap.Winner == WinnerNone {
				require.Equal(t, before-2, after, "seed %d: CPU should answer", seed)
				require.Equal(t, X, snap.Turn)
			}
		}
		assert.Equal(t, core.StatusOver, g.State().Status)
	}
}

func TestCPUIgnoresPlacementOnItsTurn(t *testing.T) {
	g := NewCPU()
	g.Reset(core.DefaultConfig())
	g.state = play(t, 0)

	g.Place(1)

	assert.Equal(t, Empty, g.Snapshot().Cells[1])
}

func TestCursorControls(t *testing.T) {
	rec := &audio.Recorder{}
	cfg := core.DefaultConfig()
	cfg.Audio = rec
	g := New()
	g.Reset(cfg)
	require.Equal(t, 4, g.Snapshot().Cursor)

	// When: moving to the top-left corner and beyond
	for _, a := range []core.Action{core.ActionUp, core.ActionLeft, core.ActionUp, core.ActionLeft} {
		g.Apply(a)
	}
	require.Equal(t, 0, g.Snapshot().Cursor)

	// Then: primary places X there
	g.Apply(core.ActionPrimary)
	assert.Equal(t, X, g.Snapshot().Cells[0])
	assert.Equal(t, core.StatusRunning, g.State().Status)
	assert.Len(t, rec.Tones(), 1)

	g.Apply(core.ActionDown)
	g.Apply(core.ActionRight)
	g.Apply(core.ActionConfirm)
	assert.Equal(t, O, g.Snapshot().Cells[4])
}

func TestScoreAndWins(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())

	for _, i := range []int{0, 3, 1, 4, 2} {
		g.Place(i)
	}
	st := g.State()
	assert.Equal(t, 1, st.Score)
	assert.Equal(t, 1, st.Best)
	assert.True(t, st.GameOver())

	// When: more placements arrive on the decided board
	g.Apply(core.ActionPrimary)
	g.Apply(core.ActionConfirm)
	g.Place(8)

	// Then: the win is counted once
	assert.Equal(t, 1, g.State().Best)
	assert.Equal(t, Empty, g.Snapshot().Cells[8])

	g.Reset(core.DefaultConfig())
	assert.Equal(t, 0, g.State().Score)
	assert.Equal(t, 1, g.State().Best)
}

func TestPointerPlacement(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())

	// Clicks before the first render are ignored
	g.Point(40, 12, true)
	require.Equal(t, Cells{}, g.Snapshot().Cells)

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	// When: clicking inside the bottom-right cell
	x, y := g.layout.origin(8)
	g.Point(x+1, y+1, true)

	// Then: X lands there
	assert.Equal(t, X, g.Snapshot().Cells[8])
	assert.Equal(t, 8, g.Snapshot().Cursor)

	// Hover only moves the cursor
	x, y = g.layout.origin(0)
	g.Point(x, y, false)
	assert.Equal(t, 0, g.Snapshot().Cursor)
	assert.Equal(t, Empty, g.Snapshot().Cells[0])

	// Grid lines are not cells
	g.Point(x+CellW, y, true)
	assert.Equal(t, Empty, g.Snapshot().Cells[1])
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())
	for _, i := range []int{0, 3, 1, 4, 2} {
		g.Place(i)
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()
	assert.Contains(t, out, "X wins!")
	assert.Contains(t, out, "┼")

	small := core.NewScreen(10, 5)
	g.Render(small)
	assert.True(t, strings.Contains(small.String(), "too small"))
}
