package pong

import (
	"math"
	"math/rand"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/folio-arcade/internal/config"
	"github.com/vovakirdan/folio-arcade/internal/core"
)

const frame = 16 * time.Millisecond

func testRules() Rules {
	return RulesFrom(config.DefaultPongConfig())
}

// live returns a running match with the serve already taken.
func live(b Ball, playerY, aiY float64) State {
	s := State{Ball: b, PlayerY: playerY, AIY: aiY}
	s.Start()
	return s
}

func TestPaddleHitReflectsAndSpeedsUp(t *testing.T) {
	r := testRules()
	paddle := r.PlayerPaddle(16)
	b := Ball{X: paddle.Right() + 0.5, Y: 19.5, VX: -28, VY: 0}
	s := live(b, 16, 16)

	s, cues := Step(s, r, 32*time.Millisecond, rand.New(rand.NewSource(1)))

	if !slices.Contains(cues, CuePaddle) {
		t.Fatalf("cues = %v, want paddle hit", cues)
	}
	if s.Ball.VX <= 0 {
		t.Errorf("vx = %v, want positive after player hit", s.Ball.VX)
	}
	if math.Abs(s.Ball.VX-28*1.1) > 1e-9 {
		t.Errorf("|vx| = %v, want %v", s.Ball.VX, 28*1.1)
	}
	if s.Ball.X != paddle.Right() {
		t.Errorf("ball X = %v, want flush with paddle face %v", s.Ball.X, paddle.Right())
	}
}

func TestHitBoostAlwaysSpeedsUp(t *testing.T) {
	for _, boost := range []float64{0, 0.5, 1} {
		c := config.DefaultPongConfig()
		c.Ball.HitBoost = boost
		r := RulesFrom(c)
		if r.HitBoost <= 1 {
			t.Fatalf("boost %v: HitBoost = %v, want > 1", boost, r.HitBoost)
		}

		paddle := r.PlayerPaddle(16)
		s := live(Ball{X: paddle.Right() + 0.5, Y: 19.5, VX: -28}, 16, 16)
		s, _ = Step(s, r, 32*time.Millisecond, rand.New(rand.NewSource(1)))
		if math.Abs(s.Ball.VX) <= 28 {
			t.Errorf("boost %v: |vx| = %v, want faster than 28", boost, math.Abs(s.Ball.VX))
		}
	}
}

func TestSpinFromOffCenterHit(t *testing.T) {
	r := testRules()
	paddle := r.PlayerPaddle(16)

	// Strike near the bottom edge of the paddle
	b := Ball{X: paddle.Right() + 0.2, Y: paddle.Bottom() - 1, VX: -28}
	s, _ := Step(live(b, 16, 16), r, frame, rand.New(rand.NewSource(1)))

	if s.Ball.VY <= 0 {
		t.Errorf("vy = %v, want downward spin from a low hit", s.Ball.VY)
	}
	if s.Ball.VY > r.MaxVY {
		t.Errorf("vy = %v exceeds cap %v", s.Ball.VY, r.MaxVY)
	}
}

func TestFastBallDoesNotTunnel(t *testing.T) {
	r := testRules()
	b := Ball{X: 20, Y: 19.5, VX: -2000}
	s, cues := Step(live(b, 16, 16), r, 32*time.Millisecond, rand.New(rand.NewSource(1)))

	if !slices.Contains(cues, CuePaddle) || s.Ball.VX <= 0 {
		t.Errorf("fast ball passed through the paddle: ball=%+v cues=%v", s.Ball, cues)
	}
}

func TestAIPaddleHit(t *testing.T) {
	r := testRules()
	paddle := r.AIPaddle(16)
	b := Ball{X: paddle.X - r.BallSize - 0.3, Y: 19.5, VX: 28}
	s, cues := Step(live(b, 16, 16), r, 32*time.Millisecond, rand.New(rand.NewSource(1)))

	if !slices.Contains(cues, CuePaddle) || s.Ball.VX >= 0 {
		t.Errorf("AI paddle did not return the ball: %+v", s.Ball)
	}
	if math.Abs(s.Ball.VX) <= 28 {
		t.Errorf("|vx| = %v, want amplified", math.Abs(s.Ball.VX))
	}
}

func TestWallsReflectVY(t *testing.T) {
	r := testRules()
	rng := rand.New(rand.NewSource(1))

	s, cues := Step(live(Ball{X: 40, Y: 0.2, VX: 10, VY: -20}, 16, 16), r, frame, rng)
	if s.Ball.VY <= 0 || s.Ball.Y < 0 || !slices.Contains(cues, CueWall) {
		t.Errorf("top wall: %+v cues=%v", s.Ball, cues)
	}

	bottom := r.Height - r.BallSize
	s, cues = Step(live(Ball{X: 40, Y: bottom - 0.1, VX: 10, VY: 20}, 16, 16), r, frame, rng)
	if s.Ball.VY >= 0 || s.Ball.Y > bottom || !slices.Contains(cues, CueWall) {
		t.Errorf("bottom wall: %+v cues=%v", s.Ball, cues)
	}
}

func TestConcededPointServesTowardLoser(t *testing.T) {
	r := testRules()

	// Ball slips past the player's paddle at the top
	s := live(Ball{X: -0.9, Y: 35, VX: -28}, 0, 16)
	s, cues := Step(s, r, frame, rand.New(rand.NewSource(1)))

	if s.AIScore != 1 || s.PlayerScore != 0 {
		t.Fatalf("scores = %d-%d, want 0-1", s.PlayerScore, s.AIScore)
	}
	if !slices.Contains(cues, CueAIScores) {
		t.Errorf("cues = %v", cues)
	}
	if s.Ball.VX >= 0 {
		t.Errorf("serve vx = %v, want toward the player", s.Ball.VX)
	}
	if s.Serve != r.ServeDelay {
		t.Errorf("serve delay = %v, want %v", s.Serve, r.ServeDelay)
	}
	if s.Status() != core.StatusRunning {
		t.Errorf("status = %v", s.Status())
	}
}

func TestMatchEndsAtWinScore(t *testing.T) {
	r := testRules()
	s := live(Ball{X: 79.9, Y: 1, VX: 28}, 16, r.Height-r.PaddleH)
	s.PlayerScore = 4

	s, cues := Step(s, r, frame, rand.New(rand.NewSource(1)))

	if s.Status() != core.StatusOver || s.Winner != SidePlayer {
		t.Fatalf("status=%v winner=%v, want over/player", s.Status(), s.Winner)
	}
	if cues[len(cues)-1] != CueWin {
		t.Errorf("cues = %v, want win last", cues)
	}

	// Terminal: nothing moves
	before := s
	s, _ = Step(s, r, frame, rand.New(rand.NewSource(1)))
	if s != before {
		t.Error("finished match advanced")
	}
}

func TestServeDelayHoldsBall(t *testing.T) {
	r := testRules()
	s := NewState(r, rand.New(rand.NewSource(3)))
	s.Start()
	start := s.Ball

	s, _ = Step(s, r, 300*time.Millisecond, rand.New(rand.NewSource(3)))
	if s.Ball != start {
		t.Error("ball moved during the serve delay")
	}

	s, _ = Step(s, r, 400*time.Millisecond, rand.New(rand.NewSource(3)))
	if s.Ball.X >= start.X {
		t.Errorf("ball did not leave toward the player: %+v", s.Ball)
	}
}

func TestSetPlayerY(t *testing.T) {
	r := testRules()
	s := NewState(r, rand.New(rand.NewSource(1)))

	tests := []struct {
		in, want float64
	}{
		{-10, 0},
		{10, 10},
		{100, r.Height - r.PaddleH},
	}
	for _, tt := range tests {
		if got := SetPlayerY(s, r, tt.in).PlayerY; got != tt.want {
			t.Errorf("SetPlayerY(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	s.Start()
	s.Pause()
	if got := SetPlayerY(s, r, 0).PlayerY; got != s.PlayerY {
		t.Error("paddle moved while paused")
	}
}

func TestStepRequiresRunning(t *testing.T) {
	r := testRules()
	s := NewState(r, rand.New(rand.NewSource(1)))
	s.Serve = 0

	for _, st := range []core.Status{core.StatusNotStarted, core.StatusPaused} {
		s.Set(st)
		if got, cues := Step(s, r, time.Second, rand.New(rand.NewSource(1))); got != s || cues != nil {
			t.Errorf("%v: step changed state", st)
		}
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	r := testRules()

	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		s := NewState(r, rng)
		s.Start()

		for range 20000 {
			if s.Status() == core.StatusOver {
				break
			}
			s = SetPlayerY(s, r, s.PlayerY+float64(rng.Intn(7)-3))

			before := s.Ball
			var cues []Cue
			s, cues = Step(s, r, time.Duration(1+rng.Intn(32))*time.Millisecond, rng)

			if s.PlayerY < 0 || s.PlayerY > r.Height-r.PaddleH || s.AIY < 0 || s.AIY > r.Height-r.PaddleH {
				t.Fatalf("seed %d: paddle out of bounds player=%v ai=%v", seed, s.PlayerY, s.AIY)
			}
			if s.Status() == core.StatusRunning && s.PlayerScore >= r.WinScore && s.AIScore >= r.WinScore {
				t.Fatalf("seed %d: both sides at win score while running", seed)
			}
			if slices.Contains(cues, CuePaddle) {
				if math.Signbit(before.VX) == math.Signbit(s.Ball.VX) {
					t.Fatalf("seed %d: vx sign did not flip on paddle hit", seed)
				}
				if math.Abs(s.Ball.VX) <= math.Abs(before.VX) {
					t.Fatalf("seed %d: |vx| did not grow on paddle hit", seed)
				}
			}
		}
		if s.PlayerScore > r.WinScore || s.AIScore > r.WinScore {
			t.Errorf("seed %d: score past the win threshold", seed)
		}
	}
}

func TestGameControls(t *testing.T) {
	g := NewWithConfig(config.DefaultPongConfig())
	g.Reset(core.RuntimeConfig{Seed: 1})
	start := g.Snapshot().PlayerY

	g.Apply(core.ActionUp)
	if got := g.Snapshot().PlayerY; got != start-g.rules.KeyStep {
		t.Errorf("key up: PlayerY = %v, want %v", got, start-g.rules.KeyStep)
	}

	// Pointer at the very top row of the field pins the paddle to the top
	s := core.NewScreen(82, 43)
	g.Render(s)
	g.Point(10, g.layout.oy, true)
	if got := g.Snapshot().PlayerY; got != 0 {
		t.Errorf("pointer top: PlayerY = %v, want 0", got)
	}
	if g.State().Status != core.StatusRunning {
		t.Error("click should start the match")
	}

	g.Point(10, g.layout.oy+g.layout.h-1, false)
	if got := g.Snapshot().PlayerY; got != g.rules.Height-g.rules.PaddleH {
		t.Errorf("pointer bottom: PlayerY = %v", got)
	}

	g.Advance(frame)
	if !g.Snapshot().Serving {
		t.Error("first frame should still be in the serve delay")
	}
}

func TestRender(t *testing.T) {
	g := NewWithConfig(config.DefaultPongConfig())
	g.Reset(core.RuntimeConfig{Seed: 1})
	g.Start()

	s := core.NewScreen(80, 24)
	g.Render(s)
	out := s.String()
	for _, want := range []string{"YOU", "CPU", "0   0", string(PaddleChar)} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	small := core.NewScreen(20, 8)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("expected too-small message")
	}
}
