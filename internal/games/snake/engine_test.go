package snake

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/folio-arcade/internal/audio"
	"github.com/vovakirdan/folio-arcade/internal/config"
	"github.com/vovakirdan/folio-arcade/internal/core"
)

func testRules() Rules {
	return RulesFrom(config.DefaultSnakeConfig())
}

func running(s State) State {
	s.Start()
	return s
}

func TestRunIntoWallEndsWithZeroScore(t *testing.T) {
	r := testRules()
	rng := rand.New(rand.NewSource(1))

	s := running(State{
		Body:     []Point{{X: 10, Y: 10}},
		Food:     Point{X: 5, Y: 5},
		Dir:      Up,
		Heading:  Up,
		Interval: r.IntervalFor(0),
	})

	for range 1000 {
		s, _ = Step(s, r, rng)
	}

	if s.Status() != core.StatusOver {
		t.Fatalf("status = %v, want over", s.Status())
	}
	if s.Score != 0 {
		t.Errorf("score = %d, want 0", s.Score)
	}
	if s.Head() != (Point{X: 10, Y: 0}) {
		t.Errorf("head = %+v, want last in-bounds cell (10,0)", s.Head())
	}
}

func TestNewState(t *testing.T) {
	r := testRules()
	s := NewState(r, rand.New(rand.NewSource(7)))

	if len(s.Body) != 1 || s.Head() != (Point{X: 10, Y: 10}) {
		t.Errorf("body = %+v, want single cell at (10,10)", s.Body)
	}
	if s.Dir != Up || s.Heading != Up {
		t.Errorf("dir = %+v, heading = %+v, want up", s.Dir, s.Heading)
	}
	if s.Status() != core.StatusNotStarted {
		t.Errorf("status = %v, want not_started", s.Status())
	}
	if s.Interval != 150*time.Millisecond {
		t.Errorf("interval = %v, want 150ms", s.Interval)
	}
	if occupies(s.Body, s.Food) || !r.InBounds(s.Food) {
		t.Errorf("bad initial food %+v", s.Food)
	}
}

func TestSetDirection(t *testing.T) {
	tests := []struct {
		name    string
		status  core.Status
		heading Point
		dir     Point
		want    Point
	}{
		{"turn while running", core.StatusRunning, Up, Left, Left},
		{"reverse rejected", core.StatusRunning, Up, Down, Up},
		{"turn before start", core.StatusNotStarted, Up, Right, Right},
		{"ignored while paused", core.StatusPaused, Up, Left, Up},
		{"ignored when over", core.StatusOver, Up, Left, Up},
		{"non-unit rejected", core.StatusRunning, Up, Point{X: 1, Y: 1}, Up},
		{"zero rejected", core.StatusRunning, Up, Point{}, Up},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{Body: []Point{{X: 3, Y: 3}}, Dir: tt.heading, Heading: tt.heading}
			s.Set(tt.status)

			got := SetDirection(s, tt.dir)
			if got.Dir != tt.want {
				t.Errorf("Dir = %+v, want %+v", got.Dir, tt.want)
			}
		})
	}
}

func TestReverseCheckedAgainstAppliedHeading(t *testing.T) {
	r := testRules()
	rng := rand.New(rand.NewSource(3))
	s := running(State{
		Body:    []Point{{X: 5, Y: 5}, {X: 5, Y: 6}},
		Food:    Point{X: 0, Y: 0},
		Dir:     Up,
		Heading: Up,
	})

	// Two quick turns within one tick must not fold the snake back on itself
	s = SetDirection(s, Left)
	s = SetDirection(s, Down)
	if s.Dir != Left {
		t.Fatalf("Dir = %+v, want left", s.Dir)
	}

	s, _ = Step(s, r, rng)
	if s.Heading != Left {
		t.Fatalf("Heading = %+v, want left", s.Heading)
	}

	if got := SetDirection(s, Right); got.Dir != Left {
		t.Errorf("reverse of applied heading accepted: %+v", got.Dir)
	}
}

func TestEatGrowsAndScores(t *testing.T) {
	r := testRules()
	rng := rand.New(rand.NewSource(11))
	s := running(State{
		Body:     []Point{{X: 5, Y: 5}},
		Food:     Point{X: 6, Y: 5},
		Dir:      Right,
		Heading:  Right,
		Interval: r.IntervalFor(0),
	})

	s, cues := Step(s, r, rng)

	if s.Score != 10 {
		t.Errorf("score = %d, want 10", s.Score)
	}
	if len(s.Body) != 2 || s.Head() != (Point{X: 6, Y: 5}) {
		t.Errorf("body = %+v, want grown to 2 with head (6,5)", s.Body)
	}
	if occupies(s.Body, s.Food) {
		t.Errorf("food respawned on body at %+v", s.Food)
	}
	if !reflect.DeepEqual(cues, []Cue{CueEat}) {
		t.Errorf("cues = %v, want [eat]", cues)
	}

	// Plain move keeps the length
	s.Food = Point{X: 0, Y: 0}
	s, cues = Step(s, r, rng)
	if len(s.Body) != 2 || len(cues) != 0 {
		t.Errorf("after plain move body=%+v cues=%v", s.Body, cues)
	}
}

func TestSpeedUpEveryFiftyPoints(t *testing.T) {
	r := testRules()
	rng := rand.New(rand.NewSource(5))
	s := running(State{
		Body:     []Point{{X: 5, Y: 5}},
		Food:     Point{X: 6, Y: 5},
		Dir:      Right,
		Heading:  Right,
		Score:    40,
		Interval: r.IntervalFor(40),
	})

	s, cues := Step(s, r, rng)

	if s.Score != 50 {
		t.Fatalf("score = %d, want 50", s.Score)
	}
	if s.Interval != 140*time.Millisecond {
		t.Errorf("interval = %v, want 140ms", s.Interval)
	}
	if !reflect.DeepEqual(cues, []Cue{CueEat, CueSpeedUp}) {
		t.Errorf("cues = %v, want [eat speed_up]", cues)
	}
}

func TestIntervalFloor(t *testing.T) {
	r := testRules()

	prev := r.IntervalFor(0)
	for score := 0; score <= 5000; score += 10 {
		iv := r.IntervalFor(score)
		if iv > prev {
			t.Fatalf("interval increased at score %d: %v > %v", score, iv, prev)
		}
		if iv < 60*time.Millisecond {
			t.Fatalf("interval %v below floor at score %d", iv, score)
		}
		prev = iv
	}
	if prev != 60*time.Millisecond {
		t.Errorf("final interval = %v, want floor 60ms", prev)
	}
}

func TestSelfCollision(t *testing.T) {
	r := testRules()
	rng := rand.New(rand.NewSource(9))
	s := running(State{
		Body:    []Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6}},
		Food:    Point{X: 0, Y: 0},
		Dir:     Down,
		Heading: Left,
	})

	s, cues := Step(s, r, rng)
	if s.Status() != core.StatusOver {
		t.Fatalf("status = %v, want over", s.Status())
	}
	if !reflect.DeepEqual(cues, []Cue{CueGameOver}) {
		t.Errorf("cues = %v, want [game_over]", cues)
	}
}

func TestStepOnlyWhileRunning(t *testing.T) {
	r := testRules()
	rng := rand.New(rand.NewSource(2))

	for _, st := range []core.Status{core.StatusNotStarted, core.StatusPaused, core.StatusOver} {
		s := State{Body: []Point{{X: 5, Y: 5}}, Dir: Up, Heading: Up}
		s.Set(st)

		got, cues := Step(s, r, rng)
		if got.Head() != s.Head() || cues != nil {
			t.Errorf("%v: step changed state", st)
		}
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	r := testRules()
	rng := rand.New(rand.NewSource(4))
	body := []Point{{X: 5, Y: 5}, {X: 5, Y: 6}}
	s := running(State{Body: body, Food: Point{X: 5, Y: 4}, Dir: Up, Heading: Up})

	_, _ = Step(s, r, rng)

	if !reflect.DeepEqual(body, []Point{{X: 5, Y: 5}, {X: 5, Y: 6}}) {
		t.Errorf("input body mutated: %+v", body)
	}
}

func TestSpawnFood(t *testing.T) {
	r := Rules{Width: 2, Height: 2}
	rng := rand.New(rand.NewSource(1))

	full := []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	if got := SpawnFood(full, r, rng); got != NoFood {
		t.Errorf("full board food = %+v, want NoFood", got)
	}

	for range 50 {
		if got := SpawnFood(full[:3], r, rng); got != (Point{1, 1}) {
			t.Fatalf("only free cell not chosen: %+v", got)
		}
	}

	big := testRules()
	var body []Point
	for x := range big.Width {
		for y := range big.Height - 1 {
			body = append(body, Point{X: x, Y: y})
		}
	}
	for range 100 {
		p := SpawnFood(body, big, rng)
		if occupies(body, p) || p.Y != big.Height-1 {
			t.Fatalf("food on body or off the free row: %+v", p)
		}
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	r := testRules()
	dirs := []Point{Up, Down, Left, Right}

	for seed := int64(1); seed <= 30; seed++ {
		rng := rand.New(rand.NewSource(seed))
		s := running(NewState(r, rng))

		for range 2000 {
			if s.Status() == core.StatusOver {
				break
			}
			if rng.Intn(4) == 0 {
				s = SetDirection(s, dirs[rng.Intn(len(dirs))])
			}

			prevScore, prevInterval := s.Score, s.Interval
			s, _ = Step(s, r, rng)
			if s.Status() == core.StatusOver {
				continue
			}

			if !r.InBounds(s.Head()) {
				t.Fatalf("seed %d: head out of bounds %+v", seed, s.Head())
			}
			if occupies(s.Body[1:], s.Head()) {
				t.Fatalf("seed %d: head overlaps body", seed)
			}
			if s.Food != NoFood && occupies(s.Body, s.Food) {
				t.Fatalf("seed %d: food on body", seed)
			}
			if d := s.Score - prevScore; d != 0 && d != 10 {
				t.Fatalf("seed %d: score jumped by %d", seed, d)
			}
			if s.Interval > prevInterval {
				t.Fatalf("seed %d: interval grew", seed)
			}
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 12345}

	g1 := NewWithConfig(config.DefaultSnakeConfig())
	g1.Reset(cfg)
	g2 := NewWithConfig(config.DefaultSnakeConfig())
	g2.Reset(cfg)

	script := map[int]core.Action{0: core.ActionLeft, 4: core.ActionDown, 9: core.ActionRight, 15: core.ActionUp}
	for i := range 40 {
		if a, ok := script[i]; ok {
			g1.Apply(a)
			g2.Apply(a)
		}
		g1.Tick()
		g2.Tick()
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestGameLifecycleAndTones(t *testing.T) {
	rec := &audio.Recorder{}
	g := NewWithConfig(config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{Seed: 1, Audio: rec})

	g.Tick()
	if g.State().Status != core.StatusNotStarted {
		t.Fatal("tick before start should not run")
	}

	g.Apply(core.ActionPrimary)
	if g.State().Status != core.StatusRunning {
		t.Fatalf("status = %v, want running", g.State().Status)
	}

	g.Apply(core.ActionPause)
	head := g.Snapshot().Body[0]
	g.Tick()
	if g.Snapshot().Body[0] != head {
		t.Error("paused game advanced")
	}
	g.Apply(core.ActionPause)

	for range 50 {
		g.Tick()
	}
	if g.State().Status != core.StatusOver {
		t.Fatalf("status = %v, want over after running into the wall", g.State().Status)
	}

	tones := rec.Tones()
	if len(tones) == 0 || tones[len(tones)-1] != toneFor(CueGameOver) {
		t.Errorf("expected a game over tone, got %+v", tones)
	}

	g.Reset(core.RuntimeConfig{Seed: 2})
	if g.State().Status != core.StatusNotStarted || g.State().Score != 0 {
		t.Errorf("reset state = %+v", g.State())
	}
}

func TestRender(t *testing.T) {
	g := NewWithConfig(config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{Seed: 1})

	s := core.NewScreen(80, 30)
	g.Render(s)
	if !strings.Contains(s.Row(0), "Snake") {
		t.Errorf("HUD missing: %q", s.Row(0))
	}
	if !strings.Contains(s.String(), "Space to start") {
		t.Error("start prompt not drawn")
	}

	g.Start()
	g.Render(s)
	if !strings.Contains(s.String(), "█") {
		t.Error("snake head not drawn")
	}

	small := core.NewScreen(20, 10)
	g.Render(small)
	if !strings.Contains(small.String(), "Window too small") {
		t.Errorf("expected too-small message:\n%s", small.String())
	}
}

func toneFor(c Cue) audio.Tone {
	return tones[c]
}
