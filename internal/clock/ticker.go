// Package clock provides the two scheduling primitives the platform drives
// engines with: a fixed-interval Ticker for tick-based games and a FrameClock
// measuring elapsed time for continuous games.
package clock

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// TickMsg is delivered each time a Ticker fires.
type TickMsg struct {
	ID   int
	Time time.Time

	gen int
}

// Ticker schedules repeating TickMsgs through tea.Tick. Every Stop or
// interval change bumps a generation counter so that ticks already in flight
// are recognized as stale and dropped, which keeps a cancelled ticker from
// ever stepping a disposed or paused session.
type Ticker struct {
	id       int
	gen      int
	interval time.Duration
	running  bool
}

// NewTicker creates a stopped ticker with the given interval.
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{
		id:       nextID(),
		interval: interval,
	}
}

// ID returns the ticker's unique identifier.
func (t *Ticker) ID() int {
	return t.id
}

// Interval returns the current tick interval.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Running reports whether the ticker is scheduled.
func (t *Ticker) Running() bool {
	return t.running
}

// Start schedules the first tick. Starting a running ticker restarts its
// period and invalidates the pending tick.
func (t *Ticker) Start() tea.Cmd {
	t.running = true
	t.gen++
	return t.tick()
}

// Stop cancels any pending tick.
func (t *Ticker) Stop() {
	t.running = false
	t.gen++
}

// SetInterval changes the period. A running ticker is rescheduled with the
// new interval immediately; a stopped one picks it up on the next Start.
func (t *Ticker) SetInterval(d time.Duration) tea.Cmd {
	if d <= 0 || d == t.interval {
		return nil
	}
	t.interval = d
	if !t.running {
		return nil
	}
	t.gen++
	return t.tick()
}

// Owns reports whether msg is a live tick of this ticker.
func (t *Ticker) Owns(msg TickMsg) bool {
	return t.running && msg.ID == t.id && msg.gen == t.gen
}

// Next schedules the tick following an owned TickMsg.
func (t *Ticker) Next() tea.Cmd {
	if !t.running {
		return nil
	}
	return t.tick()
}

func (t *Ticker) tick() tea.Cmd {
	id, gen := t.id, t.gen
	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return TickMsg{ID: id, Time: now, gen: gen}
	})
}
