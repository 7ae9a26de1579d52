package clock

import "time"

// DefaultMaxFrame bounds a single frame's elapsed time.
const DefaultMaxFrame = 32 * time.Millisecond

// FrameClock converts frame timestamps into clamped elapsed durations. The
// first frame after construction or Reset yields zero, so time spent before
// the clock was (re)armed is never simulated.
type FrameClock struct {
	last time.Time
	max  time.Duration
}

// NewFrameClock returns a clock clamping each frame to maxFrame.
// A non-positive maxFrame selects DefaultMaxFrame.
func NewFrameClock(maxFrame time.Duration) *FrameClock {
	if maxFrame <= 0 {
		maxFrame = DefaultMaxFrame
	}
	return &FrameClock{max: maxFrame}
}

// Advance records now and returns the time elapsed since the previous frame,
// clamped to [0, max].
func (c *FrameClock) Advance(now time.Time) time.Duration {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	return min(dt, c.max)
}

// Reset forgets the previous frame.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}
