package audio

import (
	"io"
	"sync"
	"time"
)

// Bell rings the terminal bell for tones loud enough to matter. A terminal
// cannot render pitch, so frequency and waveform are ignored.
type Bell struct {
	mu        sync.Mutex
	w         io.Writer
	minVolume float64
	minGap    time.Duration
	last      time.Time
	now       func() time.Time
}

// NewBell creates a bell writing BEL characters to w. Tones quieter than
// minVolume are dropped, and rings closer together than 80ms are coalesced.
func NewBell(w io.Writer, minVolume float64) *Bell {
	return &Bell{
		w:         w,
		minVolume: minVolume,
		minGap:    80 * time.Millisecond,
		now:       time.Now,
	}
}

// PlayTone implements Player.
func (b *Bell) PlayTone(_ float64, _ time.Duration, volume float64, _ Waveform) {
	if volume < b.minVolume {
		return
	}

	b.mu.Lock()
	now := b.now()
	if !b.last.IsZero() && now.Sub(b.last) < b.minGap {
		b.mu.Unlock()
		return
	}
	b.last = now
	b.mu.Unlock()

	//nolint:errcheck // best effort, a missing bell is not an error
	b.w.Write([]byte{'\a'})
}
