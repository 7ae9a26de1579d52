package audio

import (
	"time"

	"github.com/charmbracelet/log"
)

// Logged reports every tone to a logger at debug level. Handy when running
// over SSH where the remote bell is usually muted.
type Logged struct {
	Logger *log.Logger
}

// PlayTone implements Player.
func (l Logged) PlayTone(freq float64, duration time.Duration, volume float64, wave Waveform) {
	if l.Logger == nil {
		return
	}
	l.Logger.Debug("tone",
		"freq", freq,
		"duration", duration,
		"volume", volume,
		"wave", wave.String(),
	)
}

// Multi plays each tone on every player in order.
type Multi []Player

// PlayTone implements Player.
func (m Multi) PlayTone(freq float64, duration time.Duration, volume float64, wave Waveform) {
	for _, p := range m {
		Safe(p).PlayTone(freq, duration, volume, wave)
	}
}
