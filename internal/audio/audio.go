// Package audio defines the tone-playback capability the engines consume.
// Engines never synthesize sound themselves; they describe a tone and hand it
// to whatever Player the platform injected.
package audio

import (
	"sync"
	"time"
)

// Waveform is the oscillator shape of a tone.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Triangle
	Sawtooth
)

// String returns the waveform name.
func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	case Sawtooth:
		return "sawtooth"
	default:
		return "unknown"
	}
}

// Tone is a single fire-and-forget audio cue.
type Tone struct {
	Freq     float64 // Hz
	Duration time.Duration
	Volume   float64 // 0..1
	Wave     Waveform
}

// Player plays tones. Implementations must not block the caller.
type Player interface {
	PlayTone(freq float64, duration time.Duration, volume float64, wave Waveform)
}

// Play is a convenience for playing a Tone value.
func Play(p Player, t Tone) {
	p.PlayTone(t.Freq, t.Duration, t.Volume, t.Wave)
}

// Nop discards every tone.
type Nop struct{}

// PlayTone implements Player.
func (Nop) PlayTone(float64, time.Duration, float64, Waveform) {}

type safePlayer struct {
	next Player
}

// Safe wraps a player so that a panicking backend never reaches the caller.
func Safe(p Player) Player {
	if _, ok := p.(safePlayer); ok {
		return p
	}
	return safePlayer{next: p}
}

// PlayTone implements Player.
func (s safePlayer) PlayTone(freq float64, duration time.Duration, volume float64, wave Waveform) {
	defer func() {
		_ = recover() //nolint:errcheck // tone failures are swallowed at the boundary
	}()
	s.next.PlayTone(freq, duration, volume, wave)
}

// Recorder keeps every tone it was asked to play. Useful in tests.
type Recorder struct {
	mu    sync.Mutex
	tones []Tone
}

// PlayTone implements Player.
func (r *Recorder) PlayTone(freq float64, duration time.Duration, volume float64, wave Waveform) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tones = append(r.tones, Tone{Freq: freq, Duration: duration, Volume: volume, Wave: wave})
}

// Tones returns a copy of the recorded tones.
func (r *Recorder) Tones() []Tone {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Tone, len(r.tones))
	copy(out, r.tones)
	return out
}

// Reset forgets all recorded tones.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tones = r.tones[:0]
}
