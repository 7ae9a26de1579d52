package core

import "github.com/vovakirdan/folio-arcade/internal/audio"

// Prefs is the key-value persistence capability engines may use to keep a
// scalar across sessions. Writes are best effort.
type Prefs interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second for continuous engines
	Seed     int64 // RNG seed for deterministic gameplay

	ConfigPath string // Custom tuning YAML; empty uses the default search order
	Difficulty string // Preset name: easy, normal, hard or fixed

	Audio audio.Player // Tone playback; nil plays nothing
	Prefs Prefs        // Persisted scalars; nil disables persistence
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Tones returns the configured tone player wrapped so that it can never
// interrupt a simulation step.
func (c RuntimeConfig) Tones() audio.Player {
	if c.Audio == nil {
		return audio.Nop{}
	}
	return audio.Safe(c.Audio)
}

// GameState is the summary the platform reads after every tick, frame or input.
type GameState struct {
	Score  int
	Best   int // Session-best or persisted best, 0 when the engine keeps none
	Status Status
}

// GameOver reports whether the session reached its terminal state.
func (s GameState) GameOver() bool {
	return s.Status == StatusOver
}

// Paused reports whether the session is paused.
func (s GameState) Paused() bool {
	return s.Status == StatusPaused
}
