// Package config provides YAML-based game tuning, difficulty presets and the
// environment-driven application settings for the arcade.
package config

// SnakeConfig contains all tuning for the Snake engine.
type SnakeConfig struct {
	Grid       SnakeGrid        `yaml:"grid"`
	Scoring    SnakeScoring     `yaml:"scoring"`
	Interval   Ramp             `yaml:"interval_ms"` // Tick interval per speed-up step
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeGrid defines the board size in cells.
type SnakeGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeScoring defines points per food and the speed-up threshold.
type SnakeScoring struct {
	FoodPoints   int `yaml:"food_points"`
	SpeedUpEvery int `yaml:"speed_up_every"` // Points between speed-ups
}

// TetrisConfig contains all tuning for the Tetris engine.
type TetrisConfig struct {
	LineScores   []int            `yaml:"line_scores"` // Indexed by lines cleared at once
	LinesPerLvl  int              `yaml:"lines_per_level"`
	Interval     Ramp             `yaml:"interval_ms"` // Gravity interval per level above 1
	Randomizer   string           `yaml:"randomizer"`  // "uniform" or "bag"
	LockOutRow   int              `yaml:"lock_out_row"`
	Difficulty   DifficultyConfig `yaml:"difficulty"`
	PreviewPiece bool             `yaml:"preview_piece"`
}

// PongConfig contains all tuning for the Pong engine.
type PongConfig struct {
	Field    PongField    `yaml:"field"`
	Paddles  PongPaddles  `yaml:"paddles"`
	Ball     PongBall     `yaml:"ball"`
	AI       PongAI       `yaml:"ai"`
	Gameplay PongGameplay `yaml:"gameplay"`
}

// PongField defines the play area in continuous units.
type PongField struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PongPaddles defines paddle geometry and keyboard speed.
type PongPaddles struct {
	Height  float64 `yaml:"height"`
	Width   float64 `yaml:"width"`
	Inset   float64 `yaml:"inset"`
	KeyStep float64 `yaml:"key_step"` // Units per key press
}

// PongBall defines ball size and speed.
type PongBall struct {
	Size       float64 `yaml:"size"`
	ServeSpeed float64 `yaml:"serve_speed"`
	HitBoost   float64 `yaml:"hit_boost"` // vx multiplier per paddle hit
	MaxVY      float64 `yaml:"max_vy"`    // Cap on vertical speed after spin
	Spin       float64 `yaml:"spin"`      // Fraction of |vx| added to vy at the paddle edge
}

// PongAI defines the opponent controller.
type PongAI struct {
	MaxSpeed float64 `yaml:"max_speed"` // Units per second
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore     int `yaml:"win_score"`
	ServeDelayMS int `yaml:"serve_delay_ms"`
}

// RoadRushConfig contains all tuning for the Road-Rush engine.
type RoadRushConfig struct {
	Field      RoadField        `yaml:"field"`
	Player     RoadBox          `yaml:"player"`
	Car        RoadBox          `yaml:"car"`
	Coin       RoadBox          `yaml:"coin"`
	Speed      Ramp             `yaml:"speed"`             // Units per second over elapsed seconds
	Spawn      Ramp             `yaml:"spawn_interval_ms"` // Milliseconds over elapsed seconds
	Spawning   RoadSpawning     `yaml:"spawning"`
	Scoring    RoadScoring      `yaml:"scoring"`
	Boost      RoadBoost        `yaml:"boost"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	HighScore  string           `yaml:"high_score_key"`
}

// RoadField defines the lane layout.
type RoadField struct {
	Lanes  int     `yaml:"lanes"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RoadBox is a width/height pair, with an optional fixed Y for the player.
type RoadBox struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Y      float64 `yaml:"y,omitempty"`
}

// RoadSpawning defines obstacle randomization.
type RoadSpawning struct {
	CoinChance float64 `yaml:"coin_chance"`
	JitterMin  float64 `yaml:"jitter_min"`
	JitterMax  float64 `yaml:"jitter_max"`
}

// RoadScoring defines points per event.
type RoadScoring struct {
	Pass int `yaml:"pass"`
	Coin int `yaml:"coin"`
}

// RoadBoost defines the timed speed boost.
type RoadBoost struct {
	Multiplier float64 `yaml:"multiplier"`
	DurationMS int     `yaml:"duration_ms"`
}

// DifficultyConfig controls whether difficulty ramps progress and where they start.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = ramp start, 1.0 = ramp limit
	Pace         float64 `yaml:"pace"`          // Ramp rate multiplier, 0 means 1
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a name to a preset, defaulting to normal.
func ParsePreset(name string) DifficultyPreset {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return DifficultyNormal
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyHard:
		return 0.35
	default:
		return 0.0
	}
}

// PaceForPreset returns how fast the ramps progress for a preset.
func PaceForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.5
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// Apply updates the difficulty settings for a preset.
func (d *DifficultyConfig) Apply(preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
		d.InitialLevel = 0
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
	d.Pace = PaceForPreset(preset)
}

// Curve adapts a configured ramp to these settings. A disabled difficulty
// yields a flat ramp at its start value.
func (d DifficultyConfig) Curve(r Ramp) Ramp {
	if !d.Enabled {
		return r.Flat()
	}
	if d.Pace > 0 {
		r.Rate *= d.Pace
	}
	return r.Shift(d.InitialLevel)
}
