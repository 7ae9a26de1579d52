package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/roadrush.yaml
var defaultRoadRushYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{Width: 20, Height: 20},
		Scoring: SnakeScoring{
			FoodPoints:   10,
			SpeedUpEvery: 50,
		},
		Interval:   Ramp{Start: 150, Rate: -10, Limit: 60},
		Difficulty: DifficultyConfig{Enabled: true, Pace: 1},
	}
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		LineScores:   []int{0, 40, 100, 300, 1200},
		LinesPerLvl:  10,
		Interval:     Ramp{Start: 800, Rate: -75, Limit: 100},
		Randomizer:   "uniform",
		LockOutRow:   0,
		Difficulty:   DifficultyConfig{Enabled: true, Pace: 1},
		PreviewPiece: true,
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: PongField{Width: 80, Height: 40},
		Paddles: PongPaddles{
			Height:  8,
			Width:   1.5,
			Inset:   2,
			KeyStep: 3,
		},
		Ball: PongBall{
			Size:       1,
			ServeSpeed: 28,
			HitBoost:   1.1,
			MaxVY:      40,
			Spin:       0.5,
		},
		AI: PongAI{MaxSpeed: 22},
		Gameplay: PongGameplay{
			WinScore:     5,
			ServeDelayMS: 600,
		},
	}
}

// DefaultRoadRushConfig returns the default Road-Rush configuration.
func DefaultRoadRushConfig() RoadRushConfig {
	return RoadRushConfig{
		Field:  RoadField{Lanes: 3, Width: 300, Height: 500},
		Player: RoadBox{Width: 40, Height: 70, Y: 410},
		Car:    RoadBox{Width: 40, Height: 70},
		Coin:   RoadBox{Width: 30, Height: 30},
		Speed:  Ramp{Start: 240, Rate: 8, Limit: 600},
		Spawn:  Ramp{Start: 1200, Rate: -15, Limit: 450},
		Spawning: RoadSpawning{
			CoinChance: 0.2,
			JitterMin:  0.85,
			JitterMax:  1.15,
		},
		Scoring:    RoadScoring{Pass: 10, Coin: 50},
		Boost:      RoadBoost{Multiplier: 1.6, DurationMS: 2000},
		Difficulty: DifficultyConfig{Enabled: true, Pace: 1},
		HighScore:  "roadrush.highscore",
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snake":
		return defaultSnakeYAML
	case "tetris":
		return defaultTetrisYAML
	case "pong":
		return defaultPongYAML
	case "roadrush":
		return defaultRoadRushYAML
	default:
		return nil
	}
}
