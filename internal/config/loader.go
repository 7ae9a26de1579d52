package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads Snake configuration.
// Search order: customPath -> ~/.arcade/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load("snake", customPath, DefaultSnakeConfig)
}

// LoadTetris loads Tetris configuration with the same search order as LoadSnake.
func LoadTetris(customPath string) (TetrisConfig, error) {
	return load("tetris", customPath, DefaultTetrisConfig)
}

// LoadPong loads Pong configuration with the same search order as LoadSnake.
func LoadPong(customPath string) (PongConfig, error) {
	return load("pong", customPath, DefaultPongConfig)
}

// LoadRoadRush loads Road-Rush configuration with the same search order as LoadSnake.
func LoadRoadRush(customPath string) (RoadRushConfig, error) {
	return load("roadrush", customPath, DefaultRoadRushConfig)
}

// load decodes over the hardcoded defaults so that partial files only
// override the keys they mention. An explicit customPath must exist and
// parse; the implicit locations are skipped silently when unusable.
func load[T any](gameID, customPath string, defaults func() T) (T, error) {
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"
	candidates := []string{
		userConfigPath(filename),
		filepath.Join("configs", filename),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := defaults()
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	cfg.Difficulty.Apply(preset)
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// Easy mode draws from the 7-bag.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	cfg.Difficulty.Apply(preset)
	switch preset {
	case DifficultyEasy:
		cfg.Randomizer = "bag"
	case DifficultyHard:
		cfg.Randomizer = "uniform"
	}
}

// ApplyPongPreset modifies the config based on a difficulty preset.
// Pong has no progression, so presets only retune the opponent.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.AI.MaxSpeed = 16
		cfg.Ball.HitBoost = 1.05
	case DifficultyHard:
		cfg.AI.MaxSpeed = 28
		cfg.Gameplay.ServeDelayMS = 400
	}
}

// ApplyRoadRushPreset modifies the config based on a difficulty preset.
func ApplyRoadRushPreset(cfg *RoadRushConfig, preset DifficultyPreset) {
	cfg.Difficulty.Apply(preset)
	if preset == DifficultyEasy {
		cfg.Spawning.CoinChance = 0.3
	}
}
