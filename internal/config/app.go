package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// AppConfig holds process-wide settings taken from the environment.
// Command-line flags override these after loading.
type AppConfig struct {
	DBPath     string `yaml:"db" env:"ARCADE_DB" env-description:"SQLite database path"`
	Prefs      string `yaml:"prefs" env:"ARCADE_PREFS" env-default:"sqlite" env-description:"prefs backend: sqlite, redis or memory"`
	RedisAddr  string `yaml:"redis-addr" env:"ARCADE_REDIS_ADDR" env-default:"localhost:6379"`
	LogLevel   string `yaml:"log-level" env:"ARCADE_LOG_LEVEL" env-default:"info"`
	Audio      string `yaml:"audio" env:"ARCADE_AUDIO" env-default:"bell" env-description:"tone output: bell, log or off"`
	SSHAddr    string `yaml:"ssh-addr" env:"ARCADE_SSH_ADDR" env-default:":2222"`
	HostKey    string `yaml:"host-key" env:"ARCADE_HOST_KEY"`
	Difficulty string `yaml:"difficulty" env:"ARCADE_DIFFICULTY" env-default:"normal"`
}

// LoadApp reads AppConfig from path when given, otherwise from the
// environment alone. Defaults fill anything left unset.
func LoadApp(path string) (AppConfig, error) {
	var cfg AppConfig

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, fmt.Errorf("unable to load config file: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("unable to read environment: %w", err)
	}

	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath()
	}
	return cfg, nil
}

// DefaultDBPath returns ~/.arcade/scores.db, or a relative fallback when the
// home directory is unavailable.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "arcade.db"
	}
	return filepath.Join(home, ".arcade", "scores.db")
}

// Description returns the environment variable help text.
func Description() string {
	var cfg AppConfig
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}
