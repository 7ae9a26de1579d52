package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/folio-arcade/internal/audio"
	"github.com/vovakirdan/folio-arcade/internal/config"
	"github.com/vovakirdan/folio-arcade/internal/core"
	"github.com/vovakirdan/folio-arcade/internal/platform/tui"
	"github.com/vovakirdan/folio-arcade/internal/storage"
)

// redisPrefix namespaces every pref key written to Redis.
const redisPrefix = "arcade:"

// app holds the collaborators a command runs with.
type app struct {
	settings config.AppConfig
	logger   *log.Logger
	store    *storage.Store
	prefs    core.Prefs
	closers  []func() error
}

// loadSettings reads AppConfig and applies any flags set on cmd.
func loadSettings(cmd *cobra.Command) (config.AppConfig, error) {
	settings, err := config.LoadApp(flagSettings)
	if err != nil {
		return settings, err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		settings.DBPath = flagDBPath
	}
	if flags.Changed("audio") {
		settings.Audio = flagAudio
	}
	if flags.Changed("prefs") {
		settings.Prefs = flagPrefs
	}
	if flags.Changed("difficulty") {
		settings.Difficulty = flagDifficulty
	}
	return settings, nil
}

// newApp loads settings and opens storage. Logs go to logTo; a nil logTo
// selects ~/.arcade/arcade.log so the terminal stays with the TUI.
// Storage failures are logged and play continues without history.
func newApp(cmd *cobra.Command, logTo io.Writer) (*app, error) {
	settings, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}

	a := &app{settings: settings}

	if logTo == nil {
		f, err := openLogFile()
		if err != nil {
			logTo = io.Discard
		} else {
			logTo = f
			a.closers = append(a.closers, f.Close)
		}
	}
	a.logger = log.NewWithOptions(logTo, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
	if level, err := log.ParseLevel(settings.LogLevel); err == nil {
		a.logger.SetLevel(level)
	} else {
		a.logger.Warn("unknown log level", "level", settings.LogLevel)
	}

	store, err := storage.Open(settings.DBPath)
	if err != nil {
		a.logger.Warn("scores database unavailable", "path", settings.DBPath, "err", err)
	} else {
		a.store = store
		a.closers = append(a.closers, store.Close)
	}

	a.prefs = a.openPrefs(cmd.Context())
	return a, nil
}

// openPrefs selects the prefs backend, falling back to memory when the
// chosen one is unavailable.
func (a *app) openPrefs(ctx context.Context) core.Prefs {
	if ctx == nil {
		ctx = context.Background()
	}

	switch a.settings.Prefs {
	case "redis":
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		p, err := storage.NewRedisPrefs(ctx, a.settings.RedisAddr, redisPrefix)
		if err != nil {
			a.logger.Warn("redis prefs unavailable, using memory", "err", err)
			return storage.NewMemoryPrefs()
		}
		a.closers = append(a.closers, p.Close)
		return p

	case "memory":
		return storage.NewMemoryPrefs()

	default:
		if a.store == nil {
			return storage.NewMemoryPrefs()
		}
		return a.store.Prefs(a.logger)
	}
}

// scoreStore returns the store as a tui.ScoreStore, nil when unavailable.
func (a *app) scoreStore() tui.ScoreStore {
	if a.store == nil {
		return nil
	}
	return a.store
}

// tones builds the local tone player.
func (a *app) tones() audio.Player {
	switch a.settings.Audio {
	case "off":
		return audio.Nop{}
	case "log":
		return audio.Logged{Logger: a.logger}
	default:
		return audio.NewBell(os.Stdout, 0.1)
	}
}

// runtimeConfig describes a local session sized to the current terminal.
func (a *app) runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		ConfigPath: flagConfig,
		Difficulty: a.settings.Difficulty,
		Audio:      a.tones(),
		Prefs:      a.prefs,
	}
}

// Close releases everything newApp opened, newest first.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Debug("close failed", "err", err)
		}
	}
}

func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "arcade.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
