// Package tui provides the Bubble Tea integration for the arcade platform.
// It drives each engine with its scheduling discipline, maps input and
// renders the engines' screen buffers.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/folio-arcade/internal/clock"
	"github.com/vovakirdan/folio-arcade/internal/core"
	"github.com/vovakirdan/folio-arcade/internal/registry"
	"github.com/vovakirdan/folio-arcade/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// ScoreStore is the score history the platform reads and writes.
type ScoreStore interface {
	SaveScore(gameID, player string, score int) (int64, error)
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	HighScore(gameID string) (int, error)
}

// Options are the collaborators shared by every screen of a session.
type Options struct {
	Store  ScoreStore  // Nil disables score history
	Player string      // Recorded with each score; empty for local play
	Logger *log.Logger // Nil discards
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// GameModel runs one engine. Fixed-tick engines get a Ticker that runs only
// while the game is Running and follows the engine's interval; continuous
// engines get a frame Ticker that never stops plus a FrameClock that is
// re-armed whenever the game is not Running, so paused time is never
// simulated.
type GameModel struct {
	game   registry.Game
	screen *core.Screen
	cfg    core.RuntimeConfig
	opts   Options
	log    *log.Logger
	keys   KeyMap
	help   help.Model

	steps  *clock.Ticker // Fixed-tick engines
	frames *clock.Ticker // Continuous engines
	fclock *clock.FrameClock

	fixedSeed  bool
	standalone bool // Back quits the program instead of returning to a menu
	runID      string
	status     core.Status
	scoreSaved bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game. A zero Seed is replaced with the
// current time, and each restart draws a new one; a fixed seed advances by
// one per restart.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-1)),
		cfg:       cfg,
		opts:      opts,
		log:       opts.logger().With("game", game.ID()),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		fixedSeed: fixed,
	}
	m.help.Width = cfg.ScreenW

	if t, ok := game.(registry.Ticked); ok {
		m.steps = clock.NewTicker(t.Interval())
	}
	if _, ok := game.(registry.Framed); ok {
		m.frames = clock.NewTicker(time.Second / time.Duration(cfg.TickRate))
		m.fclock = clock.NewFrameClock(clock.DefaultMaxFrame)
	}
	m.reset()
	return m
}

// Init starts the frame ticker for continuous engines.
func (m GameModel) Init() tea.Cmd {
	if m.frames != nil {
		return m.frames.Start()
	}
	return nil
}

func (m *GameModel) reset() {
	m.game.Reset(m.cfg)
	m.runID = uuid.NewString()
	m.status = m.game.State().Status
	m.scoreSaved = false
	m.log.Debug("run reset", "run", m.runID, "seed", m.cfg.Seed)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.cfg.ScreenW = msg.Width
		m.cfg.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(0, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case clock.TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "err", err)
		} else {
			m.log.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.stop()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		if m.game.State().Status == core.StatusRunning {
			return m, nil
		}
		m.stop()
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil

	case core.ActionRestart:
		if m.game.State().Status == core.StatusNotStarted {
			return m, nil
		}
		m.nextSeed()
		m.reset()
		return m, m.sync()

	default:
		m.game.Apply(a)
		return m, m.sync()
	}
}

func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p, ok := m.game.(registry.Pointer)
	if !ok {
		return m, nil
	}

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		p.Point(msg.X, msg.Y, true)
	case msg.Action == tea.MouseActionMotion:
		p.Point(msg.X, msg.Y, false)
	default:
		return m, nil
	}
	return m, m.sync()
}

func (m GameModel) handleTick(msg clock.TickMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.steps != nil && m.steps.Owns(msg):
		// Schedule first: an interval change in sync supersedes this tick
		next := m.steps.Next()
		m.game.(registry.Ticked).Tick()
		return m, tea.Batch(next, m.sync())

	case m.frames != nil && m.frames.Owns(msg):
		dt := m.fclock.Advance(msg.Time)
		if m.game.State().Status == core.StatusRunning {
			m.game.(registry.Framed).Advance(dt)
		} else {
			m.fclock.Reset()
		}
		return m, tea.Batch(m.frames.Next(), m.sync())
	}

	// Stale tick from a stopped or rescheduled ticker
	return m, nil
}

// sync brings scheduling in line with the engine after any event and records
// the score once when a run ends.
func (m *GameModel) sync() tea.Cmd {
	st := m.game.State()

	var cmd tea.Cmd
	if m.steps != nil {
		interval := m.game.(registry.Ticked).Interval()
		switch {
		case st.Status != core.StatusRunning:
			if m.steps.Running() {
				m.steps.Stop()
			}
		case !m.steps.Running():
			m.steps.SetInterval(interval)
			cmd = m.steps.Start()
		default:
			cmd = m.steps.SetInterval(interval)
		}
	}

	if st.Status != m.status {
		m.log.Debug("status", "run", m.runID, "from", m.status, "to", st.Status, "score", st.Score)
		if st.Status == core.StatusRunning && m.status == core.StatusNotStarted {
			m.log.Info("game started", "run", m.runID)
		}
		m.status = st.Status
	}

	if st.Status == core.StatusOver && !m.scoreSaved {
		m.scoreSaved = true
		m.log.Info("game over", "run", m.runID, "score", st.Score, "best", st.Best)
		m.saveScore(st.Score)
	}
	return cmd
}

func (m *GameModel) saveScore(score int) {
	if m.opts.Store == nil || score <= 0 {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.game.ID(), m.opts.Player, score); err != nil {
		m.log.Error("score not saved", "run", m.runID, "err", err)
	}
}

func (m *GameModel) nextSeed() {
	if m.fixedSeed {
		m.cfg.Seed++
		return
	}
	m.cfg.Seed = time.Now().UnixNano()
}

// stop cancels every outstanding tick.
func (m *GameModel) stop() {
	if m.steps != nil {
		m.steps.Stop()
	}
	if m.frames != nil {
		m.frames.Stop()
	}
}

// saveScreenshot writes the current screen as plain text under
// ~/.arcade/screenshots.
func (m *GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the engine's screen with a key help footer.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting reports whether the user asked to leave the program.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user asked to return to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Game returns the engine being run.
func (m GameModel) Game() registry.Game {
	return m.game
}

// Run plays a single game in the current terminal until the user quits or
// asks for the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(game, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(GameModel); ok {
		m.stop()
	}
	return nil
}
