package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/folio-arcade/internal/core"
	"github.com/vovakirdan/folio-arcade/internal/registry"
)

type view int

const (
	viewMenu view = iota
	viewGame
	viewScores
)

// SessionModel manages the full arcade flow: menu, game and scoreboard. It is
// the top-level model for both local menu play and SSH sessions; every
// session owns its own engines and tickers.
type SessionModel struct {
	cfg      core.RuntimeConfig
	opts     Options
	view     view
	menu     MenuModel
	game     GameModel
	scores   ScoreboardModel
	lastGame string
	quitting bool
}

// NewSessionModel creates a session starting at the menu. cfg.Difficulty
// preselects the menu's difficulty.
func NewSessionModel(cfg core.RuntimeConfig, opts Options) SessionModel {
	return SessionModel{
		cfg:  cfg,
		opts: opts,
		menu: NewMenuModel(opts.Store, cfg.Difficulty, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen and handles transitions.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.ScreenW = wsm.Width
		m.cfg.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.opts.Store, m.lastGame, m.cfg.ScreenW, m.cfg.ScreenH)
		m.view = viewScores
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		selected := m.menu.Selected()
		game, err := registry.Create(selected.GameID)
		if err != nil {
			m.opts.logger().Error("cannot create game", "game", selected.GameID, "err", err)
			m.menu = m.freshMenu()
			return m, nil
		}

		cfg := m.cfg
		cfg.Difficulty = string(m.menu.Difficulty())
		m.cfg.Difficulty = cfg.Difficulty
		m.lastGame = selected.GameID
		m.game = NewGameModel(game, cfg, m.opts)
		m.view = viewGame
		return m, m.game.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.game.BackToMenu():
		m.menu = m.freshMenu()
		m.view = viewMenu
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.scores.IsGoingBack():
		m.menu = m.freshMenu()
		m.view = viewMenu
		return m, m.menu.Init()
	}

	return m, cmd
}

// freshMenu rebuilds the menu so best scores are current, keeping the cursor
// on the last played game.
func (m SessionModel) freshMenu() MenuModel {
	menu := NewMenuModel(m.opts.Store, m.cfg.Difficulty, m.cfg.ScreenW, m.cfg.ScreenH)
	for i, item := range menu.items {
		if item.GameID == m.lastGame {
			menu.cursor = i
		}
	}
	return menu
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven arcade in the current terminal.
func RunSession(cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
