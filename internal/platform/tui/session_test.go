package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/folio-arcade/internal/config"
	"github.com/vovakirdan/folio-arcade/internal/core"
	_ "github.com/vovakirdan/folio-arcade/internal/games/tictactoe"
)

func send(m SessionModel, msgs ...tea.Msg) SessionModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(SessionModel)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7, Difficulty: "hard"}, Options{})
	if m.menu.Difficulty() != config.DifficultyHard {
		t.Fatalf("difficulty = %v, want hard", m.menu.Difficulty())
	}

	m = send(m, runes("j"), tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame {
		t.Fatalf("view = %v, want game", m.view)
	}
	if m.game.Game().ID() != "tictactoe_cpu" {
		t.Errorf("started %q, want tictactoe_cpu", m.game.Game().ID())
	}
	if m.cfg.Difficulty != string(config.DifficultyFixed) {
		t.Errorf("session difficulty = %q, want fixed", m.cfg.Difficulty)
	}

	m = send(m, runes("b"))
	if m.view != viewMenu {
		t.Fatalf("back from a fresh game should show the menu")
	}
	if m.menu.cursor != 1 {
		t.Errorf("menu cursor = %d, want the last played game", m.menu.cursor)
	}
	if m.menu.Difficulty() != config.DifficultyFixed {
		t.Errorf("menu lost the chosen difficulty")
	}
}

func TestSessionScoreboardAndQuit(t *testing.T) {
	m := NewSessionModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, Options{Store: &recordingStore{}})

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScores {
		t.Fatalf("tab should open the scoreboard")
	}

	m = send(m, runes("b"))
	if m.view != viewMenu {
		t.Fatalf("back should return to the menu")
	}

	next, cmd := m.Update(runes("q"))
	m = next.(SessionModel)
	if !m.quitting || cmd == nil {
		t.Error("q should quit the session")
	}
	if m.View() != "" {
		t.Error("quitting session should render nothing")
	}
}
