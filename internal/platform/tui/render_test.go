package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "plain")
	s.DrawTextColor(0, 1, "red", core.ColorRed)
	s.DrawTextColor(4, 1, "blue", core.ColorBlue)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	for i, line := range lines {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("line %d width = %d, want 12", i, w)
		}
	}
	if !strings.HasPrefix(lines[0], "plain") {
		t.Errorf("default-colored text should be unstyled: %q", lines[0])
	}
	if !strings.Contains(out, "red") || !strings.Contains(out, "blue") {
		t.Error("colored runs missing")
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(250)).Render("x"); got != "x" {
		t.Errorf("unknown color rendered %q, want plain", got)
	}
}
