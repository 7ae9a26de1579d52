package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/folio-arcade/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPrintScores(t *testing.T) {
	store := openTestStore(t)
	for _, s := range []int{30, 90, 60} {
		if _, err := store.SaveScore("snake", "", s); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.SaveScore("snake", "alice", 10); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		limit int
		rows  int
	}{
		{"top two", 2, 2},
		{"all", 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := printScores(&buf, store, "snake", tt.limit); err != nil {
				t.Fatalf("printScores: %v", err)
			}
			out := buf.String()

			if got := strings.Count(out, "\n  ") - 2; got != tt.rows {
				t.Errorf("rows = %d, want %d\n%s", got, tt.rows, out)
			}
			if !strings.Contains(out, "Best: 90  Games: 4") {
				t.Errorf("missing totals:\n%s", out)
			}
			if strings.Index(out, " 90 ") > strings.Index(out, " 60 ") {
				t.Errorf("scores not ordered:\n%s", out)
			}
		})
	}
}

func TestPrintScoresAfterClear(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore("tetris", "", 400); err != nil {
		t.Fatal(err)
	}
	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores: %v", err)
	}

	var buf bytes.Buffer
	if err := printScores(&buf, store, "tetris", 10); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("cleared game still has scores:\n%s", buf.String())
	}
}

func TestPrintSummary(t *testing.T) {
	store := openTestStore(t)

	var buf bytes.Buffer
	if err := printSummary(&buf, store); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("empty summary = %q", buf.String())
	}

	for _, s := range []struct {
		game  string
		score int
	}{{"pong", 5}, {"pong", 3}, {"roadrush", 700}} {
		if _, err := store.SaveScore(s.game, "", s.score); err != nil {
			t.Fatal(err)
		}
	}

	buf.Reset()
	if err := printSummary(&buf, store); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{"pong", "roadrush", "700"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "tetris") {
		t.Errorf("unplayed game listed:\n%s", out)
	}
	if strings.Index(out, "pong") > strings.Index(out, "roadrush") {
		t.Errorf("summary not in registry order:\n%s", out)
	}
}
