package core

import "testing"

func TestLifecycleTransitions(t *testing.T) {
	var l Lifecycle

	if l.Status() != StatusNotStarted {
		t.Fatalf("zero value should be NotStarted, got %v", l.Status())
	}
	if l.Pause() || l.Resume() || l.TogglePause() {
		t.Fatal("pause/resume must be no-ops before start")
	}

	if !l.Start() || !l.Running() {
		t.Fatal("Start should move to Running")
	}
	if l.Start() {
		t.Error("Start should be a no-op while running")
	}
	if l.Resume() {
		t.Error("Resume should be a no-op unless paused")
	}

	if !l.TogglePause() || l.Status() != StatusPaused {
		t.Fatalf("TogglePause should pause, got %v", l.Status())
	}
	if l.Pause() {
		t.Error("Pause should be a no-op while paused")
	}
	if !l.TogglePause() || !l.Running() {
		t.Fatalf("TogglePause should resume, got %v", l.Status())
	}

	l.Finish()
	if l.TogglePause() || l.Pause() || l.Start() {
		t.Error("no transition other than Reset is valid once over")
	}

	l.Reset()
	if l.Status() != StatusNotStarted {
		t.Errorf("Reset should return to NotStarted, got %v", l.Status())
	}
}

func TestStatusString(t *testing.T) {
	tests := map[Status]string{
		StatusNotStarted: "not_started",
		StatusRunning:    "running",
		StatusPaused:     "paused",
		StatusOver:       "over",
		Status(42):       "unknown",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("Status(%d).String() = %q, expected %q", s, s.String(), want)
		}
	}
}
