package core

// Status is the top-level state of every game session.
type Status int

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusPaused
	StatusOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// Lifecycle implements the start/pause/resume/reset transitions shared by all
// engines. Invalid transitions are no-ops and report false.
type Lifecycle struct {
	status Status
}

// Status returns the current status.
func (l *Lifecycle) Status() Status {
	return l.status
}

// Running reports whether the simulation should advance.
func (l *Lifecycle) Running() bool {
	return l.status == StatusRunning
}

// Start moves a fresh session to Running.
func (l *Lifecycle) Start() bool {
	if l.status != StatusNotStarted {
		return false
	}
	l.status = StatusRunning
	return true
}

// Pause suspends a running session.
func (l *Lifecycle) Pause() bool {
	if l.status != StatusRunning {
		return false
	}
	l.status = StatusPaused
	return true
}

// Resume continues a paused session.
func (l *Lifecycle) Resume() bool {
	if l.status != StatusPaused {
		return false
	}
	l.status = StatusRunning
	return true
}

// TogglePause flips between Running and Paused.
func (l *Lifecycle) TogglePause() bool {
	switch l.status {
	case StatusRunning:
		return l.Pause()
	case StatusPaused:
		return l.Resume()
	}
	return false
}

// Finish moves the session to the terminal Over state.
func (l *Lifecycle) Finish() {
	l.status = StatusOver
}

// Reset returns the session to NotStarted. Valid from any state.
func (l *Lifecycle) Reset() {
	l.status = StatusNotStarted
}

// Set overwrites the status. Engines use it to adopt the status computed by a
// pure step function.
func (l *Lifecycle) Set(s Status) {
	l.status = s
}
