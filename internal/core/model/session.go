package model

import "time"

// SessionKind identifies the kind of session being timed.
type SessionKind string

const (
	SessionWork       SessionKind = "work"
	SessionShortBreak SessionKind = "short_break"
	SessionLongBreak  SessionKind = "long_break"
)

// IsBreak reports whether the kind is one of the break kinds.
func (kind SessionKind) IsBreak() bool {
	return kind == SessionShortBreak || kind == SessionLongBreak
}

// RunState identifies whether the timer is advancing.
type RunState string

const (
	RunIdle    RunState = "idle"
	RunRunning RunState = "running"
	RunPaused  RunState = "paused"
)

// SessionState is the mutable core of the engine: the current countdown
// and its position within the work/break cycle.
type SessionState struct {
	Remaining time.Duration
	Kind      SessionKind
	RunState  RunState

	Cycle       int
	TotalCycles int

	CompletedWorkSessions  int
	CompletedBreakSessions int
}

// NewSessionState returns the construction-time session state for config:
// a full idle work session at cycle one.
func NewSessionState(config Config) SessionState {
	return SessionState{
		Remaining:   config.WorkDuration,
		Kind:        SessionWork,
		RunState:    RunIdle,
		Cycle:       1,
		TotalCycles: config.CyclesBeforeLongBreak,
	}
}

// Progress returns how far the current session has advanced, in [0, 1].
func (session SessionState) Progress(config Config) float64 {
	total := config.DurationFor(session.Kind)
	if total <= 0 {
		return 1
	}
	progress := float64(total-session.Remaining) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}
