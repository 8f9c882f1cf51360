package model

import "time"

// DateLayout is the calendar-date format used for the daily reset marker.
const DateLayout = "2006-01-02"

// LogKind identifies a logged session. Break entries collapse the
// short/long distinction to a single generic kind.
type LogKind string

const (
	LogWork  LogKind = "work"
	LogBreak LogKind = "break"
)

// SessionLogEntry records one completed session. Duration is the
// configured session length at completion time, not elapsed wall time.
type SessionLogEntry struct {
	Kind      LogKind
	Timestamp time.Time
	Duration  time.Duration
}

// Statistics accumulates completed sessions across restarts. The lifetime
// totals survive day rollover; only TodaySessions is cleared when the
// stored date is no longer today.
type Statistics struct {
	TotalWorkTime  time.Duration
	TotalBreakTime time.Duration

	SessionsCompleted int

	TodaySessions []SessionLogEntry
	LastReset     string
}

// NewStatistics returns empty statistics stamped with today's date.
func NewStatistics(now time.Time) Statistics {
	return Statistics{LastReset: now.Format(DateLayout)}
}

// Clone returns a deep copy safe to hand to observers.
func (stats Statistics) Clone() Statistics {
	clone := stats
	clone.TodaySessions = append([]SessionLogEntry(nil), stats.TodaySessions...)
	return clone
}

// RolloverIfStale clears the daily session log when the stored reset date
// is not the calendar date of now. Lifetime totals are kept on purpose.
func (stats *Statistics) RolloverIfStale(now time.Time) bool {
	today := now.Format(DateLayout)
	if stats.LastReset == today {
		return false
	}
	stats.TodaySessions = nil
	stats.LastReset = today
	return true
}
