package model

import (
	"fmt"
	"time"
)

// FormatClock renders a countdown as MM:SS. Negative values clamp to
// zero; an hour or more spills into the minutes field.
func FormatClock(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	totalSeconds := int(remaining / time.Second)
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}

// Title returns a human-readable session name.
func (kind SessionKind) Title() string {
	switch kind {
	case SessionShortBreak:
		return "Short Break"
	case SessionLongBreak:
		return "Long Break"
	default:
		return "Work Session"
	}
}
