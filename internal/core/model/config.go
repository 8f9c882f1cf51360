package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig indicates a rejected timer configuration.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config contains the timer durations and session policies.
// It is replaced wholesale on reconfiguration, never partially mutated.
type Config struct {
	WorkDuration       time.Duration
	ShortBreakDuration time.Duration
	LongBreakDuration  time.Duration

	CyclesBeforeLongBreak int

	AutoStartBreaks bool
	AutoStartWork   bool
}

// DefaultConfig returns the classic pomodoro defaults.
func DefaultConfig() Config {
	return Config{
		WorkDuration:          25 * time.Minute,
		ShortBreakDuration:    5 * time.Minute,
		LongBreakDuration:     15 * time.Minute,
		CyclesBeforeLongBreak: 4,
	}
}

// Validate reports whether the configuration is usable.
func (config Config) Validate() error {
	if config.WorkDuration <= 0 {
		return fmt.Errorf("%w: work duration must be positive", ErrInvalidConfig)
	}
	if config.ShortBreakDuration <= 0 {
		return fmt.Errorf("%w: short break duration must be positive", ErrInvalidConfig)
	}
	if config.LongBreakDuration <= 0 {
		return fmt.Errorf("%w: long break duration must be positive", ErrInvalidConfig)
	}
	if config.CyclesBeforeLongBreak < 1 {
		return fmt.Errorf("%w: cycles before long break must be at least 1", ErrInvalidConfig)
	}
	return nil
}

// DurationFor returns the configured full duration of a session kind.
func (config Config) DurationFor(kind SessionKind) time.Duration {
	switch kind {
	case SessionShortBreak:
		return config.ShortBreakDuration
	case SessionLongBreak:
		return config.LongBreakDuration
	default:
		return config.WorkDuration
	}
}
