package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero work", func(config *Config) { config.WorkDuration = 0 }},
		{"negative work", func(config *Config) { config.WorkDuration = -time.Second }},
		{"zero short break", func(config *Config) { config.ShortBreakDuration = 0 }},
		{"zero long break", func(config *Config) { config.LongBreakDuration = 0 }},
		{"zero cycles", func(config *Config) { config.CyclesBeforeLongBreak = 0 }},
	}
	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			config := DefaultConfig()
			testCase.mutate(&config)
			assert.ErrorIs(t, config.Validate(), ErrInvalidConfig)
		})
	}
}

func TestDurationFor(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, config.WorkDuration, config.DurationFor(SessionWork))
	assert.Equal(t, config.ShortBreakDuration, config.DurationFor(SessionShortBreak))
	assert.Equal(t, config.LongBreakDuration, config.DurationFor(SessionLongBreak))
}

func TestNewSessionState(t *testing.T) {
	config := DefaultConfig()
	session := NewSessionState(config)

	assert.Equal(t, config.WorkDuration, session.Remaining)
	assert.Equal(t, SessionWork, session.Kind)
	assert.Equal(t, RunIdle, session.RunState)
	assert.Equal(t, 1, session.Cycle)
	assert.Equal(t, config.CyclesBeforeLongBreak, session.TotalCycles)
}

func TestProgress(t *testing.T) {
	config := DefaultConfig()
	session := NewSessionState(config)

	assert.Equal(t, 0.0, session.Progress(config))

	session.Remaining = config.WorkDuration / 4
	assert.InDelta(t, 0.75, session.Progress(config), 0.001)

	session.Remaining = 0
	assert.Equal(t, 1.0, session.Progress(config))

	// Out-of-range values clamp.
	session.Remaining = -time.Second
	assert.Equal(t, 1.0, session.Progress(config))
	session.Remaining = config.WorkDuration * 2
	assert.Equal(t, 0.0, session.Progress(config))
}

func TestStatisticsClone(t *testing.T) {
	stats := Statistics{
		SessionsCompleted: 1,
		TodaySessions: []SessionLogEntry{
			{Kind: LogWork, Timestamp: time.Now(), Duration: 25 * time.Minute},
		},
	}

	clone := stats.Clone()
	clone.TodaySessions[0].Kind = LogBreak

	assert.Equal(t, LogWork, stats.TodaySessions[0].Kind)
}

func TestRolloverIfStale(t *testing.T) {
	now := time.Now()
	stats := Statistics{
		TotalWorkTime:     2 * time.Hour,
		SessionsCompleted: 5,
		TodaySessions:     []SessionLogEntry{{Kind: LogWork}},
		LastReset:         now.AddDate(0, 0, -1).Format(DateLayout),
	}

	require.True(t, stats.RolloverIfStale(now))
	assert.Empty(t, stats.TodaySessions)
	assert.Equal(t, now.Format(DateLayout), stats.LastReset)
	assert.Equal(t, 2*time.Hour, stats.TotalWorkTime)
	assert.Equal(t, 5, stats.SessionsCompleted)

	// Same-day load keeps the log.
	stats.TodaySessions = []SessionLogEntry{{Kind: LogBreak}}
	require.False(t, stats.RolloverIfStale(now))
	assert.Len(t, stats.TodaySessions, 1)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "25:00", FormatClock(25*time.Minute))
	assert.Equal(t, "00:09", FormatClock(9*time.Second))
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "00:00", FormatClock(-5*time.Second))
	assert.Equal(t, "90:00", FormatClock(90*time.Minute))
}

func TestKindHelpers(t *testing.T) {
	assert.False(t, SessionWork.IsBreak())
	assert.True(t, SessionShortBreak.IsBreak())
	assert.True(t, SessionLongBreak.IsBreak())

	assert.Equal(t, "Work Session", SessionWork.Title())
	assert.Equal(t, "Short Break", SessionShortBreak.Title())
	assert.Equal(t, "Long Break", SessionLongBreak.Title())
}
