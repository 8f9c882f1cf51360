package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
)

func TestLoadSettingsFileMissing(t *testing.T) {
	config, err := LoadSettingsFile(filepath.Join(t.TempDir(), "settings.yaml"))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), config)
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	saved := model.Config{
		WorkDuration:          50 * time.Minute,
		ShortBreakDuration:    10 * time.Minute,
		LongBreakDuration:     30 * time.Minute,
		CyclesBeforeLongBreak: 3,
		AutoStartBreaks:       true,
		AutoStartWork:         false,
	}
	require.NoError(t, SaveSettingsFile(path, saved))

	loaded, err := LoadSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestLoadSettingsIgnoresUnusableValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	raw := `
work_minutes: -5
short_break_minutes: 0
long_break_minutes: 20
cycles_before_long_break: 0
auto_start_breaks: true
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	config, err := LoadSettingsFile(path)
	require.NoError(t, err)

	defaults := model.DefaultConfig()
	assert.Equal(t, defaults.WorkDuration, config.WorkDuration)
	assert.Equal(t, defaults.ShortBreakDuration, config.ShortBreakDuration)
	assert.Equal(t, 20*time.Minute, config.LongBreakDuration)
	assert.Equal(t, defaults.CyclesBeforeLongBreak, config.CyclesBeforeLongBreak)
	assert.True(t, config.AutoStartBreaks)
	assert.False(t, config.AutoStartWork)
}

func TestLoadSettingsFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("work_minutes: [nope"), 0o644))

	config, err := LoadSettingsFile(path)
	require.Error(t, err)
	// Defaults still come back so the caller can proceed.
	assert.Equal(t, model.DefaultConfig(), config)
}
