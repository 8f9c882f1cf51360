package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireSingleInstance(t *testing.T) {
	guard, err := AcquireSingleInstance("PomodoroTest")
	require.NoError(t, err)
	defer func() {
		_ = guard.Release()
	}()

	_, err = AcquireSingleInstance("PomodoroTest")
	assert.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestReleaseAllowsReacquire(t *testing.T) {
	guard, err := AcquireSingleInstance("PomodoroTestRelease")
	require.NoError(t, err)
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance("PomodoroTestRelease")
	require.NoError(t, err)
	_ = again.Release()
}

func TestReleaseNilGuard(t *testing.T) {
	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
}
