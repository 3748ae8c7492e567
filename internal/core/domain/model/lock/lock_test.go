package lock_test

import (
	"testing"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/lock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLock(t *testing.T) {
	taskID := kernel.NewUUID()
	operatorID := kernel.NewUUID()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("should treat acquisition as the first heartbeat", func(t *testing.T) {
		l, err := lock.NewLock(taskID, operatorID, now)

		require.NoError(t, err)
		assert.Equal(t, now, l.AcquiredAt())
		assert.Equal(t, now, l.LastHeartbeat())
		assert.True(t, l.IsOwnedBy(operatorID))
		assert.False(t, l.IsOwnedBy(kernel.NewUUID()))
	})

	t.Run("should reject invalid identifiers", func(t *testing.T) {
		_, err := lock.NewLock(kernel.UUID{}, operatorID, now)
		require.Error(t, err)

		_, err = lock.NewLock(taskID, kernel.UUID{}, now)
		require.Error(t, err)
	})
}

func TestLock_IsActive(t *testing.T) {
	taskID := kernel.NewUUID()
	operatorID := kernel.NewUUID()
	acquired := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	l, err := lock.NewLock(taskID, operatorID, acquired)
	require.NoError(t, err)

	t.Run("should be active within the timeout window", func(t *testing.T) {
		assert.True(t, l.IsActive(acquired.Add(29*time.Second), lock.DefaultTimeout))
	})

	t.Run("should go stale exactly at the timeout", func(t *testing.T) {
		assert.False(t, l.IsActive(acquired.Add(lock.DefaultTimeout), lock.DefaultTimeout))
	})

	t.Run("should stay stale after the timeout", func(t *testing.T) {
		assert.False(t, l.IsActive(acquired.Add(time.Hour), lock.DefaultTimeout))
	})
}

func TestLock_Heartbeat(t *testing.T) {
	taskID := kernel.NewUUID()
	operatorID := kernel.NewUUID()
	acquired := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("should extend liveness", func(t *testing.T) {
		l, err := lock.NewLock(taskID, operatorID, acquired)
		require.NoError(t, err)

		beat := acquired.Add(25 * time.Second)
		l.Heartbeat(beat)

		assert.Equal(t, beat, l.LastHeartbeat())
		assert.True(t, l.IsActive(beat.Add(29*time.Second), lock.DefaultTimeout))
	})

	t.Run("should revive a stale lock", func(t *testing.T) {
		l, err := lock.NewLock(taskID, operatorID, acquired)
		require.NoError(t, err)

		late := acquired.Add(5 * time.Minute)
		require.False(t, l.IsActive(late, lock.DefaultTimeout))

		l.Heartbeat(late)

		assert.True(t, l.IsActive(late.Add(time.Second), lock.DefaultTimeout))
	})

	t.Run("should ignore an out-of-order heartbeat", func(t *testing.T) {
		l, err := lock.NewLock(taskID, operatorID, acquired)
		require.NoError(t, err)

		l.Heartbeat(acquired.Add(20 * time.Second))
		l.Heartbeat(acquired.Add(10 * time.Second))

		assert.Equal(t, acquired.Add(20*time.Second), l.LastHeartbeat())
	})
}

func TestRestoreLock(t *testing.T) {
	taskID := kernel.NewUUID()
	operatorID := kernel.NewUUID()
	acquired := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	beat := acquired.Add(90 * time.Second)

	l, err := lock.RestoreLock(taskID, operatorID, acquired, beat)

	require.NoError(t, err)
	assert.Equal(t, acquired, l.AcquiredAt())
	assert.Equal(t, beat, l.LastHeartbeat())
	assert.NoError(t, l.Validate())
}
