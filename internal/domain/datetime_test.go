package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDatetime(t *testing.T) {
	t.Run("T separator", func(t *testing.T) {
		date, timeOfDay, err := SplitDatetime("2026-09-15T10:30")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-15", date)
		assert.Equal(t, "10:30", timeOfDay)
	})

	t.Run("space separator", func(t *testing.T) {
		date, timeOfDay, err := SplitDatetime("2026-09-15 10:30:00")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-15", date)
		assert.Equal(t, "10:30", timeOfDay)
	})

	t.Run("seconds are ignored", func(t *testing.T) {
		_, timeOfDay, err := SplitDatetime("2026-09-15T10:30:45")
		require.NoError(t, err)
		assert.Equal(t, "10:30", timeOfDay)
	})

	t.Run("too short", func(t *testing.T) {
		_, _, err := SplitDatetime("2026-09-15")
		assert.ErrorIs(t, err, ErrInvalidDatetime)
	})

	t.Run("wrong separators", func(t *testing.T) {
		_, _, err := SplitDatetime("15.09.2026 10:30")
		assert.ErrorIs(t, err, ErrInvalidDatetime)
	})
}
