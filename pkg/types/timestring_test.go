package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("accepts HH:MM", func(t *testing.T) {
		ts, err := NewTimeStringFromString("09:30")
		require.NoError(t, err)
		assert.Equal(t, "09:30", ts.String())
	})

	t.Run("drops seconds", func(t *testing.T) {
		ts, err := NewTimeStringFromString("09:30:00")
		require.NoError(t, err)
		assert.Equal(t, "09:30", ts.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := NewTimeStringFromString("morning")
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})

	t.Run("rejects out of range", func(t *testing.T) {
		_, err := NewTimeStringFromString("25:00")
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 3, 1, 8, 5, 59, 0, time.UTC))
	assert.Equal(t, "08:05", ts.String())
}

func TestTimeString_Ordering(t *testing.T) {
	early, _ := NewTimeStringFromString("09:00")
	late, _ := NewTimeStringFromString("10:30")

	assert.True(t, early.IsBefore(late))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsAfter(early))
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("within the day", func(t *testing.T) {
		ts, _ := NewTimeStringFromString("10:00")
		shifted, err := ts.AddMinutes(90)
		require.NoError(t, err)
		assert.Equal(t, "11:30", shifted.String())
	})

	t.Run("crossing midnight is an error", func(t *testing.T) {
		ts, _ := NewTimeStringFromString("23:30")
		_, err := ts.AddMinutes(60)
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}
