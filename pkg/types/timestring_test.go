package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)
	assert.Equal(t, "09:00", ts.String())

	for _, bad := range []string{"", "9:00:00", "25:00", "09:60", "morning"} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", bad)
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 10, 15, 14, 30, 45, 0, time.UTC))
	assert.Equal(t, TimeString("14:30"), ts)
}

func TestTimeStringOrdering(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("10:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
	assert.False(t, a.IsBefore(a))
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("09:00")

	next, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), next)

	next, err = ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), next)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringIsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("09:00").IsZero())
}
