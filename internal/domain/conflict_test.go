package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFindConflict_BookedSameDaySameSlot(t *testing.T) {
	existing := []Appointment{
		{ID: "a1", Date: day(2026, 9, 10), TimeSlot: "10:00", Status: StatusBooked},
	}

	conflict := FindConflict(existing, day(2026, 9, 10), "10:00")
	require.NotNil(t, conflict)
	assert.Equal(t, "a1", conflict.ID)
}

func TestFindConflict_NoConflictOnDifferentSlotOrDay(t *testing.T) {
	existing := []Appointment{
		{ID: "a1", Date: day(2026, 9, 10), TimeSlot: "10:00", Status: StatusBooked},
	}

	assert.Nil(t, FindConflict(existing, day(2026, 9, 10), "11:00"))
	assert.Nil(t, FindConflict(existing, day(2026, 9, 11), "10:00"))
}

func TestFindConflict_IgnoresNonBooked(t *testing.T) {
	existing := []Appointment{
		{ID: "a1", Date: day(2026, 9, 10), TimeSlot: "10:00", Status: StatusCancelled},
		{ID: "a2", Date: day(2026, 9, 10), TimeSlot: "10:00", Status: StatusCompleted},
	}

	assert.Nil(t, FindConflict(existing, day(2026, 9, 10), "10:00"))
}

func TestFindConflict_TimeOfDayNoise(t *testing.T) {
	// Дата с сервера может нести компоненту времени - сравнение идет по дню
	existing := []Appointment{
		{ID: "a1", Date: time.Date(2026, 9, 10, 18, 45, 0, 0, time.UTC), TimeSlot: "10:00", Status: StatusBooked},
	}

	conflict := FindConflict(existing, day(2026, 9, 10), "10:00")
	require.NotNil(t, conflict)
	assert.Equal(t, "a1", conflict.ID)
}

func TestFindConflict_Idempotent(t *testing.T) {
	existing := []Appointment{
		{ID: "a1", Date: day(2026, 9, 10), TimeSlot: "10:00", Status: StatusBooked},
		{ID: "a2", Date: day(2026, 9, 11), TimeSlot: "09:00", Status: StatusBooked},
	}

	first := FindConflict(existing, day(2026, 9, 10), "10:00")
	second := FindConflict(existing, day(2026, 9, 10), "10:00")

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)
}
