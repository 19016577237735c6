package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenio-app/Serenio-Client/pkg/types"
)

func TestGenerateDailySlots_DefaultSchedule(t *testing.T) {
	slots, err := GenerateDailySlots("09:00", "17:00", 60)
	require.NoError(t, err)

	// 09:00..17:00 включительно с шагом в час - девять слотов
	expected := []types.TimeString{
		"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00",
	}
	assert.Equal(t, expected, slots)
}

func TestGenerateDailySlots_Deterministic(t *testing.T) {
	first, err := GenerateDailySlots("09:00", "17:00", 60)
	require.NoError(t, err)

	second, err := GenerateDailySlots("09:00", "17:00", 60)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateDailySlots_HalfHourInterval(t *testing.T) {
	slots, err := GenerateDailySlots("09:00", "11:00", 30)
	require.NoError(t, err)

	expected := []types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00"}
	assert.Equal(t, expected, slots)
}

func TestGenerateDailySlots_SingleSlot(t *testing.T) {
	slots, err := GenerateDailySlots("09:00", "09:00", 60)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00"}, slots)
}

func TestGenerateDailySlots_Invalid(t *testing.T) {
	_, err := GenerateDailySlots("bad", "17:00", 60)
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)

	_, err = GenerateDailySlots("09:00", "bad", 60)
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)

	_, err = GenerateDailySlots("09:00", "17:00", 0)
	assert.ErrorIs(t, err, ErrInvalidSlotInterval)
}
