package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, "https://serenio-production.up.railway.app", cfg.API.BaseURL)
	assert.Equal(t, 15, cfg.API.Timeout)
	assert.Equal(t, "09:00", cfg.Booking.ScheduleStart)
	assert.Equal(t, "17:00", cfg.Booking.ScheduleEnd)
	assert.Equal(t, 60, cfg.Booking.SlotIntervalMinutes)
	assert.Equal(t, 90, cfg.Booking.AdvanceBookingDays)
	assert.False(t, cfg.Booking.RequireReason)
	assert.NotEmpty(t, cfg.Session.TokenFile)
	assert.Equal(t, "info", cfg.Logs.Level)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[api]
base_url = "http://localhost:5000"
timeout = 5

[booking]
schedule_start = "08:00"
schedule_end = "20:00"
slot_interval_minutes = 30
advance_booking_days = 30
require_reason = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", cfg.API.BaseURL)
	assert.Equal(t, 5, cfg.API.Timeout)
	assert.Equal(t, "08:00", cfg.Booking.ScheduleStart)
	assert.Equal(t, 30, cfg.Booking.SlotIntervalMinutes)
	assert.Equal(t, 30, cfg.Booking.AdvanceBookingDays)
	assert.True(t, cfg.Booking.RequireReason)
}

func TestLoad_RejectsOutOfRangeValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[booking]
slot_interval_minutes = 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
