package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/serenio-app/Serenio-Client/internal/domain"
)

// Config корневая конфигурация клиента
type Config struct {
	API     APIConfig     `toml:"api"`
	Booking BookingConfig `toml:"booking"`
	Session SessionConfig `toml:"session"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
}

// APIConfig настройки подключения к backend
type APIConfig struct {
	BaseURL string `toml:"base_url"`
	Timeout int    `toml:"timeout"` // секунды
}

// BookingConfig политика бронирования на стороне клиента
type BookingConfig struct {
	ScheduleStart       string `toml:"schedule_start"`        // "09:00"
	ScheduleEnd         string `toml:"schedule_end"`          // "17:00"
	SlotIntervalMinutes int    `toml:"slot_interval_minutes"` // шаг сетки слотов
	AdvanceBookingDays  int    `toml:"advance_booking_days"`  // горизонт бронирования
	RequireReason       bool   `toml:"require_reason"`        // строгий вариант формы
}

// SessionConfig хранение сессии
type SessionConfig struct {
	TokenFile string `toml:"token_file"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик клиента
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
}

// Load загружает конфигурацию из TOML файла и применяет дефолты
// Отсутствие файла не является ошибкой - используются дефолтные значения
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("config: failed to decode %s: %v", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: failed to stat %s: %v", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = "https://serenio-production.up.railway.app"
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = 15
	}

	if c.Booking.ScheduleStart == "" {
		c.Booking.ScheduleStart = domain.DefaultScheduleStart
	}
	if c.Booking.ScheduleEnd == "" {
		c.Booking.ScheduleEnd = domain.DefaultScheduleEnd
	}
	if c.Booking.SlotIntervalMinutes <= 0 {
		c.Booking.SlotIntervalMinutes = domain.DefaultSlotIntervalMinutes
	}
	if c.Booking.AdvanceBookingDays <= 0 {
		c.Booking.AdvanceBookingDays = domain.DefaultAdvanceBookingDays
	}

	if c.Session.TokenFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		c.Session.TokenFile = filepath.Join(home, ".serenio", "session.json")
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "serenio-client"
	}
}

func (c *Config) validate() error {
	if c.Booking.SlotIntervalMinutes < domain.MinSlotIntervalMinutes ||
		c.Booking.SlotIntervalMinutes > domain.MaxSlotIntervalMinutes {
		return fmt.Errorf("config: slot_interval_minutes must be between %d and %d",
			domain.MinSlotIntervalMinutes, domain.MaxSlotIntervalMinutes)
	}

	if c.Booking.AdvanceBookingDays < domain.MinAdvanceBookingDays ||
		c.Booking.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("config: advance_booking_days must be between %d and %d",
			domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	return nil
}
