package domain

// Default schedule configuration
const (
	DefaultScheduleStart       = "09:00"
	DefaultScheduleEnd         = "17:00"
	DefaultSlotIntervalMinutes = 60
	DefaultAdvanceBookingDays  = 90
)

// Business validation constants
const (
	MinSlotIntervalMinutes = 15
	MaxSlotIntervalMinutes = 240
	MinAdvanceBookingDays  = 1
	MaxAdvanceBookingDays  = 365
	MaxReasonLength        = 500
)

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Известные роли пользователей
const (
	RoleUser         = "user"
	RolePsychologist = "psychologist"
	RoleAdmin        = "admin"
)
