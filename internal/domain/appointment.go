package domain

import (
	"time"

	"github.com/serenio-app/Serenio-Client/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusBooked    AppointmentStatus = "Booked"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// Appointment represents a session with a psychologist.
// The backend store is authoritative; the client holds a per-session cache.
type Appointment struct {
	ID             string
	UserID         string
	PsychologistID string
	Date           time.Time        // Календарный день, время внутри дня не несет смысла
	TimeSlot       types.TimeString // Метка слота из фиксированного набора
	Reason         *string
	Status         AppointmentStatus

	// Denormalized data for display
	PsychologistName string
	Specialization   string
	PaymentStatus    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBooked returns true if the appointment is still upcoming
func (a *Appointment) IsBooked() bool {
	return a.Status == StatusBooked
}

// CanBeCancelled returns true if the appointment can be cancelled by the user
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusBooked
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// StatusRank returns the display ordering rank of the status:
// Booked < Completed < Cancelled, unknown statuses last
func (a *Appointment) StatusRank() int {
	switch a.Status {
	case StatusBooked:
		return 1
	case StatusCompleted:
		return 2
	case StatusCancelled:
		return 3
	default:
		return 4
	}
}

// SameCalendarDay reports whether two dates fall on the same calendar day.
// Serialized dates may carry time-of-day and timezone noise; only the
// year/month/day triple is compared.
func SameCalendarDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly strips the time-of-day component from a date
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
