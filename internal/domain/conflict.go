package domain

import (
	"time"

	"github.com/serenio-app/Serenio-Client/pkg/types"
)

// FindConflict returns the appointment that collides with the candidate
// (date, slot) pair, or nil when there is none. Only Booked appointments of
// the supplied list count: completed and cancelled entries do not block the
// slot. Dates are compared by calendar day only. Pure function: the server
// remains authoritative for conflicts with other users at submission time.
func FindConflict(appointments []Appointment, date time.Time, slot types.TimeString) *Appointment {
	for i := range appointments {
		appt := &appointments[i]
		if !appt.IsBooked() {
			continue
		}
		if SameCalendarDay(appt.Date, date) && appt.TimeSlot == slot {
			return appt
		}
	}
	return nil
}
