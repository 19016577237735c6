package domain

import (
	"errors"

	"github.com/serenio-app/Serenio-Client/pkg/types"
)

// ErrInvalidSlotInterval возвращается при неположительном шаге сетки слотов
var ErrInvalidSlotInterval = errors.New("domain: slot interval must be positive")

// GenerateDailySlots produces the canonical ordered set of bookable slot
// labels for a working day. Pure function of (start, end, interval):
// deterministic and identical across calls. The end label is inclusive,
// so the default 09:00-17:00 hourly schedule yields nine slots.
func GenerateDailySlots(start, end types.TimeString, intervalMinutes int) ([]types.TimeString, error) {
	if intervalMinutes <= 0 {
		return nil, ErrInvalidSlotInterval
	}
	if err := start.Validate(); err != nil {
		return nil, err
	}
	if err := end.Validate(); err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0)
	current := start

	for !current.IsAfter(end) {
		slots = append(slots, current)

		next, err := current.AddMinutes(intervalMinutes)
		if err != nil {
			// Шагнули за пределы суток - день закончился
			break
		}
		current = next
	}

	return slots, nil
}
