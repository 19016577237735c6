package get_available_slots

import (
	"fmt"
	"time"

	"github.com/serenio-app/Serenio-Client/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.PsychologistID == "" {
		return fmt.Errorf("%w: psychologistID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Доступность прошедших дат не запрашивается - бронировать их нельзя
	if domain.DateOnly(req.Date).Before(domain.DateOnly(now)) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidInput)
	}

	return nil
}
