package book_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/serenio-app/Serenio-Client/internal/domain"
)

// validateDraft прогоняет черновик через упорядоченную цепочку правил
// Первое нарушенное правило прерывает проверку конкретной ошибкой;
// до прохождения всех правил сетевой вызов не выполняется
//
// Возвращает распарсенную дату для последующей отправки
func validateDraft(
	draft *Draft,
	existing []domain.Appointment,
	now time.Time,
	advanceBookingDays int,
	requireReason bool,
) (time.Time, error) {
	// 1. Психолог выбран
	if draft.Psychologist == nil || draft.Psychologist.ID == "" {
		return time.Time{}, ErrNoPsychologist
	}

	// 2. Дата выбрана и парсится
	if draft.Date == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	date, err := time.Parse(domain.DateFormat, draft.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected format YYYY-MM-DD", ErrInvalidDate)
	}

	// 3. Дата не в прошлом (сравнение по календарному дню)
	today := domain.DateOnly(now)
	if domain.DateOnly(date).Before(today) {
		return time.Time{}, ErrDateInPast
	}

	// 4. Дата в пределах горизонта бронирования
	maxDate := today.AddDate(0, 0, advanceBookingDays)
	if domain.DateOnly(date).After(maxDate) {
		return time.Time{}, fmt.Errorf("%w: can only book %d days in advance",
			ErrDateTooFarInFuture, advanceBookingDays)
	}

	// 5. Слот выбран и корректен
	if draft.TimeSlot.IsZero() {
		return time.Time{}, ErrNoSlot
	}
	if err := draft.TimeSlot.Validate(); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrNoSlot, err)
	}

	// 6. Нет локального конфликта с собственными записями
	if conflict := domain.FindConflict(existing, date, draft.TimeSlot); conflict != nil {
		return time.Time{}, fmt.Errorf("%w: appointment id=%s at %s %s",
			ErrLocalConflict, conflict.ID,
			conflict.Date.Format(domain.DateFormat), conflict.TimeSlot)
	}

	// 7. Причина, если ее требует политика
	reason := strings.TrimSpace(draft.Reason)
	if requireReason && reason == "" {
		return time.Time{}, ErrReasonRequired
	}
	if len(reason) > domain.MaxReasonLength {
		return time.Time{}, fmt.Errorf("%w: max %d characters", ErrReasonTooLong, domain.MaxReasonLength)
	}

	return date, nil
}
