package book_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/serenio-app/Serenio-Client/internal/domain"
	"github.com/serenio-app/Serenio-Client/internal/integrations/serenioapi"
)

// UseCase use case отправки бронирования
//
// Каждая попытка проходит машину состояний
// Idle -> Validating -> Submitting -> {Succeeded | Rejected}.
// Одновременно допускается только одна попытка: повторная отправка до
// завершения предыдущей отклоняется без сетевого вызова.
type UseCase struct {
	client       SerenioClient
	cache        AppointmentCache
	availability AvailabilityInvalidator
	timeProvider TimeProvider
	logger       Logger

	advanceBookingDays int
	requireReason      bool

	inFlight atomic.Bool

	mu    sync.Mutex
	state State
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	client SerenioClient,
	cache AppointmentCache,
	availability AvailabilityInvalidator,
	advanceBookingDays int,
	requireReason bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:             client,
		cache:              cache,
		availability:       availability,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
		advanceBookingDays: advanceBookingDays,
		requireReason:      requireReason,
		state:              StateIdle,
	}
}

// State возвращает состояние текущей (или последней) попытки
func (uc *UseCase) State() State {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

func (uc *UseCase) setState(s State) {
	uc.mu.Lock()
	uc.state = s
	uc.mu.Unlock()
}

// Execute выполняет попытку бронирования по черновику
// При успехе черновик считается израсходованным: вызывающая сторона обязана
// его отбросить и показать результат вместе с передачей на шаг оплаты
func (uc *UseCase) Execute(ctx context.Context, draft *Draft) (*Response, error) {
	// Защита от двойной отправки: вторая попытка во время первой не должна
	// породить второй сетевой запрос
	if !uc.inFlight.CompareAndSwap(false, true) {
		uc.logger.Warn("BookAppointment: duplicate submission blocked")
		return nil, ErrSubmissionInFlight
	}
	defer uc.inFlight.Store(false)

	uc.setState(StateValidating)

	// 1. Локальная валидация черновика - при провале сеть не трогаем
	now := uc.timeProvider.Now()
	date, err := validateDraft(draft, uc.cache.Cached(), now, uc.advanceBookingDays, uc.requireReason)
	if err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		uc.setState(StateRejected)
		return nil, err
	}

	uc.logger.Info("BookAppointment: psychologist=%s, date=%s, slot=%s",
		draft.Psychologist.ID, draft.Date, draft.TimeSlot)

	// 2. Отправка на сервер - сервер авторитетен по занятости слота
	uc.setState(StateSubmitting)

	req := &serenioapi.BookAppointmentRequest{
		PsychologistID: draft.Psychologist.ID,
		Date:           date.Format(domain.DateFormat),
		TimeSlot:       draft.TimeSlot.String(),
	}
	if reason := strings.TrimSpace(draft.Reason); reason != "" {
		req.Reason = &reason
	}

	created, err := uc.client.BookAppointment(ctx, req, uuid.NewString())
	if err != nil {
		uc.setState(StateRejected)
		return nil, uc.mapServerError(err)
	}

	appointment, err := created.ToDomain()
	if err != nil {
		uc.logger.Error("BookAppointment: malformed appointment in response: %v", err)
		uc.setState(StateRejected)
		return nil, fmt.Errorf("%w: malformed response: %v", ErrInternal, err)
	}

	// 3. Обновляем кэш записей (best-effort: бронирование уже подтверждено)
	if err := uc.cache.Refresh(ctx); err != nil {
		uc.logger.Warn("BookAppointment: failed to refresh appointments after booking: %v", err)
	}

	uc.setState(StateSucceeded)
	uc.logger.Info("BookAppointment: successfully booked appointment id=%s", appointment.ID)

	return &Response{
		Appointment: appointment,
		Payment: &PaymentHandoff{
			Psychologist: draft.Psychologist,
			Price:        draft.Psychologist.EffectivePrice(),
			Appointment:  appointment,
		},
	}, nil
}

// mapServerError переводит исходы сервера в ошибки usecase
func (uc *UseCase) mapServerError(err error) error {
	switch {
	case errors.Is(err, serenioapi.ErrSlotConflict):
		// Слот перехвачен другим бронированием: снимок доступности устарел,
		// выбранный слот нельзя переотправить без повторного выбора
		uc.logger.Warn("BookAppointment: slot conflict reported by server")
		uc.availability.Invalidate()
		return fmt.Errorf("%w: %v", ErrSlotConflict, err)

	case errors.Is(err, serenioapi.ErrNotFound):
		uc.logger.Warn("BookAppointment: psychologist no longer exists")
		return ErrPsychologistNotFound

	case errors.Is(err, serenioapi.ErrValidation):
		return fmt.Errorf("%w: %v", ErrRejectedByServer, err)

	case errors.Is(err, serenioapi.ErrAuthExpired):
		// Сессия уже очищена хуком клиента - пробрасываем для редиректа на вход
		return err

	default:
		uc.logger.Error("BookAppointment: submission failed: %v", err)
		return err
	}
}
