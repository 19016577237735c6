package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/serenio-app/Serenio-Client/internal/domain"
	"github.com/serenio-app/Serenio-Client/internal/integrations/serenioapi"
	"github.com/serenio-app/Serenio-Client/pkg/types"
)

// UseCase use case получения доступных слотов психолога на дату
//
// Реализует упорядочивание "последний запрос побеждает": смена даты или
// психолога порождает новый запрос, и результат любого более раннего запроса,
// пришедший после этого, отбрасывается с ErrSuperseded и не перетирает снимок.
type UseCase struct {
	client       SerenioClient
	timeProvider TimeProvider
	logger       Logger

	scheduleStart types.TimeString
	scheduleEnd   types.TimeString
	intervalMin   int

	seq atomic.Uint64

	mu       sync.Mutex
	snapshot *Response
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	client SerenioClient,
	scheduleStart types.TimeString,
	scheduleEnd types.TimeString,
	intervalMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:        client,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
		scheduleStart: scheduleStart,
		scheduleEnd:   scheduleEnd,
		intervalMin:   intervalMinutes,
	}
}

// Execute выполняет запрос доступности
// Возвращаемый список - пересечение канонической сетки слотов и свободных
// слотов по данным сервера, в каноническом порядке
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: psychologist=%s, date=%s",
		req.PsychologistID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Регистрируем запрос в последовательности
	id := uc.seq.Add(1)

	// 3. Сетевой вызов
	resp, fetchErr := uc.client.GetAvailableSlots(ctx, req.PsychologistID, req.Date)

	// 4. Проверяем, не был ли запрос вытеснен более новым
	// Проверка идет до обработки ошибки: устаревший результат не интересен
	// в любом исходе
	if id != uc.seq.Load() {
		uc.logger.Info("GetAvailableSlots: discarding superseded result for date=%s",
			req.Date.Format(domain.DateFormat))
		return nil, ErrSuperseded
	}

	if fetchErr != nil {
		// Истекшую сессию пробрасываем как есть - глобальная политика
		// обрабатывается выше
		if errors.Is(fetchErr, serenioapi.ErrAuthExpired) {
			return nil, fetchErr
		}
		uc.logger.Error("GetAvailableSlots: fetch failed: %v", fetchErr)
		return nil, fmt.Errorf("%w: %v", ErrAvailabilityUnknown, fetchErr)
	}

	// 5. Пересекаем ответ сервера с канонической сеткой
	slots, err := uc.intersectWithCanonical(resp.AvailableSlots)
	if err != nil {
		return nil, err
	}

	result := &Response{
		PsychologistID: req.PsychologistID,
		Date:           req.Date,
		Slots:          slots,
	}

	// 6. Фиксируем снимок, если запрос все еще актуален
	uc.mu.Lock()
	if id == uc.seq.Load() {
		uc.snapshot = result
	}
	uc.mu.Unlock()

	uc.logger.Info("GetAvailableSlots: %d slots free for psychologist=%s, date=%s",
		len(slots), req.PsychologistID, req.Date.Format(domain.DateFormat))

	return result, nil
}

// LastKnown возвращает последний актуальный снимок доступности или nil
func (uc *UseCase) LastKnown() *Response {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshot
}

// Invalidate сбрасывает снимок доступности
// Вызывается при 409 от бронирования: прежний снимок заведомо устарел
func (uc *UseCase) Invalidate() {
	uc.seq.Add(1)
	uc.mu.Lock()
	uc.snapshot = nil
	uc.mu.Unlock()
}

// intersectWithCanonical фильтрует слоты сервера по канонической сетке,
// сохраняя канонический порядок
func (uc *UseCase) intersectWithCanonical(serverSlots []string) ([]types.TimeString, error) {
	canonical, err := domain.GenerateDailySlots(uc.scheduleStart, uc.scheduleEnd, uc.intervalMin)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to generate canonical slots: %v", ErrInternal, err)
	}

	free := make(map[string]bool, len(serverSlots))
	for _, s := range serverSlots {
		free[s] = true
	}

	slots := make([]types.TimeString, 0, len(serverSlots))
	for _, slot := range canonical {
		if free[slot.String()] {
			slots = append(slots, slot)
			delete(free, slot.String())
		}
	}

	// Слоты вне канонической сетки не показываем, но фиксируем в логе
	for unknown := range free {
		uc.logger.Warn("GetAvailableSlots: ignoring non-canonical slot %q from server", unknown)
	}

	return slots, nil
}
