package appointments

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/serenio-app/Serenio-Client/internal/domain"
	"github.com/serenio-app/Serenio-Client/internal/integrations/serenioapi"
	"github.com/serenio-app/Serenio-Client/internal/service/appointments/models"
)

// Service сервис согласования списка записей пользователя
//
// Держит клиентскую копию списка и сводит ее с ответами сервера: обновление
// заменяет копию целиком, отмена применяется оптимистично и откатывается при
// отказе сервера. Сервер остается единственным источником истины.
type Service struct {
	client SerenioClient
	logger Logger

	mu           sync.RWMutex
	appointments []domain.Appointment
	loaded       bool
}

// NewService создает новый экземпляр сервиса записей
func NewService(client SerenioClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Refresh перезагружает список записей с сервера
// Локальная копия заменяется целиком, частичных слияний нет
func (s *Service) Refresh(ctx context.Context) error {
	s.logger.Info("Refresh: fetching user appointments")

	resp, err := s.client.GetMyAppointments(ctx)
	if err != nil {
		s.logger.Error("Refresh: failed to fetch appointments: %v", err)
		return err
	}

	fresh := make([]domain.Appointment, 0, len(resp.Appointments))
	for i := range resp.Appointments {
		appt, err := resp.Appointments[i].ToDomain()
		if err != nil {
			// Одна битая запись не должна ронять весь список
			s.logger.Warn("Refresh: skipping malformed appointment id=%s: %v", resp.Appointments[i].ID, err)
			continue
		}
		fresh = append(fresh, *appt)
	}

	sortForDisplay(fresh)

	s.mu.Lock()
	s.appointments = fresh
	s.loaded = true
	s.mu.Unlock()

	s.logger.Info("Refresh: successfully loaded %d appointments", len(fresh))
	return nil
}

// Cached возвращает текущую клиентскую копию списка записей
func (s *Service) Cached() []domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

// List возвращает записи в порядке отображения, при необходимости загружая их
func (s *Service) List(ctx context.Context) (*models.AppointmentListResponse, error) {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	if !loaded {
		if err := s.Refresh(ctx); err != nil {
			return nil, err
		}
	}

	return models.FromDomainAppointmentList(s.Cached()), nil
}

// Stats возвращает сводку по статусам записей
func (s *Service) Stats() *models.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &models.Stats{Total: len(s.appointments)}
	for i := range s.appointments {
		switch s.appointments[i].Status {
		case domain.StatusBooked:
			stats.Booked++
		case domain.StatusCompleted:
			stats.Completed++
		case domain.StatusCancelled:
			stats.Cancelled++
		}
	}
	return stats
}

// Cancel отменяет запись пользователя
//
// Отмена оптимистична: статус в локальной копии меняется до сетевого вызова,
// при отказе сервера возвращается прежний. Отменить можно только запись
// в статусе Booked
func (s *Service) Cancel(ctx context.Context, id string) error {
	s.logger.Info("Cancel: cancelling appointment id=%s", id)

	s.mu.Lock()
	idx := s.indexByIDLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		s.logger.Warn("Cancel: appointment id=%s not found in local copy", id)
		return ErrAppointmentNotFound
	}
	if !s.appointments[idx].CanBeCancelled() {
		status := s.appointments[idx].Status
		s.mu.Unlock()
		s.logger.Warn("Cancel: appointment id=%s cannot be cancelled, status=%s", id, status)
		return ErrCannotCancel
	}

	// Оптимистичное применение
	previous := s.appointments[idx].Status
	s.appointments[idx].Status = domain.StatusCancelled
	sortForDisplay(s.appointments)
	s.mu.Unlock()

	if _, err := s.client.CancelAppointment(ctx, id); err != nil {
		// Откат: возвращаем прежний статус, если запись еще на месте
		s.mu.Lock()
		if i := s.indexByIDLocked(id); i >= 0 {
			s.appointments[i].Status = previous
			sortForDisplay(s.appointments)
		}
		s.mu.Unlock()

		if errors.Is(err, serenioapi.ErrNotFound) {
			s.logger.Warn("Cancel: appointment id=%s not found on server", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: failed to cancel appointment id=%s: %v", id, err)
		return err
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%s", id)
	return nil
}

// Complete помечает запись завершенной
// Операция психолога; локальная копия просто перечитывается после успеха
func (s *Service) Complete(ctx context.Context, id string) error {
	s.logger.Info("Complete: completing appointment id=%s", id)

	if _, err := s.client.CompleteAppointment(ctx, id); err != nil {
		if errors.Is(err, serenioapi.ErrNotFound) {
			s.logger.Warn("Complete: appointment id=%s not found on server", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Complete: failed to complete appointment id=%s: %v", id, err)
		return fmt.Errorf("Complete: %w", err)
	}

	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn("Complete: failed to refresh appointments after completion: %v", err)
	}

	s.logger.Info("Complete: successfully completed appointment id=%s", id)
	return nil
}

// indexByIDLocked ищет запись по ID; вызывается под s.mu
func (s *Service) indexByIDLocked(id string) int {
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			return i
		}
	}
	return -1
}

// sortForDisplay сортирует записи в порядке отображения:
// Booked, затем Completed, затем Cancelled; внутри статуса по дате
// Сортировка стабильна, порядок сервера для равных элементов сохраняется
func sortForDisplay(appointments []domain.Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		ri, rj := appointments[i].StatusRank(), appointments[j].StatusRank()
		if ri != rj {
			return ri < rj
		}
		return appointments[i].Date.Before(appointments[j].Date)
	})
}
