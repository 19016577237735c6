package book_appointment

import (
	"context"
	"time"

	"github.com/serenio-app/Serenio-Client/internal/domain"
	"github.com/serenio-app/Serenio-Client/internal/integrations/serenioapi"
)

// SerenioClient интерфейс клиента backend API
type SerenioClient interface {
	BookAppointment(ctx context.Context, req *serenioapi.BookAppointmentRequest, idempotencyKey string) (*serenioapi.Appointment, error)
}

// AppointmentCache источник закэшированных записей пользователя для локальной
// проверки конфликтов и получатель обновления после успешного бронирования
type AppointmentCache interface {
	Cached() []domain.Appointment
	Refresh(ctx context.Context) error
}

// AvailabilityInvalidator сбрасывает снимок доступности
// Дергается при 409: выбранный слот заведомо устарел
type AvailabilityInvalidator interface {
	Invalidate()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
