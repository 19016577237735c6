package appointments

import (
	"context"

	"github.com/serenio-app/Serenio-Client/internal/integrations/serenioapi"
)

// SerenioClient интерфейс клиента backend API
type SerenioClient interface {
	GetMyAppointments(ctx context.Context) (*serenioapi.MyAppointmentsResponse, error)
	CancelAppointment(ctx context.Context, appointmentID string) (*serenioapi.Appointment, error)
	CompleteAppointment(ctx context.Context, appointmentID string) (*serenioapi.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
