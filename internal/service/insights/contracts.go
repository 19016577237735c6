package insights

import (
	"context"

	"github.com/serenio-app/Serenio-Client/internal/integrations/serenioapi"
)

// SerenioClient интерфейс клиента backend API
type SerenioClient interface {
	LogMood(ctx context.Context, sentiment string) error
	GetUserReports(ctx context.Context) ([]serenioapi.ReportEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
