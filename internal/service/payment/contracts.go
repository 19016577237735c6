package payment

import (
	"context"

	"github.com/serenio-app/Serenio-Client/internal/integrations/serenioapi"
)

// SerenioClient интерфейс клиента backend API
type SerenioClient interface {
	CreatePaymentIntent(ctx context.Context, req *serenioapi.PaymentIntentRequest) (*serenioapi.PaymentIntentResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
