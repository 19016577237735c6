package payment

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/serenio-app/Serenio-Client/internal/integrations/serenioapi"
)

// DefaultCurrency валюта платежей по умолчанию
const DefaultCurrency = "pkr"

// Intent непрозрачные данные для завершения платежа
// Подтверждение выполняет платежный провайдер, клиент только передает секрет
type Intent struct {
	ClientSecret    string
	PaymentIntentID string
	Amount          int64 // В минимальных единицах валюты
	Currency        string
}

// Service сервис создания платежных намерений
type Service struct {
	client SerenioClient
	logger Logger
}

// NewService создает новый экземпляр платежного сервиса
func NewService(client SerenioClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// CreateIntent создает платежное намерение на сумму сеанса
// Сумма задается в основных единицах валюты и конвертируется в минимальные
// (пайсы для PKR) перед отправкой
func (s *Service) CreateIntent(ctx context.Context, amount float64, currency string) (*Intent, error) {
	if amount <= 0 {
		s.logger.Warn("CreateIntent: rejected non-positive amount=%.2f", amount)
		return nil, ErrInvalidAmount
	}

	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	minorUnits := int64(math.Round(amount * 100))

	s.logger.Info("CreateIntent: amount=%.2f %s (%d minor units)", amount, currency, minorUnits)

	resp, err := s.client.CreatePaymentIntent(ctx, &serenioapi.PaymentIntentRequest{
		Amount:   minorUnits,
		Currency: currency,
	})
	if err != nil {
		s.logger.Error("CreateIntent: failed to create payment intent: %v", err)
		return nil, err
	}

	if resp.ClientSecret == "" {
		s.logger.Error("CreateIntent: server returned empty client secret")
		return nil, fmt.Errorf("%w: empty client secret in response", ErrInternal)
	}

	s.logger.Info("CreateIntent: created payment intent id=%s", resp.PaymentIntentID)
	return &Intent{
		ClientSecret:    resp.ClientSecret,
		PaymentIntentID: resp.PaymentIntentID,
		Amount:          minorUnits,
		Currency:        currency,
	}, nil
}
