package insights

import (
	"context"
	"time"

	"github.com/serenio-app/Serenio-Client/internal/domain"
	"github.com/serenio-app/Serenio-Client/internal/integrations/serenioapi"
)

// Report одна запись отчета пользователя
type Report struct {
	ID             string
	SessionID      string
	Sentiment      string
	Recommendation string
	CreatedAt      time.Time
}

// Service сервис отметок настроения и отчетов пользователя
type Service struct {
	client SerenioClient
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(client SerenioClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// LogMood сохраняет отметку настроения пользователя
// Принимаются только канонические метки тона
func (s *Service) LogMood(ctx context.Context, mood string) error {
	sentiment := domain.Sentiment(mood)
	switch sentiment {
	case domain.SentimentPositive, domain.SentimentNegative, domain.SentimentNeutral:
	default:
		s.logger.Warn("LogMood: rejected unknown mood label %q", mood)
		return ErrInvalidMood
	}

	s.logger.Info("LogMood: logging mood=%s", sentiment)

	if err := s.client.LogMood(ctx, string(sentiment)); err != nil {
		s.logger.Error("LogMood: failed to log mood: %v", err)
		return err
	}

	return nil
}

// Reports возвращает отчеты пользователя, новые первыми
func (s *Service) Reports(ctx context.Context) ([]Report, error) {
	s.logger.Info("Reports: fetching user reports")

	entries, err := s.client.GetUserReports(ctx)
	if err != nil {
		s.logger.Error("Reports: failed to fetch reports: %v", err)
		return nil, err
	}

	reports := make([]Report, 0, len(entries))
	for _, e := range entries {
		reports = append(reports, fromDTO(e))
	}

	s.logger.Info("Reports: fetched %d reports", len(reports))
	return reports, nil
}

func fromDTO(e serenioapi.ReportEntry) Report {
	r := Report{
		ID:             e.ID,
		SessionID:      e.SessionID,
		Sentiment:      e.Sentiment,
		Recommendation: e.Recommendation,
	}
	if e.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, e.CreatedAt); err == nil {
			r.CreatedAt = t
		}
	}
	return r
}
