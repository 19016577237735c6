package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/serenio-app/Serenio-Client/internal/domain"
	"github.com/serenio-app/Serenio-Client/internal/integrations/serenioapi"
	"github.com/serenio-app/Serenio-Client/internal/service/chat/models"
)

// Service сервис диалога с чат-ботом
//
// Идентификатор сессии генерируется на клиенте при первом сообщении и живет
// до явного завершения. Каждое сообщение локально помечается тоном и эмоцией
// до обращения к серверу; инференс ответа выполняет backend.
type Service struct {
	client SerenioClient
	logger Logger

	mu        sync.Mutex
	sessionID string
	history   []models.Message
}

// NewService создает новый экземпляр сервиса чата
func NewService(client SerenioClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// SessionID возвращает идентификатор текущей сессии, создавая его при необходимости
func (s *Service) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionIDLocked()
}

func (s *Service) sessionIDLocked() string {
	if s.sessionID == "" {
		s.sessionID = uuid.NewString()
		s.logger.Info("SessionID: started new chat session id=%s", s.sessionID)
	}
	return s.sessionID
}

// Send отправляет сообщение чат-боту и возвращает запись диалога
// Сообщение до отправки помечается локальными метками тона; журнал сессии
// сохраняется на сервере best-effort, отказ журнала не прячет ответ бота
func (s *Service) Send(ctx context.Context, text string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	s.mu.Lock()
	sessionID := s.sessionIDLocked()
	s.mu.Unlock()

	// Локальные метки считаются до сетевого вызова и не зависят от его исхода
	msg := &models.Message{
		UserText:  text,
		Sentiment: domain.AnalyzeSentiment(text),
		Emotion:   domain.DetectEmotion(text),
		SentAt:    time.Now(),
	}

	s.logger.Info("Send: session=%s, sentiment=%s, emotion=%s", sessionID, msg.Sentiment, msg.Emotion)

	resp, err := s.client.SendChatMessage(ctx, &serenioapi.ChatMessageRequest{
		Message:   text,
		SessionID: sessionID,
	})
	if err != nil {
		s.logger.Error("Send: chatbot request failed for session=%s: %v", sessionID, err)
		return nil, err
	}
	msg.BotReply = resp.BotReply

	if err := s.client.SaveChatLog(ctx, &serenioapi.ChatLogRequest{
		SessionID: sessionID,
		Message:   text,
		Response:  resp.BotReply,
	}); err != nil {
		s.logger.Warn("Send: failed to persist chat log for session=%s: %v", sessionID, err)
	}

	s.mu.Lock()
	s.history = append(s.history, *msg)
	s.mu.Unlock()

	return msg, nil
}

// History возвращает накопленный диалог текущей сессии
func (s *Service) History() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Message, len(s.history))
	copy(out, s.history)
	return out
}

// EndSession завершает текущую сессию
// Следующее сообщение начнет новую с новым идентификатором
func (s *Service) EndSession() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessionID != "" {
		s.logger.Info("EndSession: closed chat session id=%s", s.sessionID)
	}
	s.sessionID = ""
	s.history = nil
}

// Sessions возвращает идентификаторы сохраненных сессий пользователя
func (s *Service) Sessions(ctx context.Context) ([]string, error) {
	s.logger.Info("Sessions: fetching chat sessions")

	sessions, err := s.client.GetChatSessions(ctx)
	if err != nil {
		s.logger.Error("Sessions: failed to fetch sessions: %v", err)
		return nil, err
	}

	return sessions, nil
}

// SessionReport строит сводку по сохраненной сессии: распределение тона,
// эмоций и тем по сообщениям пользователя
func (s *Service) SessionReport(ctx context.Context, sessionID string) (*models.SessionReport, error) {
	s.logger.Info("SessionReport: building report for session=%s", sessionID)

	logs, err := s.client.GetSessionLogs(ctx, sessionID)
	if err != nil {
		s.logger.Error("SessionReport: failed to fetch logs for session=%s: %v", sessionID, err)
		return nil, err
	}
	if len(logs) == 0 {
		s.logger.Warn("SessionReport: session=%s has no messages", sessionID)
		return nil, ErrSessionNotFound
	}

	report := &models.SessionReport{
		SessionID:         sessionID,
		TotalMessages:     len(logs),
		SentimentCounts:   make(map[domain.Sentiment]int),
		SentimentPercents: make(map[domain.Sentiment]float64),
		EmotionCounts:     make(map[domain.Emotion]int),
	}

	texts := make([]string, 0, len(logs))
	for _, entry := range logs {
		texts = append(texts, entry.Message)
		report.SentimentCounts[domain.AnalyzeSentiment(entry.Message)]++
		report.EmotionCounts[domain.DetectEmotion(entry.Message)]++
	}

	total := float64(len(logs))
	for sentiment, count := range report.SentimentCounts {
		report.SentimentPercents[sentiment] = float64(count) / total * 100
	}

	report.TopicCounts = domain.CountTopics(texts)

	s.logger.Info("SessionReport: session=%s, %d messages, dominant=%s",
		sessionID, report.TotalMessages, report.DominantSentiment())
	return report, nil
}
