package models

import (
	"time"

	"github.com/serenio-app/Serenio-Client/internal/domain"
)

// Message одно сообщение диалога с локальными метками тона
type Message struct {
	UserText  string           `json:"userText"`
	BotReply  string           `json:"botReply"`
	Sentiment domain.Sentiment `json:"sentiment"`
	Emotion   domain.Emotion   `json:"emotion"`
	SentAt    time.Time        `json:"sentAt"`
}

// SessionReport сводка по одной чат-сессии
type SessionReport struct {
	SessionID     string `json:"sessionId"`
	TotalMessages int    `json:"totalMessages"`

	SentimentCounts   map[domain.Sentiment]int     `json:"sentimentCounts"`
	SentimentPercents map[domain.Sentiment]float64 `json:"sentimentPercents"`
	EmotionCounts     map[domain.Emotion]int       `json:"emotionCounts"`
	TopicCounts       map[string]int               `json:"topicCounts"`
}

// DominantSentiment возвращает преобладающий тон сессии
// При равенстве счетчиков порядок предпочтения Negative, Positive, Neutral:
// в контексте благополучия пропустить негатив дороже, чем позитив
func (r *SessionReport) DominantSentiment() domain.Sentiment {
	best := domain.SentimentNeutral
	bestCount := r.SentimentCounts[domain.SentimentNeutral]

	if c := r.SentimentCounts[domain.SentimentPositive]; c > bestCount {
		best = domain.SentimentPositive
		bestCount = c
	}
	if c := r.SentimentCounts[domain.SentimentNegative]; c >= bestCount && c > 0 {
		best = domain.SentimentNegative
	}

	return best
}
