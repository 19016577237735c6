package domain

import "strings"

// Sentiment is a coarse tone label attached to a chat message
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// Emotion is a finer-grained tone label derived from message text
type Emotion string

const (
	EmotionJoy      Emotion = "joy"
	EmotionSadness  Emotion = "sadness"
	EmotionAnger    Emotion = "anger"
	EmotionFear     Emotion = "fear"
	EmotionSurprise Emotion = "surprise"
	EmotionNeutral  Emotion = "neutral"
)

var positiveWords = []string{
	"happy", "good", "great", "excellent", "wonderful", "amazing", "love", "like",
}

var negativeWords = []string{
	"sad", "bad", "terrible", "awful", "hate", "angry", "frustrated", "worried",
}

var emotionWords = []struct {
	emotion Emotion
	words   []string
}{
	{EmotionJoy, []string{"happy", "joy", "excited"}},
	{EmotionSadness, []string{"sad", "depressed", "lonely"}},
	{EmotionAnger, []string{"angry", "furious", "mad"}},
	{EmotionFear, []string{"scared", "afraid", "worried"}},
	{EmotionSurprise, []string{"surprised", "shocked", "wow"}},
}

// TopicKeywords maps conversation topics to the keywords that indicate them
var TopicKeywords = map[string][]string{
	"Mental Health":   {"anxiety", "depression", "stress", "therapy", "counseling"},
	"Relationships":   {"relationship", "partner", "family", "friend", "love"},
	"Work":            {"work", "job", "career", "office", "boss", "colleague"},
	"Health":          {"health", "exercise", "diet", "sleep", "wellness"},
	"Personal Growth": {"goal", "improve", "learn", "growth", "development"},
}

// AnalyzeSentiment tags message text with a coarse sentiment label using the
// keyword heuristic: whichever word list matches more substrings wins, ties
// are neutral. This is a local pre-tag; authoritative analysis is server-side.
func AnalyzeSentiment(text string) Sentiment {
	lower := strings.ToLower(text)

	positive := 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			positive++
		}
	}

	negative := 0
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return SentimentPositive
	case negative > positive:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// DetectEmotion tags message text with a finer emotion label.
// The first matching group wins, in the fixed order joy, sadness, anger,
// fear, surprise.
func DetectEmotion(text string) Emotion {
	lower := strings.ToLower(text)

	for _, group := range emotionWords {
		for _, w := range group.words {
			if strings.Contains(lower, w) {
				return group.emotion
			}
		}
	}

	return EmotionNeutral
}

// CountTopics counts, per topic, how many messages mention at least one of
// the topic's keywords
func CountTopics(messages []string) map[string]int {
	counts := make(map[string]int)

	for _, msg := range messages {
		lower := strings.ToLower(msg)
		for topic, keywords := range TopicKeywords {
			for _, kw := range keywords {
				if strings.Contains(lower, kw) {
					counts[topic]++
					break
				}
			}
		}
	}

	return counts
}
