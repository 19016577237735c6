package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeSentiment(t *testing.T) {
	assert.Equal(t, SentimentPositive, AnalyzeSentiment("I feel happy and my day was great"))
	assert.Equal(t, SentimentNegative, AnalyzeSentiment("I am sad and worried about work"))
	assert.Equal(t, SentimentNeutral, AnalyzeSentiment("I went to the store"))

	// Равный счет - нейтрально
	assert.Equal(t, SentimentNeutral, AnalyzeSentiment("good but also bad"))

	// Регистр не влияет
	assert.Equal(t, SentimentPositive, AnalyzeSentiment("HAPPY"))
}

func TestDetectEmotion(t *testing.T) {
	assert.Equal(t, EmotionJoy, DetectEmotion("so excited about tomorrow"))
	assert.Equal(t, EmotionSadness, DetectEmotion("feeling lonely these days"))
	assert.Equal(t, EmotionAnger, DetectEmotion("I am furious"))
	assert.Equal(t, EmotionFear, DetectEmotion("scared of the results"))
	assert.Equal(t, EmotionSurprise, DetectEmotion("wow, did not expect that"))
	assert.Equal(t, EmotionNeutral, DetectEmotion("nothing much today"))

	// При нескольких совпадениях побеждает первая группа в фиксированном порядке
	assert.Equal(t, EmotionJoy, DetectEmotion("happy but scared"))
}

func TestCountTopics(t *testing.T) {
	counts := CountTopics([]string{
		"my job is stressful and my boss is difficult",
		"I want to improve and learn new things",
		"sleep has been bad lately",
		"career plans for next year",
	})

	// Несколько ключевых слов одной темы в сообщении считаются один раз
	assert.Equal(t, 2, counts["Work"])
	assert.Equal(t, 1, counts["Mental Health"])
	assert.Equal(t, 1, counts["Personal Growth"])
	assert.Equal(t, 1, counts["Health"])
	assert.Zero(t, counts["Relationships"])
}
