package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/serenio-app/Serenio-Client/pkg/ptr"
)

func TestEffectivePrice(t *testing.T) {
	// Цена сеанса имеет приоритет над часовой ставкой
	p := Psychologist{SessionPrice: ptr.Ptr(2500.0), HourlyRate: ptr.Ptr(3000.0)}
	assert.Equal(t, 2500.0, p.EffectivePrice())

	p = Psychologist{HourlyRate: ptr.Ptr(3000.0)}
	assert.Equal(t, 3000.0, p.EffectivePrice())

	p = Psychologist{}
	assert.Zero(t, p.EffectivePrice())
}
