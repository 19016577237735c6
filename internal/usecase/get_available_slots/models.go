package get_available_slots

import (
	"time"

	"github.com/serenio-app/Serenio-Client/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	PsychologistID string    // Идентификатор психолога
	Date           time.Time // Дата, на которую нужны слоты (без времени)
}

// Response снимок доступности на момент ответа сервера
type Response struct {
	PsychologistID string
	Date           time.Time
	Slots          []types.TimeString // Свободные слоты в каноническом порядке
}
