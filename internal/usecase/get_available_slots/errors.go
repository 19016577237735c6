package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrAvailabilityUnknown возвращается, когда backend недоступен или ответил
	// ошибкой: доступность неизвестна, показывать "все свободно" или "все
	// занято" в этом состоянии нельзя
	ErrAvailabilityUnknown = errors.New("get_available_slots: availability unknown")

	// ErrSuperseded возвращается, когда результат запроса устарел: после его
	// отправки был выпущен более новый запрос, и результат должен быть отброшен
	ErrSuperseded = errors.New("get_available_slots: request superseded")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
