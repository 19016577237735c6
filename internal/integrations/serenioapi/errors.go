package serenioapi

import "errors"

// Таксономия ошибок backend API. Все вызовы клиента возвращают одну из этих
// ошибок (возможно обернутую), чтобы вызывающие слои обрабатывали исходы
// единообразно через errors.Is.
var (
	// ErrValidation возвращается при 400: сервер отклонил данные запроса
	// Обертка содержит сообщение сервера для показа пользователю
	ErrValidation = errors.New("serenioapi: validation error")

	// ErrAuthExpired возвращается при 401/403: сессия истекла или невалидна
	// Глобальная политика - очистить локальную сессию и запросить повторный вход
	ErrAuthExpired = errors.New("serenioapi: authentication expired")

	// ErrSlotConflict возвращается при 409: слот занят другим бронированием
	ErrSlotConflict = errors.New("serenioapi: slot already booked")

	// ErrNotFound возвращается при 404: ресурс не существует
	ErrNotFound = errors.New("serenioapi: not found")

	// ErrServer возвращается при 5xx или нераспарсиваемом ответе
	ErrServer = errors.New("serenioapi: server error")

	// ErrNetwork возвращается, когда запрос не достиг сервера
	ErrNetwork = errors.New("serenioapi: network error")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("serenioapi: internal error")
)

// ErrorOutcome возвращает каноническое имя исхода для метрик
func ErrorOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrAuthExpired):
		return "auth_expired"
	case errors.Is(err, ErrSlotConflict):
		return "conflict"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrServer):
		return "server_error"
	case errors.Is(err, ErrNetwork):
		return "network_error"
	default:
		return "internal_error"
	}
}
