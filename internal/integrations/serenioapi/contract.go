package serenioapi

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TokenSource выдает текущий bearer-токен сессии
// Пустая строка означает отсутствие аутентифицированной сессии
type TokenSource interface {
	AccessToken() string
}

// MetricsRecorder фиксирует завершенные запросы к backend
type MetricsRecorder interface {
	ObserveRequest(endpoint, outcome string, duration time.Duration)
}
