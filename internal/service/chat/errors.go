package chat

import "errors"

var (
	// ErrEmptyMessage возвращается при попытке отправить пустое сообщение
	ErrEmptyMessage = errors.New("chat: message is empty")

	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("chat: session not found")
)
