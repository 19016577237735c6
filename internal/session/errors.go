package session

import "errors"

var (
	// ErrInvalidToken возвращается, когда токен не удалось разобрать
	ErrInvalidToken = errors.New("session: invalid access token")

	// ErrInternal возвращается при внутренних ошибках менеджера сессии
	ErrInternal = errors.New("session: internal error")
)
