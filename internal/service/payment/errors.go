package payment

import "errors"

var (
	// ErrInvalidAmount возвращается при неположительной сумме платежа
	ErrInvalidAmount = errors.New("payment: invalid amount")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("payment: internal error")
)
