package catalogservice

import "errors"

var (
	// ErrActivityNotFound возвращается, когда документ активности не найден
	ErrActivityNotFound = errors.New("catalogservice client: activity not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")
)
