package filter_activities

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных критериях фильтрации
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
