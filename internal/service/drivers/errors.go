package drivers

import "errors"

var (
	// ErrDriverNotFound возвращается, когда водитель не найден
	ErrDriverNotFound = errors.New("drivers.service: driver not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("drivers.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("drivers.service: internal error")
)
