package buses

import "errors"

var (
	// ErrBusNotFound возвращается, когда автобус не найден
	ErrBusNotFound = errors.New("buses.service: bus not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("buses.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("buses.service: internal error")
)
