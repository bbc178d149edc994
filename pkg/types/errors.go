package types

import "errors"

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("types: invalid time string format")

	// ErrNegativeMinutes возвращается при попытке прибавить отрицательное количество минут
	ErrNegativeMinutes = errors.New("types: negative minutes")
)
