package domain

// Bus автобус автопарка.
// Автобусы не проверяются на двойное бронирование — конфликт смен
// детектируется только по водителю.
type Bus struct {
	ID          int64
	PlateNumber string
	Capacity    int
}
