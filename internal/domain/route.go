package domain

// Route маршрут между двумя точками.
// EstimatedDurationMinutes — единственный вход детектора конфликтов:
// из него вычисляется время окончания смены.
type Route struct {
	ID                       int64
	Origin                   string
	Destination              string
	EstimatedDurationMinutes int
}
