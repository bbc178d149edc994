package routes

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// RouteRepository интерфейс репозитория маршрутов
type RouteRepository interface {
	List(ctx context.Context) ([]*domain.Route, error)
	Create(ctx context.Context, route *domain.Route) (*domain.Route, error)
	Update(ctx context.Context, id int64, origin *string, destination *string, durationMinutes *int) (*domain.Route, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
