package buses

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// BusRepository интерфейс репозитория автобусов
type BusRepository interface {
	List(ctx context.Context) ([]*domain.Bus, error)
	Create(ctx context.Context, bus *domain.Bus) (*domain.Bus, error)
	Update(ctx context.Context, id int64, plateNumber *string, capacity *int) (*domain.Bus, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
