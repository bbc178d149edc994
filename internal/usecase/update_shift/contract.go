package update_shift

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	Update(ctx context.Context, shift *domain.Shift) (*domain.Shift, error)
	GetByDriverAndDate(ctx context.Context, driverID int64, date time.Time) ([]domain.ScheduledShift, error)
}

// RouteRepository интерфейс репозитория маршрутов
type RouteRepository interface {
	GetDurationMinutes(ctx context.Context, id int64) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
