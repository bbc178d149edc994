package drivers

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// DriverRepository интерфейс репозитория водителей
type DriverRepository interface {
	List(ctx context.Context) ([]*domain.Driver, error)
	Create(ctx context.Context, driver *domain.Driver) (*domain.Driver, error)
	Update(ctx context.Context, id int64, name *string, licenseNumber *string, available *bool) (*domain.Driver, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
