package shifts

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	ListWithRelations(ctx context.Context) ([]*domain.ShiftWithRelations, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
