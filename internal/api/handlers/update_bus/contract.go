package update_bus

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

type BusService interface {
	Update(ctx context.Context, id int64, plateNumber *string, capacity *int) (*domain.Bus, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
