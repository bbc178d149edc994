package create_bus

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

type BusService interface {
	Create(ctx context.Context, plateNumber string, capacity int) (*domain.Bus, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
