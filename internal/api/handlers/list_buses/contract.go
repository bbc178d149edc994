package list_buses

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

type BusService interface {
	List(ctx context.Context) ([]*domain.Bus, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
