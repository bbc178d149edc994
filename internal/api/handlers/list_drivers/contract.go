package list_drivers

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

type DriverService interface {
	List(ctx context.Context) ([]*domain.Driver, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
