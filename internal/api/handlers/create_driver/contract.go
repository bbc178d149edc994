package create_driver

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

type DriverService interface {
	Create(ctx context.Context, name, licenseNumber string, available bool) (*domain.Driver, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
