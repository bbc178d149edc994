package update_driver

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

type DriverService interface {
	Update(ctx context.Context, id int64, name *string, licenseNumber *string, available *bool) (*domain.Driver, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
