package update_route

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

type RouteService interface {
	Update(ctx context.Context, id int64, origin *string, destination *string, durationMinutes *int) (*domain.Route, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
