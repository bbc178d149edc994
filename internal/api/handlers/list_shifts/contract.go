package list_shifts

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

type ShiftService interface {
	List(ctx context.Context) ([]*domain.ShiftWithRelations, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
