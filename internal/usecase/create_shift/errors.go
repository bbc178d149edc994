package create_shift

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_shift: invalid input data")

	// ErrRouteNotFound возвращается, когда маршрут не найден
	ErrRouteNotFound = errors.New("create_shift: route not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_shift: internal error")
)

// ConflictError описывает пересечение новой смены с уже назначенной
// сменой водителя. Текст ошибки показывается пользователю как есть.
type ConflictError struct {
	Existing  domain.ShiftWindow
	Candidate domain.ShiftWindow
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"Driver already has an overlapping shift from %s to %s. New shift would run from %s to %s.",
		e.Existing.Start, e.Existing.End, e.Candidate.Start, e.Candidate.End,
	)
}
