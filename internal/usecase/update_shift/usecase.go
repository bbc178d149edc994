package update_shift

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	routesRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/routes"
	shiftsRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/shifts"
)

// UseCase use case для обновления смены с проверкой конфликтов расписания
type UseCase struct {
	shiftRepo ShiftRepository
	routeRepo RouteRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(shiftRepo ShiftRepository, routeRepo RouteRepository, logger Logger) *UseCase {
	return &UseCase{
		shiftRepo: shiftRepo,
		routeRepo: routeRepo,
		logger:    logger,
	}
}

// Execute выполняет use case обновления смены. Сама обновляемая смена
// исключается из проверки пересечений, иначе она конфликтовала бы сама
// с собой при сдвиге времени.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateShift: id=%d, driver=%d, bus=%d, route=%d, date=%s, time=%s",
		req.ID, req.DriverID, req.BusID, req.RouteID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateShift: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем длительность маршрута
	duration, err := uc.routeRepo.GetDurationMinutes(ctx, req.RouteID)
	if err != nil {
		if errors.Is(err, routesRepo.ErrRouteNotFound) {
			uc.logger.Warn("UpdateShift: route id=%d not found", req.RouteID)
			return nil, ErrRouteNotFound
		}
		uc.logger.Error("UpdateShift: failed to get route id=%d: %v", req.RouteID, err)
		return nil, fmt.Errorf("%w: failed to get route: %v", ErrInternal, err)
	}

	// 3. Получаем смены водителя на эту дату
	existing, err := uc.shiftRepo.GetByDriverAndDate(ctx, req.DriverID, req.Date)
	if err != nil {
		uc.logger.Error("UpdateShift: failed to get shifts for driver id=%d: %v", req.DriverID, err)
		return nil, fmt.Errorf("%w: failed to get existing shifts: %v", ErrInternal, err)
	}

	// 4. Проверяем пересечения, исключая обновляемую смену
	conflict, err := domain.FindShiftConflict(req.StartTime, duration, existing, req.ID)
	if err != nil {
		uc.logger.Error("UpdateShift: failed to check conflicts: %v", err)
		return nil, fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
	}
	if conflict != nil {
		uc.logger.Warn("UpdateShift: conflict with shift id=%d (%s - %s)",
			conflict.ShiftID, conflict.Existing.Start, conflict.Existing.End)
		return nil, &ConflictError{
			Existing:  conflict.Existing,
			Candidate: conflict.Candidate,
		}
	}

	// 5. Обновляем смену
	shift := &domain.Shift{
		ID:        req.ID,
		DriverID:  req.DriverID,
		BusID:     req.BusID,
		RouteID:   req.RouteID,
		ShiftDate: req.Date,
		ShiftTime: req.StartTime,
	}

	updated, err := uc.shiftRepo.Update(ctx, shift)
	if err != nil {
		if errors.Is(err, shiftsRepo.ErrShiftNotFound) {
			uc.logger.Warn("UpdateShift: shift id=%d not found", req.ID)
			return nil, ErrShiftNotFound
		}
		uc.logger.Error("UpdateShift: failed to update shift id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to update shift: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateShift: successfully updated shift id=%d", updated.ID)

	return &Response{
		ID:        updated.ID,
		DriverID:  updated.DriverID,
		BusID:     updated.BusID,
		RouteID:   updated.RouteID,
		Date:      updated.ShiftDate,
		StartTime: updated.ShiftTime,
	}, nil
}
