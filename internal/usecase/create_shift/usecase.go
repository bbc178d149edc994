package create_shift

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	routesRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/routes"
)

// UseCase use case для создания смены с проверкой конфликтов расписания
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

// Execute выполняет use case создания смены.
// Проверка конфликта и запись выполняются без общей транзакции:
// при одновременных запросах возможна запись пересекающихся смен.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateShift: driver=%d, bus=%d, route=%d, date=%s, time=%s",
		req.DriverID, req.BusID, req.RouteID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateShift: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем длительность маршрута
	duration, err := uc.routeRepo.GetDurationMinutes(ctx, req.RouteID)
	if err != nil {
		if errors.Is(err, routesRepo.ErrRouteNotFound) {
			uc.logger.Warn("CreateShift: route id=%d not found", req.RouteID)
			return nil, ErrRouteNotFound
		}
		uc.logger.Error("CreateShift: failed to get route id=%d: %v", req.RouteID, err)
		return nil, fmt.Errorf("%w: failed to get route: %v", ErrInternal, err)
	}

	// 3. Получаем смены водителя на эту дату
	existing, err := uc.shiftRepo.GetByDriverAndDate(ctx, req.DriverID, req.Date)
	if err != nil {
		uc.logger.Error("CreateShift: failed to get shifts for driver id=%d: %v", req.DriverID, err)
		return nil, fmt.Errorf("%w: failed to get existing shifts: %v", ErrInternal, err)
	}

	// 4. Проверяем пересечение с существующими сменами
	conflict, err := domain.FindShiftConflict(req.StartTime, duration, existing, 0)
	if err != nil {
		uc.logger.Error("CreateShift: failed to check conflicts: %v", err)
		return nil, fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
	}
	if conflict != nil {
		uc.logger.Warn("CreateShift: conflict with shift id=%d (%s - %s)",
			conflict.ShiftID, conflict.Existing.Start, conflict.Existing.End)
		return nil, &ConflictError{
			Existing:  conflict.Existing,
			Candidate: conflict.Candidate,
		}
	}

	// 5. Создаем смену
	shift := &domain.Shift{
		DriverID:  req.DriverID,
		BusID:     req.BusID,
		RouteID:   req.RouteID,
		ShiftDate: req.Date,
		ShiftTime: req.StartTime,
	}

	created, err := uc.shiftRepo.Create(ctx, shift)
	if err != nil {
		uc.logger.Error("CreateShift: failed to create shift: %v", err)
		return nil, fmt.Errorf("%w: failed to create shift: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateShift: successfully created shift id=%d", created.ID)

	return &Response{
		ID:        created.ID,
		DriverID:  created.DriverID,
		BusID:     created.BusID,
		RouteID:   created.RouteID,
		Date:      created.ShiftDate,
		StartTime: created.ShiftTime,
	}, nil
}
