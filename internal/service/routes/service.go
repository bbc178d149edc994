package routes

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	routesRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/routes"
)

// Service сервис для работы с маршрутами
type Service struct {
	routeRepo RouteRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса маршрутов
func NewService(routeRepo RouteRepository, logger Logger) *Service {
	return &Service{
		routeRepo: routeRepo,
		logger:    logger,
	}
}

// List возвращает все маршруты
func (s *Service) List(ctx context.Context) ([]*domain.Route, error) {
	result, err := s.routeRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return result, nil
}

// Create создает новый маршрут. Длительность обязана быть положительной:
// нулевое окно не конфликтует ни с чем и возникает только у смен,
// чей маршрут был удален.
func (s *Service) Create(ctx context.Context, origin, destination string, durationMinutes int) (*domain.Route, error) {
	s.logger.Info("Create: origin=%s, destination=%s, duration=%d", origin, destination, durationMinutes)

	if origin == "" || destination == "" || durationMinutes <= 0 {
		s.logger.Warn("Create: missing required fields")
		return nil, fmt.Errorf("%w: origin, destination and estimatedDurationMinutes are required", ErrInvalidInput)
	}

	route := &domain.Route{
		Origin:                   origin,
		Destination:              destination,
		EstimatedDurationMinutes: durationMinutes,
	}

	created, err := s.routeRepo.Create(ctx, route)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created route id=%d", created.ID)
	return created, nil
}

// Update обновляет переданные поля маршрута
func (s *Service) Update(ctx context.Context, id int64, origin *string, destination *string, durationMinutes *int) (*domain.Route, error) {
	s.logger.Info("Update: id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}
	if durationMinutes != nil && *durationMinutes < 0 {
		return nil, fmt.Errorf("%w: estimatedDurationMinutes must not be negative", ErrInvalidInput)
	}

	updated, err := s.routeRepo.Update(ctx, id, origin, destination, durationMinutes)
	if err != nil {
		if errors.Is(err, routesRepo.ErrRouteNotFound) {
			s.logger.Warn("Update: route id=%d not found", id)
			return nil, ErrRouteNotFound
		}
		s.logger.Error("Update: repository error for route id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated route id=%d", updated.ID)
	return updated, nil
}

// Delete удаляет маршрут
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if err := s.routeRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Delete: repository error for route id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}
