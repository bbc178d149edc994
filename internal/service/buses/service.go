package buses

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	busesRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/buses"
)

// Service сервис для работы с автобусами
type Service struct {
	busRepo BusRepository
	logger  Logger
}

// NewService создает новый экземпляр сервиса автобусов
func NewService(busRepo BusRepository, logger Logger) *Service {
	return &Service{
		busRepo: busRepo,
		logger:  logger,
	}
}

// List возвращает все автобусы
func (s *Service) List(ctx context.Context) ([]*domain.Bus, error) {
	result, err := s.busRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return result, nil
}

// Create создает новый автобус
func (s *Service) Create(ctx context.Context, plateNumber string, capacity int) (*domain.Bus, error) {
	s.logger.Info("Create: plate=%s, capacity=%d", plateNumber, capacity)

	if plateNumber == "" || capacity <= 0 {
		s.logger.Warn("Create: missing required fields")
		return nil, fmt.Errorf("%w: plateNumber and capacity are required", ErrInvalidInput)
	}

	bus := &domain.Bus{
		PlateNumber: plateNumber,
		Capacity:    capacity,
	}

	created, err := s.busRepo.Create(ctx, bus)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created bus id=%d", created.ID)
	return created, nil
}

// Update обновляет переданные поля автобуса
func (s *Service) Update(ctx context.Context, id int64, plateNumber *string, capacity *int) (*domain.Bus, error) {
	s.logger.Info("Update: id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	updated, err := s.busRepo.Update(ctx, id, plateNumber, capacity)
	if err != nil {
		if errors.Is(err, busesRepo.ErrBusNotFound) {
			s.logger.Warn("Update: bus id=%d not found", id)
			return nil, ErrBusNotFound
		}
		s.logger.Error("Update: repository error for bus id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated bus id=%d", updated.ID)
	return updated, nil
}

// Delete удаляет автобус
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if err := s.busRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Delete: repository error for bus id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}
