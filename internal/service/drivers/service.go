package drivers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	driversRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/drivers"
)

// Service сервис для работы с водителями
type Service struct {
	driverRepo DriverRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса водителей
func NewService(driverRepo DriverRepository, logger Logger) *Service {
	return &Service{
		driverRepo: driverRepo,
		logger:     logger,
	}
}

// List возвращает всех водителей
func (s *Service) List(ctx context.Context) ([]*domain.Driver, error) {
	result, err := s.driverRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return result, nil
}

// Create создает нового водителя
func (s *Service) Create(ctx context.Context, name, licenseNumber string, available bool) (*domain.Driver, error) {
	s.logger.Info("Create: name=%s, license=%s, available=%t", name, licenseNumber, available)

	if name == "" || licenseNumber == "" {
		s.logger.Warn("Create: missing required fields")
		return nil, fmt.Errorf("%w: name and licenseNumber are required", ErrInvalidInput)
	}

	driver := &domain.Driver{
		Name:          name,
		LicenseNumber: licenseNumber,
		Available:     available,
	}

	created, err := s.driverRepo.Create(ctx, driver)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created driver id=%d", created.ID)
	return created, nil
}

// Update обновляет переданные поля водителя
func (s *Service) Update(ctx context.Context, id int64, name *string, licenseNumber *string, available *bool) (*domain.Driver, error) {
	s.logger.Info("Update: id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	updated, err := s.driverRepo.Update(ctx, id, name, licenseNumber, available)
	if err != nil {
		if errors.Is(err, driversRepo.ErrDriverNotFound) {
			s.logger.Warn("Update: driver id=%d not found", id)
			return nil, ErrDriverNotFound
		}
		s.logger.Error("Update: repository error for driver id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated driver id=%d", updated.ID)
	return updated, nil
}

// Delete удаляет водителя
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if err := s.driverRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Delete: repository error for driver id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}
