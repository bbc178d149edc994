package shifts

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// Service сервис для чтения и удаления смен.
// Создание и обновление идут через use case'ы с проверкой конфликтов.
type Service struct {
	shiftRepo ShiftRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса смен
func NewService(shiftRepo ShiftRepository, logger Logger) *Service {
	return &Service{
		shiftRepo: shiftRepo,
		logger:    logger,
	}
}

// List возвращает все смены вместе с данными водителя, автобуса и маршрута
func (s *Service) List(ctx context.Context) ([]*domain.ShiftWithRelations, error) {
	result, err := s.shiftRepo.ListWithRelations(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return result, nil
}

// Delete удаляет смену
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if err := s.shiftRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Delete: repository error for shift id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}
