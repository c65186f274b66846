package tables

import (
	"context"
	"errors"
	"fmt"

	"github.com/bclub/TableReservationService/internal/domain"
	tableRepo "github.com/bclub/TableReservationService/internal/infra/storage/table"
)

// Service сервис для работы со столами
type Service struct {
	tableRepo TableRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса столов
func NewService(tableRepo TableRepository, logger Logger) *Service {
	return &Service{
		tableRepo: tableRepo,
		logger:    logger,
	}
}

// List возвращает все столы, упорядоченные по номеру
func (s *Service) List(ctx context.Context) ([]*domain.Table, error) {
	result, err := s.tableRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return result, nil
}

// Create создает новый стол
func (s *Service) Create(ctx context.Context, number int, status domain.TableStatus) (*domain.Table, error) {
	s.logger.Info("Create: number=%d, status=%s", number, status)

	if number <= 0 {
		return nil, fmt.Errorf("%w: number must be positive", ErrInvalidInput)
	}
	if status == "" {
		status = domain.TableAvailable
	}
	if !domain.ValidTableStatus(string(status)) {
		return nil, fmt.Errorf("%w: unknown table status %q", ErrInvalidInput, status)
	}

	created, err := s.tableRepo.Create(ctx, &domain.Table{
		Number: number,
		Status: status,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created table id=%d", created.ID)
	return created, nil
}

// Update частично обновляет стол
func (s *Service) Update(ctx context.Context, id int64, update domain.TableUpdate) (*domain.Table, error) {
	s.logger.Info("Update: id=%d, update=%+v", id, update)

	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}
	if update.IsEmpty() {
		return nil, ErrEmptyUpdate
	}
	if update.Number != nil && *update.Number <= 0 {
		return nil, fmt.Errorf("%w: number must be positive", ErrInvalidInput)
	}
	if update.Status != nil && !domain.ValidTableStatus(string(*update.Status)) {
		return nil, fmt.Errorf("%w: unknown table status %q", ErrInvalidInput, *update.Status)
	}

	updated, err := s.tableRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			return nil, ErrTableNotFound
		}
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return updated, nil
}

// Delete удаляет стол
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if err := s.tableRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			return ErrTableNotFound
		}
		s.logger.Error("Delete: repository error: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}
