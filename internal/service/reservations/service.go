package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bclub/TableReservationService/internal/domain"
	reservationRepo "github.com/bclub/TableReservationService/internal/infra/storage/reservation"
)

// Service сервис для работы с бронированиями
//
// Создание идет через отдельный use case с транзакционным допуском;
// здесь собраны операции чтения и управления жизненным циклом
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID возвращает бронирование, доступное запрашивающему
func (s *Service) GetByID(ctx context.Context, id int64, requester *domain.User) (*domain.Reservation, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	reservation, err := s.getOwned(ctx, id, requester)
	if err != nil {
		return nil, err
	}

	return reservation, nil
}

// List возвращает бронирования пользователя.
// При all=true админ получает все бронирования системы
func (s *Service) List(ctx context.Context, requester *domain.User, all bool) ([]*domain.Reservation, error) {
	if all {
		if !requester.IsAdmin {
			s.logger.Warn("List: user id=%d requested all reservations without admin rights", requester.ID)
			return nil, ErrAccessDenied
		}
		result, err := s.reservationRepo.GetAll(ctx)
		if err != nil {
			s.logger.Error("List: repository error: %v", err)
			return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
		}
		return result, nil
	}

	result, err := s.reservationRepo.GetWithFilter(ctx, domain.ReservationsFilter{
		UserID: &requester.ID,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return result, nil
}

// ListByDate возвращает все бронирования на дату
func (s *Service) ListByDate(ctx context.Context, date string) ([]*domain.Reservation, error) {
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	result, err := s.reservationRepo.GetWithFilter(ctx, domain.ReservationsFilter{
		Date: &date,
	})
	if err != nil {
		s.logger.Error("ListByDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	return result, nil
}

// Update частично обновляет бронирование.
// Владелец бронирования не меняется, переходы статуса ограничены
// машиной состояний active -> completed | cancelled
func (s *Service) Update(
	ctx context.Context,
	id int64,
	requester *domain.User,
	update domain.ReservationUpdate,
) (*domain.Reservation, error) {
	s.logger.Info("Update: id=%d, requester=%d", id, requester.ID)

	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}
	if update.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	current, err := s.getOwned(ctx, id, requester)
	if err != nil {
		return nil, err
	}

	if err := validateUpdate(current, update); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.reservationRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated reservation id=%d", updated.ID)
	return updated, nil
}

// Cancel отменяет активное бронирование
func (s *Service) Cancel(ctx context.Context, id int64, requester *domain.User) (*domain.Reservation, error) {
	s.logger.Info("Cancel: id=%d, requester=%d", id, requester.ID)

	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	current, err := s.getOwned(ctx, id, requester)
	if err != nil {
		return nil, err
	}

	if !current.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d in status %s cannot be cancelled", id, current.Status)
		return nil, fmt.Errorf("%w: status is %s", ErrCannotCancel, current.Status)
	}

	cancelled, err := s.reservationRepo.UpdateStatus(ctx, id, domain.StatusCancelled)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error: %v", err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: cancelled reservation id=%d", id)
	return cancelled, nil
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, id int64, requester *domain.User) error {
	s.logger.Info("Delete: id=%d, requester=%d", id, requester.ID)

	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if _, err := s.getOwned(ctx, id, requester); err != nil {
		return err
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted reservation id=%d", id)
	return nil
}

// getOwned загружает бронирование и проверяет права доступа:
// чужие бронирования видны только админу
func (s *Service) getOwned(ctx context.Context, id int64, requester *domain.User) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("getOwned: repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if reservation.UserID != requester.ID && !requester.IsAdmin {
		s.logger.Warn("getOwned: user id=%d denied access to reservation id=%d", requester.ID, id)
		return nil, ErrAccessDenied
	}

	return reservation, nil
}

// validateUpdate проверяет поля частичного обновления с учетом
// текущего состояния бронирования
func validateUpdate(current *domain.Reservation, update domain.ReservationUpdate) error {
	if update.TableID != nil && *update.TableID <= 0 {
		return fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}
	if update.Date != nil {
		if _, err := time.Parse(domain.DateFormat, *update.Date); err != nil {
			return fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
		}
	}
	if update.StartTime != nil {
		if err := update.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}
	}
	if update.EndTime != nil {
		if err := update.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
		}
	}

	// Итоговый интервал должен оставаться корректным
	start, end := current.StartTime, current.EndTime
	if update.StartTime != nil {
		start = *update.StartTime
	}
	if update.EndTime != nil {
		end = *update.EndTime
	}
	if (update.StartTime != nil || update.EndTime != nil) && !start.IsBefore(end) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	if update.Status != nil {
		if !domain.ValidReservationStatus(string(*update.Status)) {
			return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *update.Status)
		}
		if !current.CanTransitionTo(*update.Status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, *update.Status)
		}
	}

	if update.Comment != nil && len(*update.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	return nil
}
