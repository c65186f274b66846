package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/bclub/TableReservationService/internal/domain"
	tableRepo "github.com/bclub/TableReservationService/internal/infra/storage/table"
	"github.com/bclub/TableReservationService/pkg/ptr"
)

// UseCase use case создания бронирования
//
// Решение о допуске (проверка статуса стола + пересечений) и вставка
// выполняются в одной сериализуемой транзакции: два конкурентных запроса
// на пересекающиеся интервалы одного стола не могут пройти проверку оба
type UseCase struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, table=%d, date=%s, interval=%s-%s",
		req.UserID, req.TableID, req.Date, req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	// 2. Допуск и вставка атомарно
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Стол должен существовать и принимать бронирования
		table, err := uc.tableRepo.GetByID(txCtx, req.TableID)
		if err != nil {
			if errors.Is(err, tableRepo.ErrTableNotFound) {
				uc.logger.Warn("CreateReservation: table id=%d not found", req.TableID)
				return ErrTableNotFound
			}
			uc.logger.Error("CreateReservation: failed to get table id=%d: %v", req.TableID, err)
			return fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
		}

		if !table.IsBookable() {
			uc.logger.Warn("CreateReservation: table id=%d is not available, status=%s",
				req.TableID, table.Status)
			return ErrTableUnavailable
		}

		// 2.2. Активные бронирования стола на дату (с блокировкой FOR UPDATE)
		existing, err := uc.reservationRepo.GetWithFilter(txCtx, domain.ReservationsFilter{
			TableID: &req.TableID,
			Date:    &req.Date,
			Status:  ptr.Ptr(domain.StatusActive),
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 2.3. Проверка пересечений тем же предикатом, что и в расчете слотов
		candidate := domain.Interval{StartTime: req.StartTime, EndTime: req.EndTime}
		if conflict := domain.FindConflict(candidate, req.TableID, existing); conflict != nil {
			uc.logger.Warn("CreateReservation: conflict with reservation id=%d (%s-%s)",
				conflict.ID, conflict.StartTime, conflict.EndTime)
			return &ConflictError{Conflict: conflict}
		}

		// 2.4. Создаем бронирование
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			UserID:    req.UserID,
			TableID:   req.TableID,
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Status:    domain.StatusActive,
			Comment:   req.Comment,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		UserID:    result.UserID,
		TableID:   result.TableID,
		Date:      result.Date,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Status:    string(result.Status),
		Comment:   result.Comment,
		CreatedAt: result.CreatedAt,
	}, nil
}
