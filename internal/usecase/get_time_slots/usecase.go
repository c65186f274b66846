package get_time_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/bclub/TableReservationService/internal/domain"
	"github.com/bclub/TableReservationService/pkg/ptr"
)

// UseCase use case расчета доступных слотов на день
//
// Результат - представление для клиента; авторитетное решение принимает
// допуск бронирования, но оба построены на одном предикате пересечения,
// поэтому слот is_available=true гарантированно проходит допуск
// на том же снимке бронирований
type UseCase struct {
	reservationRepo  ReservationRepository
	settingsProvider SettingsProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	settingsProvider SettingsProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo:  reservationRepo,
		settingsProvider: settingsProvider,
		logger:           logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTimeSlots: table=%d, date=%s", req.TableID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetTimeSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущие настройки клуба
	settings, err := uc.settingsProvider.GetSettings(ctx)
	if err != nil {
		uc.logger.Error("GetTimeSlots: failed to get club settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get club settings: %v", ErrInternal, err)
	}

	// 3. Каноническая последовательность слотов дня
	slots, err := domain.GenerateSlots(settings.OpeningTime, settings.ClosingTime, settings.SlotDuration)
	if err != nil {
		uc.logger.Error("GetTimeSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 4. Активные бронирования стола на дату
	reservations, err := uc.reservationRepo.GetWithFilter(ctx, domain.ReservationsFilter{
		TableID: &req.TableID,
		Date:    &req.Date,
		Status:  ptr.Ptr(domain.StatusActive),
	})
	if err != nil {
		uc.logger.Error("GetTimeSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 5. Разметка доступности
	availability := domain.ComputeAvailability(slots, reservations, req.TableID)

	result := make([]Slot, len(availability))
	for i, slot := range availability {
		result[i] = Slot{
			StartTime:   slot.StartTime,
			EndTime:     slot.EndTime,
			IsAvailable: slot.IsAvailable,
		}
	}

	uc.logger.Info("GetTimeSlots: generated %d slots for table=%d, date=%s",
		len(result), req.TableID, req.Date)

	return &Response{
		Date:    req.Date,
		TableID: req.TableID,
		Slots:   result,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TableID <= 0 {
		return fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	return nil
}
