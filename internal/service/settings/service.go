package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/bclub/TableReservationService/internal/domain"
	settingsRepo "github.com/bclub/TableReservationService/internal/infra/storage/settings"
)

// Service сервис настроек клуба
//
// Настройки хранятся единственной строкой. Если строки еще нет,
// GetSettings лениво создает её с дефолтными значениями
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetSettings возвращает текущие настройки клуба
func (s *Service) GetSettings(ctx context.Context) (*domain.ClubSettings, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err == nil {
		return current, nil
	}
	if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		s.logger.Error("GetSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSettings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSettings: no settings row, creating defaults")

	created, err := s.settingsRepo.Create(ctx, domain.DefaultClubSettings())
	if err != nil {
		// Гонка двух одновременных запросов: строка уже появилась
		current, getErr := s.settingsRepo.Get(ctx)
		if getErr == nil {
			return current, nil
		}
		s.logger.Error("GetSettings: failed to create defaults: %v", err)
		return nil, fmt.Errorf("%w: GetSettings - repository error: %v", ErrInternal, err)
	}

	return created, nil
}

// UpdateSettings частично обновляет настройки клуба
func (s *Service) UpdateSettings(ctx context.Context, update domain.ClubSettingsUpdate) (*domain.ClubSettings, error) {
	s.logger.Info("UpdateSettings: %+v", update)

	if update.IsEmpty() {
		return nil, ErrEmptyUpdate
	}
	if err := validateUpdate(update); err != nil {
		s.logger.Warn("UpdateSettings: validation failed: %v", err)
		return nil, err
	}

	// Гарантируем существование строки до обновления
	current, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := s.settingsRepo.Update(ctx, current.ID, update)
	if err != nil {
		s.logger.Error("UpdateSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateSettings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSettings: updated settings id=%d", updated.ID)
	return updated, nil
}

func validateUpdate(update domain.ClubSettingsUpdate) error {
	if update.OpeningTime != nil {
		if err := update.OpeningTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid openingTime: %v", ErrInvalidInput, err)
		}
	}
	if update.ClosingTime != nil {
		if err := update.ClosingTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid closingTime: %v", ErrInvalidInput, err)
		}
	}
	if update.SlotDuration != nil {
		if *update.SlotDuration < domain.MinSlotDurationHours || *update.SlotDuration > domain.MaxSlotDurationHours {
			return fmt.Errorf("%w: slotDuration must be between %d and %d hours",
				ErrInvalidInput, domain.MinSlotDurationHours, domain.MaxSlotDurationHours)
		}
	}
	if update.ClubName != nil && *update.ClubName == "" {
		return fmt.Errorf("%w: clubName must not be empty", ErrInvalidInput)
	}
	return nil
}
