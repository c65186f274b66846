package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bclub/TableReservationService/internal/domain"
	userRepo "github.com/bclub/TableReservationService/internal/infra/storage/user"
)

// Service сервис для работы с пользователями
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// RegisterRequest данные регистрации
type RegisterRequest struct {
	TelegramID string
	Name       string
	Phone      string
	IsAdmin    bool
}

// Register регистрирует пользователя
// Идемпотентен по telegram_id: повторная регистрация возвращает
// существующего пользователя (created=false)
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*domain.User, bool, error) {
	s.logger.Info("Register: telegram_id=%s", req.TelegramID)

	if err := validateRegisterRequest(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, false, err
	}

	existing, err := s.userRepo.GetByTelegramID(ctx, req.TelegramID)
	if err == nil {
		s.logger.Info("Register: telegram_id=%s already registered as user id=%d",
			req.TelegramID, existing.ID)
		return existing, false, nil
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Error("Register: repository error: %v", err)
		return nil, false, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	created, err := s.userRepo.Create(ctx, &domain.User{
		TelegramID: req.TelegramID,
		Name:       req.Name,
		Phone:      req.Phone,
		IsAdmin:    req.IsAdmin,
	})
	if err != nil {
		// Гонка двух одновременных регистраций: запись уже появилась
		if errors.Is(err, userRepo.ErrDuplicateTelegramID) {
			existing, getErr := s.userRepo.GetByTelegramID(ctx, req.TelegramID)
			if getErr == nil {
				return existing, false, nil
			}
		}
		s.logger.Error("Register: failed to create user: %v", err)
		return nil, false, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: created user id=%d for telegram_id=%s", created.ID, req.TelegramID)
	return created, true, nil
}

// GetByTelegramID получает пользователя по Telegram-идентификатору
func (s *Service) GetByTelegramID(ctx context.Context, telegramID string) (*domain.User, error) {
	if strings.TrimSpace(telegramID) == "" {
		return nil, fmt.Errorf("%w: telegramID is required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByTelegramID: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByTelegramID - repository error: %v", ErrInternal, err)
	}

	return user, nil
}

func validateRegisterRequest(req *RegisterRequest) error {
	if strings.TrimSpace(req.TelegramID) == "" {
		return fmt.Errorf("%w: telegramID is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	return nil
}
