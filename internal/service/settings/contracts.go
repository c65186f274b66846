package settings

import (
	"context"

	"github.com/bclub/TableReservationService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек клуба
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.ClubSettings, error)
	Create(ctx context.Context, s *domain.ClubSettings) (*domain.ClubSettings, error)
	Update(ctx context.Context, id int64, update domain.ClubSettingsUpdate) (*domain.ClubSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
