package update_club_settings

import (
	"context"

	"github.com/bclub/TableReservationService/internal/domain"
)

type SettingsService interface {
	UpdateSettings(ctx context.Context, update domain.ClubSettingsUpdate) (*domain.ClubSettings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
