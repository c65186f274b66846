package get_time_slots

import (
	"context"

	"github.com/bclub/TableReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// SettingsProvider отдает текущие настройки клуба
// (реализация лениво создает запись с дефолтами, если её нет)
type SettingsProvider interface {
	GetSettings(ctx context.Context) (*domain.ClubSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
