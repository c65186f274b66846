package get_date_reservations

import (
	"context"

	"github.com/bclub/TableReservationService/internal/domain"
)

type ReservationsService interface {
	ListByDate(ctx context.Context, date string) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
