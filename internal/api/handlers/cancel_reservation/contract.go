package cancel_reservation

import (
	"context"

	"github.com/bclub/TableReservationService/internal/domain"
)

type ReservationsService interface {
	Cancel(ctx context.Context, id int64, requester *domain.User) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
