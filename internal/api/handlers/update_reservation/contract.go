package update_reservation

import (
	"context"

	"github.com/bclub/TableReservationService/internal/domain"
)

type ReservationsService interface {
	Update(ctx context.Context, id int64, requester *domain.User, update domain.ReservationUpdate) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
