package get_user_reservations

import (
	"context"

	"github.com/bclub/TableReservationService/internal/domain"
)

type ReservationsService interface {
	List(ctx context.Context, requester *domain.User, all bool) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
