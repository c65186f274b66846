package delete_reservation

import (
	"context"

	"github.com/bclub/TableReservationService/internal/domain"
)

type ReservationsService interface {
	Delete(ctx context.Context, id int64, requester *domain.User) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
