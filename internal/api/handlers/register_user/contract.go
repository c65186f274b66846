package register_user

import (
	"context"

	"github.com/bclub/TableReservationService/internal/domain"
	"github.com/bclub/TableReservationService/internal/service/users"
)

type UsersService interface {
	Register(ctx context.Context, req *users.RegisterRequest) (*domain.User, bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
