package create_table

import (
	"context"

	"github.com/bclub/TableReservationService/internal/domain"
)

type TablesService interface {
	Create(ctx context.Context, number int, status domain.TableStatus) (*domain.Table, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
