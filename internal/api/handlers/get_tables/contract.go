package get_tables

import (
	"context"

	"github.com/bclub/TableReservationService/internal/domain"
)

type TablesService interface {
	List(ctx context.Context) ([]*domain.Table, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
