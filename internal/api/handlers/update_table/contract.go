package update_table

import (
	"context"

	"github.com/bclub/TableReservationService/internal/domain"
)

type TablesService interface {
	Update(ctx context.Context, id int64, update domain.TableUpdate) (*domain.Table, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
