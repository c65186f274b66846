package tables

import (
	"context"

	"github.com/bclub/TableReservationService/internal/domain"
)

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	GetAll(ctx context.Context) ([]*domain.Table, error)
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	Create(ctx context.Context, t *domain.Table) (*domain.Table, error)
	Update(ctx context.Context, id int64, update domain.TableUpdate) (*domain.Table, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
