package middleware

import (
	"context"

	"github.com/bclub/TableReservationService/internal/domain"
)

// UserProvider отдает пользователя по Telegram-идентификатору
type UserProvider interface {
	GetByTelegramID(ctx context.Context, telegramID string) (*domain.User, error)
}

// MetricsCollector собирает метрики HTTP-запросов
type MetricsCollector interface {
	ObserveHTTPRequest(method, path, status string, seconds float64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
