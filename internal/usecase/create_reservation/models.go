package create_reservation

import (
	"time"

	"github.com/bclub/TableReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64            // ID пользователя (владелец бронирования)
	TableID   int64            // ID стола
	Date      string           // Дата бронирования (YYYY-MM-DD)
	StartTime types.TimeString // Начало интервала (включительно)
	EndTime   types.TimeString // Конец интервала (не включительно)
	Comment   *string          // Комментарий (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	UserID    int64
	TableID   int64
	Date      string
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    string
	Comment   *string
	CreatedAt time.Time
}
