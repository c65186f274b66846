package create_reservation

import (
	"errors"

	"github.com/bclub/TableReservationService/internal/domain"
)

var (
	// ErrTableNotFound возвращается, когда стол не найден
	ErrTableNotFound = errors.New("create_reservation: table not found")

	// ErrTableUnavailable возвращается, когда стол недоступен для бронирования
	// (статус busy или inactive, выставленный администратором)
	ErrTableUnavailable = errors.New("create_reservation: table is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidTimeRange возвращается, когда start_time >= end_time
	ErrInvalidTimeRange = errors.New("create_reservation: start time must be before end time")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// ConflictError возвращается, когда интервал кандидата пересекается
// с существующим активным бронированием; несёт конфликтующее бронирование,
// чтобы API мог вернуть его клиенту
type ConflictError struct {
	Conflict *domain.Reservation
}

func (e *ConflictError) Error() string {
	return "create_reservation: time slot already booked"
}
