package get_time_slots

import "github.com/bclub/TableReservationService/pkg/types"

// Request модель запроса на получение слотов
type Request struct {
	Date    string // Дата (YYYY-MM-DD)
	TableID int64  // ID стола
}

// Response модель ответа со слотами дня
type Response struct {
	Date    string
	TableID int64
	Slots   []Slot
}

// Slot временной слот с признаком доступности
type Slot struct {
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
}
