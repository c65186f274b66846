package get_time_slots

import (
	getTimeSlots "github.com/bclub/TableReservationService/internal/usecase/get_time_slots"
)

// TimeSlotResponse HTTP response model одного слота
type TimeSlotResponse struct {
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimeSlots.Response) []TimeSlotResponse {
	result := make([]TimeSlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		result[i] = TimeSlotResponse{
			StartTime:   slot.StartTime.String(),
			EndTime:     slot.EndTime.String(),
			IsAvailable: slot.IsAvailable,
		}
	}
	return result
}
