package get_date_reservations

import (
	"time"

	"github.com/bclub/TableReservationService/internal/domain"
)

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	TableID   int64   `json:"table_id"`
	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Status    string  `json:"status"`
	Comment   *string `json:"comment,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// FromDomain конвертирует доменные модели в HTTP response
func FromDomain(reservations []*domain.Reservation) []ReservationResponse {
	result := make([]ReservationResponse, len(reservations))
	for i, r := range reservations {
		result[i] = ReservationResponse{
			ID:        r.ID,
			UserID:    r.UserID,
			TableID:   r.TableID,
			Date:      r.Date,
			StartTime: r.StartTime.String(),
			EndTime:   r.EndTime.String(),
			Status:    string(r.Status),
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		}
	}
	return result
}
