package update_reservation

import (
	"time"

	"github.com/bclub/TableReservationService/internal/domain"
	"github.com/bclub/TableReservationService/pkg/types"
)

// UpdateReservationRequest HTTP request model, nil-поля не меняются.
// Владелец бронирования смене не подлежит
type UpdateReservationRequest struct {
	TableID   *int64  `json:"table_id,omitempty"`
	Date      *string `json:"date,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Status    *string `json:"status,omitempty"`
	Comment   *string `json:"comment,omitempty"`
}

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

// ToDomainUpdate конвертирует HTTP запрос в доменное обновление
func (r *UpdateReservationRequest) ToDomainUpdate() (domain.ReservationUpdate, error) {
	update := domain.ReservationUpdate{
		TableID: r.TableID,
		Date:    r.Date,
		Comment: r.Comment,
	}

	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return domain.ReservationUpdate{}, err
		}
		update.StartTime = &startTime
	}
	if r.EndTime != nil {
		endTime, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return domain.ReservationUpdate{}, err
		}
		update.EndTime = &endTime
	}
	if r.Status != nil {
		status := domain.ReservationStatus(*r.Status)
		update.Status = &status
	}

	return update, nil
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
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
