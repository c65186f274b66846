package create_reservation

import (
	"time"

	"github.com/bclub/TableReservationService/internal/domain"
	createReservation "github.com/bclub/TableReservationService/internal/usecase/create_reservation"
	"github.com/bclub/TableReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	TableID   int64   `json:"table_id"`
	Date      string  `json:"date"`       // "2024-06-01"
	StartTime string  `json:"start_time"` // "17:00"
	EndTime   string  `json:"end_time"`   // "19:00"
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

// ConflictResponse тело ответа 400 при пересечении интервалов:
// сообщение плюс бронирование, с которым конфликтует кандидат
type ConflictResponse struct {
	Message  string               `json:"message"`
	Conflict *ReservationResponse `json:"conflict"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserID:    userID,
		TableID:   r.TableID,
		Date:      r.Date,
		StartTime: startTime,
		EndTime:   endTime,
		Comment:   r.Comment,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		TableID:   resp.TableID,
		Date:      resp.Date,
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Status:    resp.Status,
		Comment:   resp.Comment,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservation конвертирует доменную модель в HTTP response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
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
