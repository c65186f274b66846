package update_table

import "github.com/bclub/TableReservationService/internal/domain"

// UpdateTableRequest HTTP request model, nil-поля не меняются
type UpdateTableRequest struct {
	Number *int    `json:"number,omitempty"`
	Status *string `json:"status,omitempty"`
}

// TableResponse HTTP response model
type TableResponse struct {
	ID     int64  `json:"id"`
	Number int    `json:"number"`
	Status string `json:"status"`
}

// ToDomainUpdate конвертирует HTTP запрос в доменное обновление
func (r *UpdateTableRequest) ToDomainUpdate() domain.TableUpdate {
	update := domain.TableUpdate{
		Number: r.Number,
	}
	if r.Status != nil {
		status := domain.TableStatus(*r.Status)
		update.Status = &status
	}
	return update
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(t *domain.Table) *TableResponse {
	return &TableResponse{
		ID:     t.ID,
		Number: t.Number,
		Status: string(t.Status),
	}
}
