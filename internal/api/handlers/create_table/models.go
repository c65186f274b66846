package create_table

import "github.com/bclub/TableReservationService/internal/domain"

// CreateTableRequest HTTP request model
type CreateTableRequest struct {
	Number int    `json:"number"`
	Status string `json:"status,omitempty"` // по умолчанию available
}

// TableResponse HTTP response model
type TableResponse struct {
	ID     int64  `json:"id"`
	Number int    `json:"number"`
	Status string `json:"status"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(t *domain.Table) *TableResponse {
	return &TableResponse{
		ID:     t.ID,
		Number: t.Number,
		Status: string(t.Status),
	}
}
