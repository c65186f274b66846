package get_tables

import "github.com/bclub/TableReservationService/internal/domain"

// TableResponse HTTP response model
type TableResponse struct {
	ID     int64  `json:"id"`
	Number int    `json:"number"`
	Status string `json:"status"`
}

// FromDomain конвертирует доменные модели в HTTP response
func FromDomain(tables []*domain.Table) []TableResponse {
	result := make([]TableResponse, len(tables))
	for i, t := range tables {
		result[i] = TableResponse{
			ID:     t.ID,
			Number: t.Number,
			Status: string(t.Status),
		}
	}
	return result
}
