package get_me

import "github.com/bclub/TableReservationService/internal/domain"

// UserResponse HTTP response model
type UserResponse struct {
	ID         int64  `json:"id"`
	TelegramID string `json:"telegram_id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	IsAdmin    bool   `json:"is_admin"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		TelegramID: u.TelegramID,
		Name:       u.Name,
		Phone:      u.Phone,
		IsAdmin:    u.IsAdmin,
	}
}
