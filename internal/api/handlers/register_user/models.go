package register_user

import "github.com/bclub/TableReservationService/internal/domain"

// RegisterUserRequest HTTP request model
type RegisterUserRequest struct {
	TelegramID string `json:"telegram_id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
}

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
