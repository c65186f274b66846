package domain

// User represents a registered client of the club
// TelegramID - внешний идентификатор из Telegram Mini App, уникален
type User struct {
	ID         int64
	TelegramID string
	Name       string
	Phone      string
	IsAdmin    bool
}
