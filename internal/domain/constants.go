package domain

// Default club settings
// Используются при ленивом создании единственной записи настроек
const (
	DefaultOpeningTime       = "15:00"
	DefaultClosingTime       = "00:00" // 00:00 = конец суток
	DefaultSlotDurationHours = 2
	DefaultClubName          = "Бильярдный клуб"
)

// Business validation constants
const (
	MinSlotDurationHours = 1
	MaxSlotDurationHours = 12
	MaxCommentLength     = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
