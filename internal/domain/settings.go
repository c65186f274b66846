package domain

import "github.com/bclub/TableReservationService/pkg/types"

// ClubSettings конфигурация клуба
// Единственная запись (singleton); создается лениво с дефолтами, если отсутствует
type ClubSettings struct {
	ID           int64
	OpeningTime  types.TimeString
	ClosingTime  types.TimeString // может "переходить" за полночь, "00:00" = конец суток
	SlotDuration int              // длительность слота в часах
	ClubName     string
}

// DefaultClubSettings возвращает настройки по умолчанию
func DefaultClubSettings() *ClubSettings {
	return &ClubSettings{
		OpeningTime:  types.TimeString(DefaultOpeningTime),
		ClosingTime:  types.TimeString(DefaultClosingTime),
		SlotDuration: DefaultSlotDurationHours,
		ClubName:     DefaultClubName,
	}
}
