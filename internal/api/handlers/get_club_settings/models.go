package get_club_settings

import "github.com/bclub/TableReservationService/internal/domain"

// ClubSettingsResponse HTTP response model
type ClubSettingsResponse struct {
	ID           int64  `json:"id"`
	OpeningTime  string `json:"opening_time"`
	ClosingTime  string `json:"closing_time"`
	SlotDuration int    `json:"slot_duration"`
	ClubName     string `json:"club_name"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(s *domain.ClubSettings) *ClubSettingsResponse {
	return &ClubSettingsResponse{
		ID:           s.ID,
		OpeningTime:  s.OpeningTime.String(),
		ClosingTime:  s.ClosingTime.String(),
		SlotDuration: s.SlotDuration,
		ClubName:     s.ClubName,
	}
}
