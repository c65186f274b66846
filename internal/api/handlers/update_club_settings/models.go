package update_club_settings

import (
	"github.com/bclub/TableReservationService/internal/domain"
	"github.com/bclub/TableReservationService/pkg/types"
)

// UpdateClubSettingsRequest HTTP request model, nil-поля не меняются
type UpdateClubSettingsRequest struct {
	OpeningTime  *string `json:"opening_time,omitempty"`
	ClosingTime  *string `json:"closing_time,omitempty"`
	SlotDuration *int    `json:"slot_duration,omitempty"`
	ClubName     *string `json:"club_name,omitempty"`
}

// ClubSettingsResponse HTTP response model
type ClubSettingsResponse struct {
	ID           int64  `json:"id"`
	OpeningTime  string `json:"opening_time"`
	ClosingTime  string `json:"closing_time"`
	SlotDuration int    `json:"slot_duration"`
	ClubName     string `json:"club_name"`
}

// ToDomainUpdate конвертирует HTTP запрос в доменное обновление
func (r *UpdateClubSettingsRequest) ToDomainUpdate() (domain.ClubSettingsUpdate, error) {
	update := domain.ClubSettingsUpdate{
		SlotDuration: r.SlotDuration,
		ClubName:     r.ClubName,
	}

	if r.OpeningTime != nil {
		openingTime, err := types.NewTimeStringFromString(*r.OpeningTime)
		if err != nil {
			return domain.ClubSettingsUpdate{}, err
		}
		update.OpeningTime = &openingTime
	}
	if r.ClosingTime != nil {
		closingTime, err := types.NewTimeStringFromString(*r.ClosingTime)
		if err != nil {
			return domain.ClubSettingsUpdate{}, err
		}
		update.ClosingTime = &closingTime
	}

	return update, nil
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
