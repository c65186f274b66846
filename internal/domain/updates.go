package domain

import "github.com/bclub/TableReservationService/pkg/types"

// ReservationUpdate частичное обновление бронирования
// nil-поле означает "не менять"
type ReservationUpdate struct {
	TableID   *int64
	Date      *string
	StartTime *types.TimeString
	EndTime   *types.TimeString
	Status    *ReservationStatus
	Comment   *string
}

// IsEmpty проверяет, что обновлять нечего
func (u *ReservationUpdate) IsEmpty() bool {
	return u.TableID == nil && u.Date == nil && u.StartTime == nil &&
		u.EndTime == nil && u.Status == nil && u.Comment == nil
}

// TableUpdate частичное обновление стола
type TableUpdate struct {
	Number *int
	Status *TableStatus
}

// IsEmpty проверяет, что обновлять нечего
func (u *TableUpdate) IsEmpty() bool {
	return u.Number == nil && u.Status == nil
}

// ClubSettingsUpdate частичное обновление настроек клуба
type ClubSettingsUpdate struct {
	OpeningTime  *types.TimeString
	ClosingTime  *types.TimeString
	SlotDuration *int
	ClubName     *string
}

// IsEmpty проверяет, что обновлять нечего
func (u *ClubSettingsUpdate) IsEmpty() bool {
	return u.OpeningTime == nil && u.ClosingTime == nil &&
		u.SlotDuration == nil && u.ClubName == nil
}
