package get_time_slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bclub/TableReservationService/internal/domain"
	"github.com/bclub/TableReservationService/pkg/types"
)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
}

func (f *fakeReservationRepo) GetWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, r := range f.reservations {
		if filter.TableID != nil && r.TableID != *filter.TableID {
			continue
		}
		if filter.Date != nil && r.Date != *filter.Date {
			continue
		}
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

type fakeSettingsProvider struct {
	settings *domain.ClubSettings
}

func (f *fakeSettingsProvider) GetSettings(_ context.Context) (*domain.ClubSettings, error) {
	return f.settings, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func defaultSettings() *domain.ClubSettings {
	return &domain.ClubSettings{
		ID:           1,
		OpeningTime:  "15:00",
		ClosingTime:  "00:00",
		SlotDuration: 2,
		ClubName:     "Бильярдный клуб",
	}
}

func activeReservation(id, tableID int64, date, start, end string) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		UserID:    1,
		TableID:   tableID,
		Date:      date,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Status:    domain.StatusActive,
	}
}

func TestExecute_MarksBookedSlotUnavailable(t *testing.T) {
	repo := &fakeReservationRepo{reservations: []*domain.Reservation{
		activeReservation(1, 3, "2024-06-01", "17:00", "19:00"),
	}}
	uc := NewUseCase(repo, &fakeSettingsProvider{settings: defaultSettings()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-06-01", TableID: 3})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 5)

	assert.Equal(t, types.TimeString("15:00"), resp.Slots[0].StartTime)
	assert.True(t, resp.Slots[0].IsAvailable)
	assert.False(t, resp.Slots[1].IsAvailable) // 17:00-19:00 занят
	assert.True(t, resp.Slots[2].IsAvailable)
	assert.True(t, resp.Slots[3].IsAvailable)

	// Последний слот выходит за закрытие и не обрезается
	last := resp.Slots[4]
	assert.Equal(t, types.TimeString("23:00"), last.StartTime)
	assert.Equal(t, types.TimeString("01:00"), last.EndTime)
	assert.True(t, last.IsAvailable)
}

func TestExecute_AllSlotsFreeWithoutReservations(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakeSettingsProvider{settings: defaultSettings()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-06-01", TableID: 3})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 5)

	for _, slot := range resp.Slots {
		assert.True(t, slot.IsAvailable)
	}
}

func TestExecute_CancelledReservationFreesSlot(t *testing.T) {
	cancelled := activeReservation(1, 3, "2024-06-01", "17:00", "19:00")
	cancelled.Status = domain.StatusCancelled

	repo := &fakeReservationRepo{reservations: []*domain.Reservation{cancelled}}
	uc := NewUseCase(repo, &fakeSettingsProvider{settings: defaultSettings()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-06-01", TableID: 3})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.True(t, slot.IsAvailable)
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakeSettingsProvider{settings: defaultSettings()}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: "01.06.2024", TableID: 3})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: "2024-06-01", TableID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// Доступность и допуск построены на одном предикате: слот, показанный
// свободным, не пересекается ни с одним активным бронированием стола
func TestExecute_AvailabilityConsistentWithOverlapPredicate(t *testing.T) {
	reservations := []*domain.Reservation{
		activeReservation(1, 3, "2024-06-01", "17:00", "19:00"),
		activeReservation(2, 3, "2024-06-01", "21:00", "22:00"),
	}
	repo := &fakeReservationRepo{reservations: reservations}
	uc := NewUseCase(repo, &fakeSettingsProvider{settings: defaultSettings()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-06-01", TableID: 3})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		candidate := domain.Interval{StartTime: slot.StartTime, EndTime: slot.EndTime}
		conflict := domain.FindConflict(candidate, 3, reservations)
		if slot.IsAvailable {
			assert.Nil(t, conflict, "slot %s-%s shown free but admission would reject", slot.StartTime, slot.EndTime)
		} else {
			assert.NotNil(t, conflict, "slot %s-%s shown busy but admission would accept", slot.StartTime, slot.EndTime)
		}
	}
}
