package reservations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bclub/TableReservationService/internal/domain"
	reservationRepo "github.com/bclub/TableReservationService/internal/infra/storage/reservation"
	"github.com/bclub/TableReservationService/pkg/ptr"
	"github.com/bclub/TableReservationService/pkg/types"
)

type fakeReservationRepo struct {
	reservations map[int64]*domain.Reservation
}

func newFakeRepo(reservations ...*domain.Reservation) *fakeReservationRepo {
	repo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{}}
	for _, r := range reservations {
		repo.reservations[r.ID] = r
	}
	return repo
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r, nil
}

func (f *fakeReservationRepo) GetAll(_ context.Context) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, r := range f.reservations {
		result = append(result, r)
	}
	return result, nil
}

func (f *fakeReservationRepo) GetWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, r := range f.reservations {
		if filter.UserID != nil && r.UserID != *filter.UserID {
			continue
		}
		if filter.Date != nil && r.Date != *filter.Date {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

func (f *fakeReservationRepo) Update(_ context.Context, id int64, update domain.ReservationUpdate) (*domain.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	if update.Status != nil {
		r.Status = *update.Status
	}
	if update.Comment != nil {
		r.Comment = update.Comment
	}
	if update.StartTime != nil {
		r.StartTime = *update.StartTime
	}
	if update.EndTime != nil {
		r.EndTime = *update.EndTime
	}
	return r, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) (*domain.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	r.Status = status
	return r, nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.reservations[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(f.reservations, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	owner    = &domain.User{ID: 1, TelegramID: "100", Name: "Игрок"}
	stranger = &domain.User{ID: 2, TelegramID: "200", Name: "Другой"}
	admin    = &domain.User{ID: 3, TelegramID: "300", Name: "Админ", IsAdmin: true}
)

func ownedReservation(id int64, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		UserID:    owner.ID,
		TableID:   3,
		Date:      "2024-06-01",
		StartTime: types.TimeString("17:00"),
		EndTime:   types.TimeString("19:00"),
		Status:    status,
	}
}

func TestGetByID_AccessControl(t *testing.T) {
	svc := NewService(newFakeRepo(ownedReservation(1, domain.StatusActive)), nopLogger{})
	ctx := context.Background()

	_, err := svc.GetByID(ctx, 1, owner)
	assert.NoError(t, err)

	_, err = svc.GetByID(ctx, 1, admin)
	assert.NoError(t, err)

	_, err = svc.GetByID(ctx, 1, stranger)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(ctx, 99, owner)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestList_AllRequiresAdmin(t *testing.T) {
	svc := NewService(newFakeRepo(ownedReservation(1, domain.StatusActive)), nopLogger{})
	ctx := context.Background()

	_, err := svc.List(ctx, owner, true)
	assert.ErrorIs(t, err, ErrAccessDenied)

	all, err := svc.List(ctx, admin, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestList_ReturnsOnlyOwnReservations(t *testing.T) {
	other := ownedReservation(2, domain.StatusActive)
	other.UserID = stranger.ID

	svc := NewService(newFakeRepo(ownedReservation(1, domain.StatusActive), other), nopLogger{})

	own, err := svc.List(context.Background(), owner, false)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, int64(1), own[0].ID)
}

func TestCancel_OwnerCancelsActiveReservation(t *testing.T) {
	svc := NewService(newFakeRepo(ownedReservation(1, domain.StatusActive)), nopLogger{})

	cancelled, err := svc.Cancel(context.Background(), 1, owner)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
}

func TestCancel_TerminalStatusRejected(t *testing.T) {
	svc := NewService(newFakeRepo(
		ownedReservation(1, domain.StatusCancelled),
		ownedReservation(2, domain.StatusCompleted),
	), nopLogger{})
	ctx := context.Background()

	_, err := svc.Cancel(ctx, 1, owner)
	assert.ErrorIs(t, err, ErrCannotCancel)

	_, err = svc.Cancel(ctx, 2, owner)
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_StrangerDenied(t *testing.T) {
	svc := NewService(newFakeRepo(ownedReservation(1, domain.StatusActive)), nopLogger{})

	_, err := svc.Cancel(context.Background(), 1, stranger)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdate_StatusMachineEnforced(t *testing.T) {
	svc := NewService(newFakeRepo(
		ownedReservation(1, domain.StatusActive),
		ownedReservation(2, domain.StatusCompleted),
	), nopLogger{})
	ctx := context.Background()

	// active -> completed разрешен
	updated, err := svc.Update(ctx, 1, owner, domain.ReservationUpdate{
		Status: ptr.Ptr(domain.StatusCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)

	// completed -> active запрещен
	_, err = svc.Update(ctx, 2, owner, domain.ReservationUpdate{
		Status: ptr.Ptr(domain.StatusActive),
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdate_TimeRangeValidatedAgainstCurrentState(t *testing.T) {
	svc := NewService(newFakeRepo(ownedReservation(1, domain.StatusActive)), nopLogger{})
	ctx := context.Background()

	// Новое начало позже текущего конца
	_, err := svc.Update(ctx, 1, owner, domain.ReservationUpdate{
		StartTime: ptr.Ptr(types.TimeString("20:00")),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Согласованная пара проходит
	_, err = svc.Update(ctx, 1, owner, domain.ReservationUpdate{
		StartTime: ptr.Ptr(types.TimeString("20:00")),
		EndTime:   ptr.Ptr(types.TimeString("22:00")),
	})
	assert.NoError(t, err)
}

func TestUpdate_EmptyUpdateRejected(t *testing.T) {
	svc := NewService(newFakeRepo(ownedReservation(1, domain.StatusActive)), nopLogger{})

	_, err := svc.Update(context.Background(), 1, owner, domain.ReservationUpdate{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)
}

func TestDelete_AccessControl(t *testing.T) {
	repo := newFakeRepo(ownedReservation(1, domain.StatusActive), ownedReservation(2, domain.StatusActive))
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	err := svc.Delete(ctx, 1, stranger)
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.Delete(ctx, 1, owner)
	assert.NoError(t, err)

	err = svc.Delete(ctx, 2, admin)
	assert.NoError(t, err)

	assert.Empty(t, repo.reservations)
}
