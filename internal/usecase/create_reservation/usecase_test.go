package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bclub/TableReservationService/internal/domain"
	tableRepo "github.com/bclub/TableReservationService/internal/infra/storage/table"
	"github.com/bclub/TableReservationService/pkg/types"
)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	nextID       int64
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	f.nextID++
	created := *res
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.reservations = append(f.reservations, &created)
	return &created, nil
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

type fakeTableRepo struct {
	tables map[int64]*domain.Table
}

func (f *fakeTableRepo) GetByID(_ context.Context, id int64) (*domain.Table, error) {
	table, ok := f.tables[id]
	if !ok {
		return nil, tableRepo.ErrTableNotFound
	}
	return table, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(reservations *fakeReservationRepo, tables *fakeTableRepo) *UseCase {
	return NewUseCase(reservations, tables, &fakeTxManager{}, nopLogger{})
}

func availableTable(id int64) *fakeTableRepo {
	return &fakeTableRepo{tables: map[int64]*domain.Table{
		id: {ID: id, Number: int(id), Status: domain.TableAvailable},
	}}
}

func request(tableID int64, date, start, end string) *Request {
	return &Request{
		UserID:    1,
		TableID:   tableID,
		Date:      date,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func TestExecute_CreatesReservation(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, availableTable(3))

	resp, err := uc.Execute(context.Background(), request(3, "2024-06-01", "17:00", "19:00"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(3), resp.TableID)
	assert.Equal(t, string(domain.StatusActive), resp.Status)
	assert.Len(t, repo.reservations, 1)
}

func TestExecute_RejectsOverlapWithConflictPayload(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, availableTable(3))

	first, err := uc.Execute(context.Background(), request(3, "2024-06-01", "17:00", "19:00"))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), request(3, "2024-06-01", "18:00", "20:00"))
	require.Error(t, err)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, first.ID, conflictErr.Conflict.ID)
	assert.Equal(t, types.TimeString("17:00"), conflictErr.Conflict.StartTime)
}

func TestExecute_RepeatedRejectionLeavesStateUnchanged(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, availableTable(3))

	_, err := uc.Execute(context.Background(), request(3, "2024-06-01", "17:00", "19:00"))
	require.NoError(t, err)

	conflicting := request(3, "2024-06-01", "18:00", "20:00")
	for i := 0; i < 2; i++ {
		_, err := uc.Execute(context.Background(), conflicting)
		var conflictErr *ConflictError
		require.ErrorAs(t, err, &conflictErr)
	}

	assert.Len(t, repo.reservations, 1)
}

func TestExecute_AcceptsTouchingInterval(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, availableTable(3))

	_, err := uc.Execute(context.Background(), request(3, "2024-06-01", "17:00", "19:00"))
	require.NoError(t, err)

	// Интервалы полуоткрытые: 19:00-21:00 граничит, но не пересекается
	_, err = uc.Execute(context.Background(), request(3, "2024-06-01", "19:00", "21:00"))
	require.NoError(t, err)

	assert.Len(t, repo.reservations, 2)
}

func TestExecute_IgnoresReservationsOnOtherTablesAndDates(t *testing.T) {
	repo := &fakeReservationRepo{}
	tables := &fakeTableRepo{tables: map[int64]*domain.Table{
		3: {ID: 3, Number: 3, Status: domain.TableAvailable},
		5: {ID: 5, Number: 5, Status: domain.TableAvailable},
	}}
	uc := newTestUseCase(repo, tables)

	_, err := uc.Execute(context.Background(), request(3, "2024-06-01", "17:00", "19:00"))
	require.NoError(t, err)

	// Тот же интервал на другом столе
	_, err = uc.Execute(context.Background(), request(5, "2024-06-01", "17:00", "19:00"))
	require.NoError(t, err)

	// Тот же стол, другая дата
	_, err = uc.Execute(context.Background(), request(3, "2024-06-02", "17:00", "19:00"))
	require.NoError(t, err)

	assert.Len(t, repo.reservations, 3)
}

func TestExecute_TableNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeTableRepo{tables: map[int64]*domain.Table{}})

	_, err := uc.Execute(context.Background(), request(42, "2024-06-01", "17:00", "19:00"))
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestExecute_TableUnavailable(t *testing.T) {
	for _, status := range []domain.TableStatus{domain.TableBusy, domain.TableInactive} {
		tables := &fakeTableRepo{tables: map[int64]*domain.Table{
			3: {ID: 3, Number: 3, Status: status},
		}}
		repo := &fakeReservationRepo{}
		uc := newTestUseCase(repo, tables)

		_, err := uc.Execute(context.Background(), request(3, "2024-06-01", "17:00", "19:00"))
		assert.ErrorIs(t, err, ErrTableUnavailable)
		assert.Empty(t, repo.reservations)
	}
}

func TestExecute_InvalidTimeRange(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, availableTable(3))

	_, err := uc.Execute(context.Background(), request(3, "2024-06-01", "19:00", "17:00"))
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = uc.Execute(context.Background(), request(3, "2024-06-01", "17:00", "17:00"))
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, availableTable(3))

	_, err := uc.Execute(context.Background(), request(3, "01.06.2024", "17:00", "19:00"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), request(0, "2024-06-01", "17:00", "19:00"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	badTime := request(3, "2024-06-01", "25:00", "26:00")
	_, err = uc.Execute(context.Background(), badTime)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ConflictErrorIsNotSentinel(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, availableTable(3))

	_, err := uc.Execute(context.Background(), request(3, "2024-06-01", "17:00", "19:00"))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), request(3, "2024-06-01", "17:00", "19:00"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInternal))
	assert.False(t, errors.Is(err, ErrTableUnavailable))
}
