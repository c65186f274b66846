package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bclub/TableReservationService/internal/domain"
	settingsRepo "github.com/bclub/TableReservationService/internal/infra/storage/settings"
	"github.com/bclub/TableReservationService/pkg/ptr"
	"github.com/bclub/TableReservationService/pkg/types"
)

type fakeSettingsRepo struct {
	settings *domain.ClubSettings
	creates  int
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.ClubSettings, error) {
	if f.settings == nil {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) Create(_ context.Context, s *domain.ClubSettings) (*domain.ClubSettings, error) {
	f.creates++
	created := *s
	created.ID = 1
	f.settings = &created
	return &created, nil
}

func (f *fakeSettingsRepo) Update(_ context.Context, id int64, update domain.ClubSettingsUpdate) (*domain.ClubSettings, error) {
	if update.OpeningTime != nil {
		f.settings.OpeningTime = *update.OpeningTime
	}
	if update.ClosingTime != nil {
		f.settings.ClosingTime = *update.ClosingTime
	}
	if update.SlotDuration != nil {
		f.settings.SlotDuration = *update.SlotDuration
	}
	if update.ClubName != nil {
		f.settings.ClubName = *update.ClubName
	}
	return f.settings, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetSettings_CreatesDefaultsLazily(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo, nopLogger{})

	settings, err := svc.GetSettings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("15:00"), settings.OpeningTime)
	assert.Equal(t, types.TimeString("00:00"), settings.ClosingTime)
	assert.Equal(t, 2, settings.SlotDuration)
	assert.Equal(t, "Бильярдный клуб", settings.ClubName)
	assert.Equal(t, 1, repo.creates)

	// Повторный запрос не создает вторую запись
	_, err = svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.creates)
}

func TestUpdateSettings_PartialUpdate(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo, nopLogger{})

	updated, err := svc.UpdateSettings(context.Background(), domain.ClubSettingsUpdate{
		OpeningTime: ptr.Ptr(types.TimeString("10:00")),
	})
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("10:00"), updated.OpeningTime)
	// Остальные поля не тронуты
	assert.Equal(t, types.TimeString("00:00"), updated.ClosingTime)
	assert.Equal(t, 2, updated.SlotDuration)
}

func TestUpdateSettings_Validation(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, nopLogger{})
	ctx := context.Background()

	_, err := svc.UpdateSettings(ctx, domain.ClubSettingsUpdate{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)

	_, err = svc.UpdateSettings(ctx, domain.ClubSettingsUpdate{SlotDuration: ptr.Ptr(0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateSettings(ctx, domain.ClubSettingsUpdate{SlotDuration: ptr.Ptr(13)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateSettings(ctx, domain.ClubSettingsUpdate{OpeningTime: ptr.Ptr(types.TimeString("25:99"))})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateSettings(ctx, domain.ClubSettingsUpdate{ClubName: ptr.Ptr("")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
