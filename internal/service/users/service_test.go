package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bclub/TableReservationService/internal/domain"
	userRepo "github.com/bclub/TableReservationService/internal/infra/storage/user"
)

type fakeUserRepo struct {
	byTelegramID map[string]*domain.User
	nextID       int64
}

func newFakeRepo() *fakeUserRepo {
	return &fakeUserRepo{byTelegramID: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := f.byTelegramID[u.TelegramID]; ok {
		return nil, userRepo.ErrDuplicateTelegramID
	}
	f.nextID++
	created := *u
	created.ID = f.nextID
	f.byTelegramID[u.TelegramID] = &created
	return &created, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range f.byTelegramID {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (f *fakeUserRepo) GetByTelegramID(_ context.Context, telegramID string) (*domain.User, error) {
	u, ok := f.byTelegramID[telegramID]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestRegister_IdempotentByTelegramID(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})
	ctx := context.Background()

	req := &RegisterRequest{TelegramID: "12345", Name: "Игрок", Phone: "+79990000000"}

	first, created, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.True(t, created)

	// Повторная регистрация возвращает того же пользователя
	second, created, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
}

func TestRegister_Validation(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})
	ctx := context.Background()

	_, _, err := svc.Register(ctx, &RegisterRequest{Name: "Игрок", Phone: "+7999"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = svc.Register(ctx, &RegisterRequest{TelegramID: "1", Phone: "+7999"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = svc.Register(ctx, &RegisterRequest{TelegramID: "1", Name: "Игрок"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByTelegramID(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})
	ctx := context.Background()

	_, _, err := svc.Register(ctx, &RegisterRequest{TelegramID: "12345", Name: "Игрок", Phone: "+7999"})
	require.NoError(t, err)

	user, err := svc.GetByTelegramID(ctx, "12345")
	require.NoError(t, err)
	assert.Equal(t, "Игрок", user.Name)

	_, err = svc.GetByTelegramID(ctx, "99999")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
