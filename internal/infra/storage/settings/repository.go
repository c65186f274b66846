package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/bclub/TableReservationService/internal/domain"
	"github.com/bclub/TableReservationService/pkg/dbmetrics"
	"github.com/bclub/TableReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с настройками клуба
// Таблица club_settings содержит единственную запись
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает запись настроек клуба
func (r *Repository) Get(ctx context.Context) (*domain.ClubSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"opening_time",
		"closing_time",
		"slot_duration",
		"club_name",
	).
		From("club_settings").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.ClubSettings
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.OpeningTime,
		&s.ClosingTime,
		&s.SlotDuration,
		&s.ClubName,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	return &s, nil
}

// Create создает запись настроек
// Вызывается один раз при ленивой инициализации дефолтами
func (r *Repository) Create(ctx context.Context, s *domain.ClubSettings) (*domain.ClubSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("club_settings").
		Columns("opening_time", "closing_time", "slot_duration", "club_name").
		Values(s.OpeningTime, s.ClosingTime, s.SlotDuration, s.ClubName).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// Update частично обновляет настройки
func (r *Repository) Update(ctx context.Context, id int64, update domain.ClubSettingsUpdate) (*domain.ClubSettings, error) {
	if update.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("club_settings")
	if update.OpeningTime != nil {
		updateBuilder = updateBuilder.Set("opening_time", *update.OpeningTime)
	}
	if update.ClosingTime != nil {
		updateBuilder = updateBuilder.Set("closing_time", *update.ClosingTime)
	}
	if update.SlotDuration != nil {
		updateBuilder = updateBuilder.Set("slot_duration", *update.SlotDuration)
	}
	if update.ClubName != nil {
		updateBuilder = updateBuilder.Set("club_name", *update.ClubName)
	}

	query, args, err := updateBuilder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, opening_time, closing_time, slot_duration, club_name").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var s domain.ClubSettings
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.OpeningTime,
		&s.ClosingTime,
		&s.SlotDuration,
		&s.ClubName,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan settings: %v", ErrScanRow, err)
	}

	return &s, nil
}
