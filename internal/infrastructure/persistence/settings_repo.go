package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"tarkov_market/internal/domain"
	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
	"tarkov_market/pkg/errcodes"
)

type SettingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}
	return nil
}

// Get loads the profile for a game mode. A missing row is reported as
// SettingsNotFound; callers usually substitute entity.DefaultSettings.
func (r *SettingsRepository) Get(ctx context.Context, mode value.GameMode) (entity.Settings, error) {
	query := `SELECT * FROM settings WHERE game_mode = $1`

	var schema settingsSchema
	if err := r.db.GetContext(ctx, &schema, query, mode.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Settings{}, domain.NewError(errcodes.SettingsNotFound, "settings not found")
		}
		return entity.Settings{}, domain.WrapError(err, errcodes.InternalServerError, "failed to get settings")
	}

	settings, err := schema.toDomain()
	if err != nil {
		return entity.Settings{}, domain.WrapError(err, errcodes.InternalServerError, "failed to decode settings")
	}

	return settings, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, settings entity.Settings) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		schema, err := fromSettings(settings)
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to encode settings")
		}
		schema.UpdatedAt = time.Now()

		query := `
			INSERT INTO settings (
				game_mode, player_level, has_flea, trader_levels,
				station_levels, intelligence_center_level,
				hideout_management_level, min_dogtag_level,
				hide_dogtag_barters, completed_tasks, custom_prices,
				updated_at
			) VALUES (
				:game_mode, :player_level, :has_flea, :trader_levels,
				:station_levels, :intelligence_center_level,
				:hideout_management_level, :min_dogtag_level,
				:hide_dogtag_barters, :completed_tasks, :custom_prices,
				:updated_at
			)
			ON CONFLICT (game_mode) DO UPDATE SET
				player_level = EXCLUDED.player_level,
				has_flea = EXCLUDED.has_flea,
				trader_levels = EXCLUDED.trader_levels,
				station_levels = EXCLUDED.station_levels,
				intelligence_center_level = EXCLUDED.intelligence_center_level,
				hideout_management_level = EXCLUDED.hideout_management_level,
				min_dogtag_level = EXCLUDED.min_dogtag_level,
				hide_dogtag_barters = EXCLUDED.hide_dogtag_barters,
				completed_tasks = EXCLUDED.completed_tasks,
				custom_prices = EXCLUDED.custom_prices,
				updated_at = EXCLUDED.updated_at`

		if _, err := tx.NamedExecContext(ctx, query, schema); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to upsert settings")
		}
		return nil
	})
}
