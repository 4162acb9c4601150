package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"tarkov_market/internal/domain"
	"tarkov_market/internal/domain/entity"
	"tarkov_market/pkg/errcodes"
)

type WatchRepository struct {
	db *sqlx.DB
}

func NewWatchRepository(db *sqlx.DB) *WatchRepository {
	return &WatchRepository{db: db}
}

func (r *WatchRepository) Create(ctx context.Context, watch *entity.Watch) error {
	query := `
		INSERT INTO watches (item_id, threshold_rub, chat_id, created_at)
		VALUES ($1, $2, $3, now())
		RETURNING id, created_at`

	row := r.db.QueryRowxContext(ctx, query, watch.ItemID, watch.ThresholdRUB, watch.ChatID)
	if err := row.Scan(&watch.ID, &watch.CreatedAt); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to create watch")
	}

	return nil
}

func (r *WatchRepository) GetByID(ctx context.Context, id int64) (*entity.Watch, error) {
	query := `SELECT * FROM watches WHERE id = $1`

	var schema watchSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.WatchNotFound, "watch not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get watch")
	}

	watch := schema.toDomain()

	return &watch, nil
}

func (r *WatchRepository) List(ctx context.Context) ([]entity.Watch, error) {
	query := `SELECT * FROM watches ORDER BY id`

	var schemas []watchSchema
	if err := r.db.SelectContext(ctx, &schemas, query); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list watches")
	}

	watches := make([]entity.Watch, 0, len(schemas))
	for i := range schemas {
		watches = append(watches, schemas[i].toDomain())
	}

	return watches, nil
}

func (r *WatchRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM watches WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to delete watch")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to check delete result")
	}

	if affected == 0 {
		return domain.NewError(errcodes.WatchNotFound, "watch not found")
	}

	return nil
}
