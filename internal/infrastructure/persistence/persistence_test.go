package persistence_test

import (
	"context"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"tarkov_market/internal/domain"
	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
	"tarkov_market/internal/infrastructure/persistence"
	"tarkov_market/pkg/dbtest"
	"tarkov_market/pkg/errcodes"
)

// testDB connects to the database from TEST_POSTGRES_DSN and applies the
// schema. Tests are skipped when the variable is unset.
func testDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, dbtest.MigrateFromFile(db, "../../../migrations/001_init.sql"))

	_, err = db.Exec(`TRUNCATE settings, watches RESTART IDENTITY`)
	require.NoError(t, err)

	return db
}

func TestSettingsRepository(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := persistence.NewSettingsRepository(testDB(t))

	_, err := repo.Get(ctx, value.GameModeRegular)
	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.SettingsNotFound, code)

	settings := entity.DefaultSettings(value.GameModeRegular)
	settings.HideDogtagBarters = true
	settings.CompletedTasks["task-1"] = true
	settings.CustomPrices["bolts"] = 9000

	rq.NoError(repo.Upsert(ctx, settings))

	stored, err := repo.Get(ctx, value.GameModeRegular)
	rq.NoError(err)
	rq.Equal(settings.GameMode, stored.GameMode)
	rq.True(stored.HideDogtagBarters)
	rq.True(stored.TaskCompleted("task-1"))
	rq.Equal(int64(9000), stored.CustomPrices["bolts"])
	rq.Equal(settings.TraderLevels, stored.TraderLevels)

	// Upsert replaces the existing row for the mode.
	settings.IntelligenceCenterLevel = 0
	rq.NoError(repo.Upsert(ctx, settings))

	stored, err = repo.Get(ctx, value.GameModeRegular)
	rq.NoError(err)
	rq.Equal(0, stored.IntelligenceCenterLevel)
}

func TestWatchRepository(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := persistence.NewWatchRepository(testDB(t))

	watch := entity.Watch{ItemID: "bolts", ThresholdRUB: 12000, ChatID: 42}
	rq.NoError(repo.Create(ctx, &watch))
	rq.NotZero(watch.ID)
	rq.False(watch.CreatedAt.IsZero())

	loaded, err := repo.GetByID(ctx, watch.ID)
	rq.NoError(err)
	rq.Equal("bolts", loaded.ItemID)
	rq.Equal(int64(12000), loaded.ThresholdRUB)

	second := entity.Watch{ItemID: "wires", ThresholdRUB: 5000}
	rq.NoError(repo.Create(ctx, &second))

	watches, err := repo.List(ctx)
	rq.NoError(err)
	rq.Len(watches, 2)

	rq.NoError(repo.Delete(ctx, watch.ID))

	err = repo.Delete(ctx, watch.ID)
	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.WatchNotFound, code)

	_, err = repo.GetByID(ctx, watch.ID)
	code, ok = domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.WatchNotFound, code)
}
