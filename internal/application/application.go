package application

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"tarkov_market/internal/config"
	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/service/catalog"
	"tarkov_market/internal/domain/service/market"
	"tarkov_market/internal/infrastructure/notifier"
	"tarkov_market/internal/infrastructure/persistence"
	"tarkov_market/internal/infrastructure/tarkovdev"
	"tarkov_market/internal/server"
	"tarkov_market/internal/transport/bot"
	"tarkov_market/internal/worker"
	"tarkov_market/pkg/application/connectors"
	"tarkov_market/pkg/application/modules"
	"tarkov_market/pkg/logx"
	"tarkov_market/pkg/middlewarex"
)

const (
	httpShutdownTimeout = 10 * time.Second
	dealsBuffer         = 100
)

func Run(ctx context.Context) error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	// 2. Connectors
	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}
	logger(ctx).Info("database connection OK")

	rd := &connectors.Redis{
		Address:            cfg.Redis.Address,
		Username:           cfg.Redis.Username,
		Password:           cfg.Redis.Password,
		DatabaseNumber:     cfg.Redis.DatabaseNumber,
		PoolSize:           cfg.Redis.PoolSize,
		MinIdleConnections: cfg.Redis.MinIdleConnections,
		MaxIdleConnections: cfg.Redis.MaxIdleConnections,
	}
	rdb := rd.Client(ctx)
	defer rd.Close(ctx)

	// 3. Repositories and upstream client
	settingsRepo := persistence.NewSettingsRepository(db)
	watchRepo := persistence.NewWatchRepository(db)
	tarkovClient := tarkovdev.NewClient(cfg.Tarkov, rdb)

	// 4. Domain services
	catalogService := catalog.NewService()
	marketService := market.NewService(
		tarkovClient,
		catalogService,
		settingsRepo,
		watchRepo,
		cfg.Tarkov.GetLanguage(),
		cfg.Tarkov.GetGameMode(),
	)

	// 5. Refresh worker
	dealsCh := make(chan entity.Deal, dealsBuffer)

	refresher := worker.NewCatalogRefresher(marketService, dealsCh, cfg.Tarkov.RefreshInterval)
	if err := refresher.Start(ctx); err != nil {
		return fmt.Errorf("refresher.Start: %w", err)
	}
	defer refresher.Stop()

	g, ctx := errgroup.WithContext(ctx)

	// 6. Telegram surfaces, optional
	if cfg.Bot.Enabled() {
		alertBot, err := notifier.NewTelegramBot(cfg.Bot.Token, cfg.Bot.ChatID)
		if err != nil {
			return fmt.Errorf("notifier bot: %w", err)
		}

		g.Go(func() error {
			if err := alertBot.Run(ctx, dealsCh); err != nil && ctx.Err() == nil {
				return fmt.Errorf("alertBot.Run: %w", err)
			}
			return nil
		})

		controlBot, err := bot.New(cfg.Bot, marketService, refresher)
		if err != nil {
			return fmt.Errorf("control bot: %w", err)
		}

		g.Go(func() error {
			if err := controlBot.Run(ctx); err != nil && ctx.Err() == nil {
				return fmt.Errorf("controlBot.Run: %w", err)
			}
			return nil
		})
	}

	// 7. HTTP API
	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, cfg.Tarkov.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.Tarkov.LogFieldMaxLen),
	)

	server.NewServer(
		server.NewMarketServer(marketService),
		server.NewSettingsServer(marketService),
		server.NewWatchServer(marketService),
	).RegisterRoutes(router)

	modules.HTTPServer{ShutdownTimeout: httpShutdownTimeout}.Run(ctx, g, &http.Server{
		Addr:              cfg.App.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	})

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.App.ProbeListenAddress,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.App.MetricsListenAddress,
	}.Run(ctx, g)

	return g.Wait()
}
