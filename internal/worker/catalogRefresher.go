package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/service/market"
)

// CatalogRefresher periodically re-fetches the item universe, swaps the
// snapshot, and pushes triggered price watches to the deals channel.
// Recomputation is full, never incremental: a settings or data change is
// simply picked up on the next cycle.
type CatalogRefresher struct {
	marketService *market.Service
	deals         chan<- entity.Deal

	refreshInterval time.Duration

	// Control fields
	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewCatalogRefresher(
	marketService *market.Service,
	deals chan<- entity.Deal,
	refreshInterval time.Duration,
) *CatalogRefresher {
	return &CatalogRefresher{
		marketService:   marketService,
		deals:           deals,
		refreshInterval: refreshInterval,
	}
}

func (w *CatalogRefresher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return errors.New("refresher is already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(runCtx).Error("refresher stopped", "error", err)
		}
	}()

	return nil
}

func (w *CatalogRefresher) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *CatalogRefresher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

// Run refreshes immediately, then on every tick until the context ends.
func (w *CatalogRefresher) Run(ctx context.Context) error {
	logger(ctx).Info("catalog refresher started", "interval", w.refreshInterval.String())

	w.cycle(ctx)

	ticker := time.NewTicker(w.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger(ctx).Info("catalog refresher stopped")
			return ctx.Err()
		case <-ticker.C:
			w.cycle(ctx)
		}
	}
}

func (w *CatalogRefresher) cycle(ctx context.Context) {
	refreshCyclesTotal.Inc()

	if err := w.marketService.Refresh(ctx); err != nil {
		refreshErrorsTotal.Inc()
		logger(ctx).Error("catalog refresh failed", "error", err)
		return
	}

	deals, err := w.marketService.EvaluateWatches(ctx)
	if err != nil {
		logger(ctx).Error("watch evaluation failed", "error", err)
		return
	}

	for _, deal := range deals {
		select {
		case w.deals <- deal:
			watchAlertsTotal.Inc()
		case <-ctx.Done():
			return
		}
	}

	if len(deals) > 0 {
		logger(ctx).Info("refresh cycle completed", "deals_found", len(deals))
	}
}
