package market

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"tarkov_market/internal/domain"
	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/service/catalog"
	"tarkov_market/internal/domain/service/pricing"
	"tarkov_market/internal/domain/value"
	"tarkov_market/pkg/errcodes"
)

const alertCooldown = time.Hour

type CatalogFetcher interface {
	FetchCatalog(ctx context.Context, lang value.Language, mode value.GameMode) (*entity.CatalogData, error)
	Invalidate(ctx context.Context, lang value.Language, mode value.GameMode)
}

type SettingsRepository interface {
	Get(ctx context.Context, mode value.GameMode) (entity.Settings, error)
	Upsert(ctx context.Context, settings entity.Settings) error
}

type WatchRepository interface {
	Create(ctx context.Context, watch *entity.Watch) error
	GetByID(ctx context.Context, id int64) (*entity.Watch, error)
	List(ctx context.Context) ([]entity.Watch, error)
	Delete(ctx context.Context, id int64) error
}

// Service is the application's pricing façade: it owns the current catalog
// snapshot, loads the settings profile, and answers cheapest-price, fee and
// watch-evaluation questions.
type Service struct {
	fetcher      CatalogFetcher
	catalog      *catalog.Service
	settingsRepo SettingsRepository
	watchRepo    WatchRepository

	language value.Language
	gameMode value.GameMode

	defaultOptions pricing.ResolveOptions

	// alertCache suppresses repeat alerts for the same watch while the
	// price stays low.
	alertCache *cache.Cache
}

func NewService(
	fetcher CatalogFetcher,
	catalogService *catalog.Service,
	settingsRepo SettingsRepository,
	watchRepo WatchRepository,
	language value.Language,
	gameMode value.GameMode,
) *Service {
	return &Service{
		fetcher:      fetcher,
		catalog:      catalogService,
		settingsRepo: settingsRepo,
		watchRepo:    watchRepo,
		language:     language,
		gameMode:     gameMode,
		defaultOptions: pricing.ResolveOptions{
			UseBarterIngredients: true,
			UseCraftIngredients:  true,
		},
		alertCache: cache.New(alertCooldown, 10*time.Minute),
	}
}

func (s *Service) WithResolveOptions(opts pricing.ResolveOptions) *Service {
	s.defaultOptions = opts
	return s
}

func (s *Service) ResolveOptions() pricing.ResolveOptions {
	return s.defaultOptions
}

// Refresh fetches a fresh catalog and swaps it in.
func (s *Service) Refresh(ctx context.Context) error {
	data, err := s.fetcher.FetchCatalog(ctx, s.language, s.gameMode)
	if err != nil {
		return fmt.Errorf("fetch catalog: %w", err)
	}

	snap := catalog.NewSnapshot(data.Items, data.Barters, data.Crafts, data.Flea)
	s.catalog.Swap(snap)

	logger(ctx).Info("catalog snapshot swapped", "items", snap.ItemCount())

	return nil
}

func (s *Service) snapshot() (*catalog.Snapshot, error) {
	snap, ok := s.catalog.Current()
	if !ok {
		return nil, domain.NewError(errcodes.CatalogNotReady, "catalog not fetched yet")
	}
	return snap, nil
}

// Settings returns the stored profile for the active game mode, falling
// back to the default max-progress profile when none was saved.
func (s *Service) Settings(ctx context.Context) (entity.Settings, error) {
	return s.SettingsFor(ctx, s.gameMode)
}

func (s *Service) SettingsFor(ctx context.Context, mode value.GameMode) (entity.Settings, error) {
	if !mode.Valid() {
		return entity.Settings{}, domain.NewError(errcodes.InvalidGameMode, "unknown game mode")
	}

	settings, err := s.settingsRepo.Get(ctx, mode)
	if err != nil {
		var appErr *domain.AppError
		if errors.As(err, &appErr) && appErr.Code == errcodes.SettingsNotFound {
			return entity.DefaultSettings(mode), nil
		}
		return entity.Settings{}, fmt.Errorf("settingsRepo.Get: %w", err)
	}

	return settings, nil
}

// UpdateSettings persists a new profile. Settings changes invalidate the
// upstream payload cache so the next refresh resolves against fresh data.
func (s *Service) UpdateSettings(ctx context.Context, settings entity.Settings) error {
	if !settings.GameMode.Valid() {
		return domain.NewError(errcodes.InvalidGameMode, "unknown game mode")
	}

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return fmt.Errorf("settingsRepo.Upsert: %w", err)
	}

	s.fetcher.Invalidate(ctx, s.language, settings.GameMode)

	return nil
}

// CheapestPrice resolves the cheapest acquisition for one unit of the item
// under the stored settings profile.
func (s *Service) CheapestPrice(ctx context.Context, itemID string, opts pricing.ResolveOptions) (*entity.Item, entity.PriceQuote, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, entity.PriceQuote{}, err
	}

	item, ok := snap.Item(itemID)
	if !ok {
		return nil, entity.PriceQuote{}, domain.NewError(errcodes.ItemNotFound, "item not found")
	}

	settings, err := s.Settings(ctx)
	if err != nil {
		return nil, entity.PriceQuote{}, err
	}

	quote := pricing.NewResolver(snap, settings, opts).Resolve(itemID)

	return item, quote, nil
}

// SellFee computes the flea listing fee for the item at an ask price.
func (s *Service) SellFee(ctx context.Context, itemID string, sellPrice int64, count int) (int64, error) {
	if sellPrice <= 0 {
		return 0, domain.NewError(errcodes.InvalidSellPrice, "sell price must be positive")
	}
	if count <= 0 {
		count = 1
	}

	snap, err := s.snapshot()
	if err != nil {
		return 0, err
	}

	item, ok := snap.Item(itemID)
	if !ok {
		return 0, domain.NewError(errcodes.ItemNotFound, "item not found")
	}

	settings, err := s.Settings(ctx)
	if err != nil {
		return 0, err
	}

	rates := pricing.FeeRates{
		SellOffer:       snap.Flea.SellOfferFeeRate,
		SellRequirement: snap.Flea.SellRequirementFeeRate,
	}

	fee := pricing.FleaMarketFee(
		item.BasePrice,
		sellPrice,
		count,
		rates,
		settings.IntelligenceCenterLevel,
		settings.HideoutManagementLevel,
	)

	return fee, nil
}

func (s *Service) CreateWatch(ctx context.Context, watch *entity.Watch) error {
	snap, err := s.snapshot()
	if err != nil {
		return err
	}

	if _, ok := snap.Item(watch.ItemID); !ok {
		return domain.NewError(errcodes.ItemNotFound, "item not found")
	}

	if watch.ThresholdRUB <= 0 {
		return domain.NewError(errcodes.InvalidWatch, "threshold must be positive")
	}

	if err := s.watchRepo.Create(ctx, watch); err != nil {
		return fmt.Errorf("watchRepo.Create: %w", err)
	}

	return nil
}

func (s *Service) ListWatches(ctx context.Context) ([]entity.Watch, error) {
	watches, err := s.watchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("watchRepo.List: %w", err)
	}
	return watches, nil
}

func (s *Service) DeleteWatch(ctx context.Context, id int64) error {
	if err := s.watchRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("watchRepo.Delete: %w", err)
	}
	return nil
}

// EvaluateWatches resolves every watched item against the current snapshot
// and returns the deals whose cheapest per-unit price is at or below the
// watch threshold. Alerts repeat no more often than the cooldown.
func (s *Service) EvaluateWatches(ctx context.Context) ([]entity.Deal, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	settings, err := s.Settings(ctx)
	if err != nil {
		return nil, err
	}

	watches, err := s.watchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("watchRepo.List: %w", err)
	}

	resolver := pricing.NewResolver(snap, settings, s.defaultOptions)

	var deals []entity.Deal

	for _, watch := range watches {
		item, ok := snap.Item(watch.ItemID)
		if !ok {
			continue
		}

		quote := resolver.Resolve(watch.ItemID)
		if !quote.Usable() {
			continue
		}

		perUnit := int64(quote.PricePerUnit)
		if perUnit > watch.ThresholdRUB {
			continue
		}

		cacheKey := fmt.Sprintf("watch-%d", watch.ID)
		if _, alerted := s.alertCache.Get(cacheKey); alerted {
			continue
		}
		s.alertCache.Set(cacheKey, true, cache.DefaultExpiration)

		deals = append(deals, entity.Deal{
			Item:     item,
			Quote:    quote,
			Watch:    watch,
			SavedRUB: watch.ThresholdRUB - perUnit,
		})
	}

	return deals, nil
}
