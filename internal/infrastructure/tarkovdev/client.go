package tarkovdev

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"tarkov_market/internal/config"
	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
	"tarkov_market/pkg/coalesce"
	"tarkov_market/pkg/contextx"
	"tarkov_market/pkg/httpx"
	"tarkov_market/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

var whitespaceRun = regexp.MustCompile(`\s{2,}`) //nolint:gochecknoglobals

// Client talks GraphQL to the upstream item API. Concurrent fetches for the
// same (language, game mode) key share one outstanding request, and settled
// payloads are cached in Redis for the configured TTL so a restart or a
// second instance does not hammer the API.
type Client struct {
	httpClient *http.Client
	apiURL     string
	cacheTTL   time.Duration
	rdb        *redis.Client
	inflight   coalesce.Coalescer[*entity.CatalogData]
}

func NewClient(cfg config.Tarkov, rdb *redis.Client) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
			Transport: httpx.NewLoggingRoundTripper(
				http.DefaultTransport,
				httpx.WithLogFieldMaxLen(cfg.LogFieldMaxLen),
				httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			),
		},
		apiURL:   cfg.APIURL,
		cacheTTL: cfg.CacheTTL,
		rdb:      rdb,
	}
}

// FetchCatalog returns the full item/barter/craft universe for the key,
// via cache when fresh.
func (c *Client) FetchCatalog(ctx context.Context, lang value.Language, mode value.GameMode) (*entity.CatalogData, error) {
	key := cacheKey(lang, mode)

	return c.inflight.Run(ctx, key, func() (*entity.CatalogData, error) {
		if cached, ok := c.cachedCatalog(ctx, key); ok {
			return cached, nil
		}

		catalog, err := c.fetchCatalog(ctx, lang, mode)
		if err != nil {
			return nil, err
		}

		c.storeCatalog(ctx, key, catalog)

		return catalog, nil
	})
}

// Invalidate drops both the in-flight entry and the cached payload so the
// next fetch does fresh work.
func (c *Client) Invalidate(ctx context.Context, lang value.Language, mode value.GameMode) {
	key := cacheKey(lang, mode)

	c.inflight.Forget(key)

	if c.rdb != nil {
		if err := c.rdb.Del(ctx, key).Err(); err != nil {
			logger(ctx).Error("redis.Del", logx.Error(err))
		}
	}
}

func cacheKey(lang value.Language, mode value.GameMode) string {
	return fmt.Sprintf("api-cached-data-catalog-%s-%s", lang, mode)
}

func (c *Client) cachedCatalog(ctx context.Context, key string) (*entity.CatalogData, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger(ctx).Error("redis.Get", logx.Error(err))
		}
		return nil, false
	}

	var catalog entity.CatalogData
	if err := json.Unmarshal(raw, &catalog); err != nil {
		logger(ctx).Error("cached catalog unmarshal", logx.Error(err))
		return nil, false
	}

	return &catalog, true
}

func (c *Client) storeCatalog(ctx context.Context, key string, catalog *entity.CatalogData) {
	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(catalog)
	if err != nil {
		logger(ctx).Error("catalog marshal", logx.Error(err))
		return
	}

	if err := c.rdb.Set(ctx, key, raw, c.cacheTTL).Err(); err != nil {
		logger(ctx).Error("redis.Set", logx.Error(err))
	}
}

func (c *Client) fetchCatalog(ctx context.Context, lang value.Language, mode value.GameMode) (*entity.CatalogData, error) {
	variables := map[string]any{
		"lang":     lang.String(),
		"gameMode": gameModeVariable(mode),
	}

	var items struct {
		Items []itemDTO `json:"items"`
	}
	if err := c.graphqlRequest(ctx, queryItems, variables, &items); err != nil {
		return nil, fmt.Errorf("items query: %w", err)
	}

	var barters struct {
		Barters []barterDTO `json:"barters"`
	}
	if err := c.graphqlRequest(ctx, queryBarters, variables, &barters); err != nil {
		return nil, fmt.Errorf("barters query: %w", err)
	}

	var crafts struct {
		Crafts []craftDTO `json:"crafts"`
	}
	if err := c.graphqlRequest(ctx, queryCrafts, variables, &crafts); err != nil {
		return nil, fmt.Errorf("crafts query: %w", err)
	}

	var flea struct {
		FleaMarket fleaMarketDTO `json:"fleaMarket"`
	}
	if err := c.graphqlRequest(ctx, queryFleaMarket, variables, &flea); err != nil {
		return nil, fmt.Errorf("flea market query: %w", err)
	}

	catalog := &entity.CatalogData{
		Flea: flea.FleaMarket.toDomain(),
	}

	for _, dto := range items.Items {
		catalog.Items = append(catalog.Items, dto.toDomain())
	}
	for _, dto := range barters.Barters {
		catalog.Barters = append(catalog.Barters, dto.toDomain())
	}
	for _, dto := range crafts.Crafts {
		catalog.Crafts = append(catalog.Crafts, dto.toDomain())
	}

	logger(ctx).Info(
		"catalog fetched",
		slog.Int("items", len(catalog.Items)),
		slog.Int("barters", len(catalog.Barters)),
		slog.Int("crafts", len(catalog.Crafts)),
	)

	return catalog, nil
}

// gameModeVariable maps the domain game mode onto the API's enum spelling.
func gameModeVariable(mode value.GameMode) string {
	if mode == value.GameModePVE {
		return "pve"
	}
	return "regular"
}

type graphqlError struct {
	Message string `json:"message"`
}

func (c *Client) graphqlRequest(ctx context.Context, query string, variables map[string]any, dest any) error {
	body, err := json.Marshal(map[string]any{
		"query":     whitespaceRun.ReplaceAllString(query, " "),
		"variables": variables,
	})
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("io.ReadAll: %w", err)
	}

	var envelope struct {
		Data   jsoniter.RawMessage `json:"data"`
		Errors []graphqlError      `json:"errors"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("response unmarshal: %w", err)
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, gqlErr := range envelope.Errors {
			messages = append(messages, gqlErr.Message)
		}
		return fmt.Errorf("graphql: %s", strings.Join(messages, "; "))
	}

	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		return fmt.Errorf("data unmarshal: %w", err)
	}

	return nil
}
