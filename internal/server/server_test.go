package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"tarkov_market/internal/domain"
	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/service/pricing"
	"tarkov_market/internal/domain/value"
	"tarkov_market/internal/server"
	"tarkov_market/pkg/errcodes"
	"tarkov_market/pkg/rest"
	"tarkov_market/pkg/tests"
)

type stubService struct {
	settings entity.Settings
	updated  *entity.Settings
	watches  []entity.Watch
}

func (s *stubService) CheapestPrice(_ context.Context, itemID string, _ pricing.ResolveOptions) (*entity.Item, entity.PriceQuote, error) {
	if itemID != "bolts" {
		return nil, entity.PriceQuote{}, domain.NewError(errcodes.ItemNotFound, "item not found")
	}

	return &entity.Item{ID: "bolts", Name: "Bolts", BasePrice: 8000},
		entity.PriceQuote{
			Type:         value.QuoteTypeCash,
			Vendor:       "prapor",
			Price:        10000,
			Currency:     "RUB",
			PriceRUB:     10000,
			PricePerUnit: 10000,
			Count:        1,
		}, nil
}

func (s *stubService) SellFee(_ context.Context, itemID string, sellPrice int64, count int) (int64, error) {
	if sellPrice <= 0 {
		return 0, domain.NewError(errcodes.InvalidSellPrice, "sell price must be positive")
	}
	return 560, nil
}

func (s *stubService) ResolveOptions() pricing.ResolveOptions {
	return pricing.ResolveOptions{}
}

func (s *stubService) SettingsFor(_ context.Context, mode value.GameMode) (entity.Settings, error) {
	return s.settings, nil
}

func (s *stubService) UpdateSettings(_ context.Context, settings entity.Settings) error {
	s.updated = &settings
	return nil
}

func (s *stubService) CreateWatch(_ context.Context, watch *entity.Watch) error {
	watch.ID = int64(len(s.watches) + 1)
	s.watches = append(s.watches, *watch)
	return nil
}

func (s *stubService) ListWatches(_ context.Context) ([]entity.Watch, error) {
	return s.watches, nil
}

func (s *stubService) DeleteWatch(_ context.Context, id int64) error {
	if id > int64(len(s.watches)) {
		return domain.NewError(errcodes.WatchNotFound, "watch not found")
	}
	return nil
}

func newTestAPI(t *testing.T) (*stubService, tests.APIClient) {
	t.Helper()

	stub := &stubService{settings: entity.DefaultSettings(value.GameModeRegular)}

	router := chi.NewRouter()
	server.NewServer(
		server.NewMarketServer(stub),
		server.NewSettingsServer(stub),
		server.NewWatchServer(stub),
	).RegisterRoutes(router)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return stub, tests.NewAPIClient(srv.URL, srv.Client())
}

func TestGetCheapest(t *testing.T) {
	rq := require.New(t)
	_, api := newTestAPI(t)

	var (
		response rest.CheapestResponse
		restErr  rest.Error
	)

	resp, err := api.Get(context.Background(), "/v1/items/bolts/cheapest", nil, &response, &restErr)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("Bolts", response.Item.Name)
	rq.Equal("cash", response.Quote.Type)
	rq.Equal(int64(10000), response.Quote.PriceRUB)
	rq.True(response.Quote.Usable)
}

func TestGetCheapestUnknownItem(t *testing.T) {
	rq := require.New(t)
	_, api := newTestAPI(t)

	var restErr rest.Error

	resp, err := api.Get(context.Background(), "/v1/items/nope/cheapest", nil, nil, &restErr)
	rq.NoError(err)
	rq.Equal(http.StatusNotFound, resp.StatusCode)
	rq.Equal(rest.ErrorCode(errcodes.ItemNotFound.String()), restErr.Code)
}

func TestGetFee(t *testing.T) {
	rq := require.New(t)
	_, api := newTestAPI(t)

	var response rest.FeeResponse

	resp, err := api.Get(context.Background(), "/v1/items/bolts/fee?sellPrice=8000&count=1", nil, &response, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal(int64(560), response.Fee)
	rq.Equal(int64(8000), response.SellPrice)
}

func TestGetFeeBadQuery(t *testing.T) {
	rq := require.New(t)
	_, api := newTestAPI(t)

	var restErr rest.Error

	resp, err := api.Get(context.Background(), "/v1/items/bolts/fee?sellPrice=abc", nil, nil, &restErr)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
}

func TestGetSettingsBadMode(t *testing.T) {
	rq := require.New(t)
	_, api := newTestAPI(t)

	var restErr rest.Error

	resp, err := api.Get(context.Background(), "/v1/settings/arena/", nil, nil, &restErr)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(rest.ErrorCode(errcodes.InvalidGameMode.String()), restErr.Code)
}

func TestGetAndPutSettings(t *testing.T) {
	rq := require.New(t)
	stub, api := newTestAPI(t)

	var response rest.Settings

	resp, err := api.Get(context.Background(), "/v1/settings/regular/", nil, &response, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("regular", response.GameMode)
	rq.Equal(4, response.TraderLevels["prapor"])

	random := tests.NewRandomizer()
	response.HideDogtagBarters = random.Bool()
	response.HasFlea = random.Bool()

	resp, err = api.Put(context.Background(), "/v1/settings/pve/", nil, response, nil, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.NotNil(stub.updated)
	rq.Equal(value.GameModePVE, stub.updated.GameMode)
	rq.Equal(response.HideDogtagBarters, stub.updated.HideDogtagBarters)
	rq.Equal(response.HasFlea, stub.updated.HasFlea)
}

func TestWatchLifecycle(t *testing.T) {
	rq := require.New(t)
	_, api := newTestAPI(t)

	var created rest.Watch

	resp, err := api.Post(context.Background(), "/v1/watches/", nil,
		rest.Watch{ItemID: "bolts", ThresholdRUB: 12000}, &created, nil)
	rq.NoError(err)
	rq.Equal(http.StatusCreated, resp.StatusCode)
	rq.Equal(int64(1), created.ID)

	var listed []rest.Watch

	resp, err = api.Get(context.Background(), "/v1/watches/", nil, &listed, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Len(listed, 1)

	resp, err = api.Delete(context.Background(), "/v1/watches/1", nil, nil, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
}

func TestPostWatchValidation(t *testing.T) {
	rq := require.New(t)
	_, api := newTestAPI(t)

	var restErr rest.Error

	resp, err := api.Post(context.Background(), "/v1/watches/", nil,
		rest.Watch{ItemID: "bolts"}, nil, &restErr)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(rest.ErrorCode(errcodes.ValidationError.String()), restErr.Code)
}
