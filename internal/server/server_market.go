package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"tarkov_market/internal/domain"
	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/service/pricing"
	"tarkov_market/pkg/errcodes"
	"tarkov_market/pkg/httpx/reply"
	"tarkov_market/pkg/rest"
)

type marketService interface {
	CheapestPrice(ctx context.Context, itemID string, opts pricing.ResolveOptions) (*entity.Item, entity.PriceQuote, error)
	SellFee(ctx context.Context, itemID string, sellPrice int64, count int) (int64, error)
	ResolveOptions() pricing.ResolveOptions
}

type MarketServer struct {
	marketService marketService
}

func NewMarketServer(marketService marketService) MarketServer {
	return MarketServer{
		marketService: marketService,
	}
}

func (s MarketServer) getV1ItemCheapest(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	opts := s.marketService.ResolveOptions()
	query := r.URL.Query()
	if v := query.Get("allowAllSources"); v != "" {
		opts.AllowAllSources = v == "true"
	}
	if v := query.Get("useBarterIngredients"); v != "" {
		opts.UseBarterIngredients = v == "true"
	}
	if v := query.Get("useCraftIngredients"); v != "" {
		opts.UseCraftIngredients = v == "true"
	}

	item, quote, err := s.marketService.CheapestPrice(ctx, r.PathValue("id"), opts)
	if err != nil {
		return asFailure(fmt.Errorf("marketService.CheapestPrice: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, rest.CheapestResponse{
		Item:  newRESTItem(item),
		Quote: newRESTQuote(quote),
	})

	return nil
}

func (s MarketServer) getV1ItemFee(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	query := r.URL.Query()

	sellPrice, err := strconv.ParseInt(query.Get("sellPrice"), 10, 64)
	if err != nil {
		return asFailure(domain.WrapError(err, errcodes.InvalidSellPrice, "sellPrice must be an integer"))
	}

	count := 1
	if v := query.Get("count"); v != "" {
		count, err = strconv.Atoi(v)
		if err != nil {
			return asFailure(domain.WrapError(err, errcodes.InvalidSellPrice, "count must be an integer"))
		}
	}

	itemID := r.PathValue("id")

	fee, err := s.marketService.SellFee(ctx, itemID, sellPrice, count)
	if err != nil {
		return asFailure(fmt.Errorf("marketService.SellFee: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, rest.FeeResponse{
		ItemID:    itemID,
		SellPrice: sellPrice,
		Count:     count,
		Fee:       fee,
	})

	return nil
}
