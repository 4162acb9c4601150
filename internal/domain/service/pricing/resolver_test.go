package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/service/catalog"
	"tarkov_market/internal/domain/service/pricing"
	"tarkov_market/internal/domain/value"
)

func traderBuy(vendor string, priceRUB int64, minLevel int) entity.PriceOffer {
	return entity.PriceOffer{
		Vendor:         vendor,
		Price:          priceRUB,
		Currency:       "RUB",
		PriceRUB:       priceRUB,
		MinTraderLevel: minLevel,
	}
}

func testSnapshot(rq *require.Assertions) *catalog.Snapshot {
	items := []entity.Item{
		{
			ID:        "bolts",
			Name:      "Bolts",
			BasePrice: 8000,
			BuyFor:    []entity.PriceOffer{traderBuy("prapor", 10000, 1)},
		},
		{
			ID:        "wires",
			Name:      "Wires",
			BasePrice: 9000,
			BuyFor: []entity.PriceOffer{
				traderBuy("mechanic", 15000, 1),
				traderBuy("jaeger", 8000, 3),
			},
		},
		{
			ID:           "gasan",
			Name:         "Gas analyzer",
			BasePrice:    25000,
			LastLowPrice: 60000,
		},
		{
			ID:        "cycleA",
			Name:      "Cycle A",
			BasePrice: 1000,
		},
		{
			ID:        "cycleB",
			Name:      "Cycle B",
			BasePrice: 1000,
			BuyFor:    []entity.PriceOffer{traderBuy("skier", 5000, 1)},
		},
		{
			ID:           "flea-item",
			Name:         "Flea item",
			BasePrice:    5000,
			LastLowPrice: 6000,
		},
		{
			ID:        "tagPM",
			Name:      "Dogtag",
			BasePrice: 500,
			Types:     value.ItemTags{value.TagDogtag},
		},
		{
			ID:        "keycase",
			Name:      "Key case",
			BasePrice: 30000,
		},
		{
			ID:        "screwdriver",
			Name:      "Screwdriver",
			BasePrice: 2000,
			BuyFor:    []entity.PriceOffer{traderBuy("mechanic", 3000, 1)},
		},
		{
			ID:        "crafted-only",
			Name:      "Crafted only",
			BasePrice: 12000,
			Types:     value.ItemTags{value.TagNoFlea},
			SellFor: []entity.PriceOffer{
				{Vendor: "therapist", Price: 7000, Currency: "RUB", PriceRUB: 7000},
				{Vendor: entity.FleaMarketVendor, Price: 90000, Currency: "RUB", PriceRUB: 90000},
			},
		},
		{
			ID:        "mount",
			Name:      "Mount",
			BasePrice: 4000,
		},
		{
			ID:        "scope",
			Name:      "Scope",
			BasePrice: 20000,
		},
	}

	barters := []entity.Barter{
		{
			ID:            "b-cycleA",
			Trader:        "therapist",
			Level:         1,
			RequiredItems: []entity.RecipeItem{{ItemID: "cycleB", Count: 2}},
			RewardItems:   []entity.RecipeItem{{ItemID: "cycleA", Count: 1}},
		},
		{
			ID:            "b-cycleB",
			Trader:        "therapist",
			Level:         1,
			RequiredItems: []entity.RecipeItem{{ItemID: "cycleA", Count: 1}},
			RewardItems:   []entity.RecipeItem{{ItemID: "cycleB", Count: 1}},
		},
		{
			ID:            "b-keycase",
			Trader:        "ragman",
			Level:         2,
			RequiredItems: []entity.RecipeItem{{ItemID: "tagPM", Count: 4}},
			RewardItems:   []entity.RecipeItem{{ItemID: "keycase", Count: 1}},
		},
		{
			ID:            "b-mount",
			Trader:        "skier",
			Level:         1,
			RequiredItems: []entity.RecipeItem{{ItemID: "bolts", Count: 1}},
			RewardItems:   []entity.RecipeItem{{ItemID: "mount", Count: 1}},
		},
	}

	crafts := []entity.Craft{
		{
			ID:      "c-gasan",
			Station: "workbench",
			Level:   2,
			RequiredItems: []entity.RecipeItem{
				{ItemID: "bolts", Count: 2},
				{ItemID: "wires", Count: 1},
				{ItemID: "screwdriver", Count: 1, IsTool: true},
			},
			RewardItems: []entity.RecipeItem{{ItemID: "gasan", Count: 2}},
		},
		{
			ID:            "c-crafted-only",
			Station:       "lavatory",
			Level:         5,
			RequiredItems: []entity.RecipeItem{{ItemID: "bolts", Count: 1}},
			RewardItems:   []entity.RecipeItem{{ItemID: "crafted-only", Count: 1}},
		},
		{
			ID:            "c-scope",
			Station:       "workbench",
			Level:         1,
			RequiredItems: []entity.RecipeItem{{ItemID: "mount", Count: 1}},
			RewardItems:   []entity.RecipeItem{{ItemID: "scope", Count: 1}},
		},
	}

	snap := catalog.NewSnapshot(items, barters, crafts, entity.FleaMarket{
		SellOfferFeeRate:       0.05,
		SellRequirementFeeRate: 0.05,
	})
	rq.Equal(len(items), snap.ItemCount())

	return snap
}

func testSettings() entity.Settings {
	settings := entity.DefaultSettings(value.GameModeRegular)
	settings.MinDogtagLevel = 5
	return settings
}

func newResolver(rq *require.Assertions, settings entity.Settings, opts pricing.ResolveOptions) *pricing.Resolver {
	return pricing.NewResolver(testSnapshot(rq), settings, opts)
}

func TestResolveRoubles(t *testing.T) {
	rq := require.New(t)

	quote := newResolver(rq, testSettings(), pricing.ResolveOptions{}).Resolve(entity.RoublesItemID)

	rq.Equal(value.QuoteTypeCash, quote.Type)
	rq.Equal(float64(1), quote.PricePerUnit)
	rq.Equal(int64(1), quote.PriceRUB)
}

func TestResolveUnknownItem(t *testing.T) {
	rq := require.New(t)

	quote := newResolver(rq, testSettings(), pricing.ResolveOptions{}).Resolve("no-such-item")

	rq.True(quote.IsNone())
	rq.False(quote.Usable())
}

func TestResolveCheapestTraderOffer(t *testing.T) {
	rq := require.New(t)

	quote := newResolver(rq, testSettings(), pricing.ResolveOptions{}).Resolve("wires")

	rq.Equal(value.QuoteTypeCash, quote.Type)
	rq.Equal("jaeger", quote.Vendor)
	rq.Equal(float64(8000), quote.PricePerUnit)
}

func TestResolveTraderLevelGate(t *testing.T) {
	rq := require.New(t)

	settings := testSettings()
	settings.TraderLevels["jaeger"] = 2

	quote := newResolver(rq, settings, pricing.ResolveOptions{}).Resolve("wires")

	rq.Equal("mechanic", quote.Vendor)
	rq.Equal(float64(15000), quote.PricePerUnit)
}

func TestResolveAllowAllSourcesIgnoresGates(t *testing.T) {
	rq := require.New(t)

	settings := testSettings()
	settings.TraderLevels["jaeger"] = 1

	quote := newResolver(rq, settings, pricing.ResolveOptions{AllowAllSources: true}).Resolve("wires")

	rq.Equal("jaeger", quote.Vendor)
}

func TestResolveFleaQuote(t *testing.T) {
	rq := require.New(t)

	quote := newResolver(rq, testSettings(), pricing.ResolveOptions{}).Resolve("flea-item")

	rq.Equal(value.QuoteTypeCash, quote.Type)
	rq.Equal(entity.FleaMarketVendor, quote.Vendor)
	rq.Equal(int64(6000), quote.PriceRUB)
	rq.Equal(int64(553), quote.BestPriceFee)
}

func TestResolveFleaDisabled(t *testing.T) {
	rq := require.New(t)

	settings := testSettings()
	settings.HasFlea = false

	quote := newResolver(rq, settings, pricing.ResolveOptions{}).Resolve("flea-item")

	rq.True(quote.IsNone())
}

func TestResolveCraftWithToolAndMultiReward(t *testing.T) {
	rq := require.New(t)

	quote := newResolver(rq, testSettings(), pricing.ResolveOptions{}).Resolve("gasan")

	// 2 bolts at 10000 plus 1 wires at 8000, the screwdriver tool is free,
	// split over a reward of 2.
	rq.Equal(value.QuoteTypeCraft, quote.Type)
	rq.NotNil(quote.Craft)
	rq.Equal("c-gasan", quote.Craft.ID)
	rq.Equal(float64(14000), quote.PricePerUnit)
	rq.Equal(int64(28000), quote.PriceRUB)
	rq.Equal(2, quote.Count)
}

func TestResolveCycleFallsBackToCash(t *testing.T) {
	rq := require.New(t)

	resolver := newResolver(rq, testSettings(), pricing.ResolveOptions{
		UseBarterIngredients: true,
		UseCraftIngredients:  true,
	})

	// cycleA is only obtainable by trading two cycleB, which in turn barters
	// back from cycleA. The cycle must collapse into cycleB's cash price.
	quote := resolver.Resolve("cycleA")

	rq.Equal(value.QuoteTypeBarter, quote.Type)
	rq.Equal(float64(10000), quote.PricePerUnit)
}

func TestResolveDogtagCost(t *testing.T) {
	rq := require.New(t)

	quote := newResolver(rq, testSettings(), pricing.ResolveOptions{}).Resolve("keycase")

	// 4 dogtags at basePrice 500 times minimum level 5.
	rq.Equal(value.QuoteTypeBarter, quote.Type)
	rq.Equal(float64(10000), quote.PricePerUnit)
}

func TestResolveHideDogtagBarters(t *testing.T) {
	rq := require.New(t)

	settings := testSettings()
	settings.HideDogtagBarters = true

	quote := newResolver(rq, settings, pricing.ResolveOptions{}).Resolve("keycase")

	rq.True(quote.IsNone())
}

func TestResolveCashSellFallback(t *testing.T) {
	rq := require.New(t)

	// Station level 5 is never reachable, flea is tagged off, so only the
	// sell-side fallback remains. It is display-only.
	quote := newResolver(rq, testSettings(), pricing.ResolveOptions{}).Resolve("crafted-only")

	rq.Equal(value.QuoteTypeCashSell, quote.Type)
	rq.Equal("therapist", quote.Vendor)
	rq.Equal(float64(7000), quote.PricePerUnit)
	rq.False(quote.Usable())
}

func TestResolveIngredientRecipeGating(t *testing.T) {
	rq := require.New(t)

	settings := testSettings()
	settings.HasFlea = false

	// scope is crafted from mount, and mount exists only as a barter. The
	// nested barter is reachable only when barter ingredients are enabled.
	blocked := newResolver(rq, settings, pricing.ResolveOptions{}).Resolve("scope")
	rq.True(blocked.IsNone())

	allowed := newResolver(rq, settings, pricing.ResolveOptions{UseBarterIngredients: true}).Resolve("scope")
	rq.Equal(value.QuoteTypeCraft, allowed.Type)
	rq.Equal(float64(10000), allowed.PricePerUnit)
}

func TestResolveCashBeatsRecipeOnTie(t *testing.T) {
	rq := require.New(t)

	items := []entity.Item{
		{ID: "fuel", BasePrice: 8000, BuyFor: []entity.PriceOffer{traderBuy("skier", 10000, 1)}},
		{ID: "lamp", BasePrice: 9000, BuyFor: []entity.PriceOffer{traderBuy("skier", 10000, 1)}},
	}
	barters := []entity.Barter{{
		ID:            "b-lamp",
		Trader:        "skier",
		Level:         1,
		RequiredItems: []entity.RecipeItem{{ItemID: "fuel", Count: 1}},
		RewardItems:   []entity.RecipeItem{{ItemID: "lamp", Count: 1}},
	}}

	snap := catalog.NewSnapshot(items, barters, nil, entity.FleaMarket{})
	quote := pricing.NewResolver(snap, testSettings(), pricing.ResolveOptions{}).Resolve("lamp")

	// Equal cost: the direct cash purchase wins over the barter.
	rq.Equal(value.QuoteTypeCash, quote.Type)
	rq.Equal("skier", quote.Vendor)
}
