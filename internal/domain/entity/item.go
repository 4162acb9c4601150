package entity

import (
	"tarkov_market/internal/domain/value"
)

// RoublesItemID is the in-game universal currency. Its acquisition cost is
// pinned to 1 RUB per unit no matter what the market data says.
const RoublesItemID = "5449016a4bdc2d6f028b456f"

// FleaMarketVendor is the vendor normalized name used by player-to-player
// offers, as opposed to trader offers.
const FleaMarketVendor = "flea-market"

// Item is an immutable snapshot of one catalog entry for a fetch cycle.
type Item struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	NormalizedName string         `json:"normalized_name"`
	BasePrice      int64          `json:"base_price"`
	LastLowPrice   int64          `json:"last_low_price,omitempty"` // 0 means no observed flea price
	Avg24hPrice    int64          `json:"avg_24h_price,omitempty"`
	Types          value.ItemTags `json:"types"`
	Categories     []string       `json:"categories,omitempty"`
	SellFor        []PriceOffer   `json:"sell_for,omitempty"`
	BuyFor         []PriceOffer   `json:"buy_for,omitempty"`

	// DefaultPresetID points to the item representing this weapon in its
	// default configuration; its market data stands in for the bare gun.
	DefaultPresetID string `json:"default_preset_id,omitempty"`
}

func (i *Item) CanSellOnFlea() bool {
	return !i.Types.Has(value.TagNoFlea)
}

// BestTraderSell returns the trader sell offer with the highest normalized
// price, skipping the flea market. ok is false when the item cannot be sold
// to any trader.
func (i *Item) BestTraderSell() (PriceOffer, bool) {
	var (
		best  PriceOffer
		found bool
	)

	for _, offer := range i.SellFor {
		if offer.Vendor == FleaMarketVendor {
			continue
		}
		if !found || offer.PriceRUB > best.PriceRUB {
			best = offer
			found = true
		}
	}

	return best, found
}

// PriceOffer is a single buy/sell position at a vendor, normalized to RUB.
type PriceOffer struct {
	Vendor         string `json:"vendor"` // trader normalized name or FleaMarketVendor
	Price          int64  `json:"price"`
	Currency       string `json:"currency"`
	PriceRUB       int64  `json:"price_rub"`
	MinTraderLevel int    `json:"min_trader_level,omitempty"`
	TaskUnlockID   string `json:"task_unlock_id,omitempty"`
}

func (o PriceOffer) IsFlea() bool {
	return o.Vendor == FleaMarketVendor
}
