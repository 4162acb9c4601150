package entity

import (
	"tarkov_market/internal/domain/value"
)

// PriceQuote is the resolver's answer for one item: the cheapest known way
// to obtain it under the current settings. Ephemeral, recomputed on demand.
type PriceQuote struct {
	Type value.QuoteType `json:"type"`

	// Vendor is set for cash and cash-sell quotes.
	Vendor string `json:"vendor,omitempty"`
	// Barter/Craft reference the winning recipe for those quote types.
	Barter *Barter `json:"barter,omitempty"`
	Craft  *Craft  `json:"craft,omitempty"`

	Price        int64   `json:"price"`
	Currency     string  `json:"currency,omitempty"`
	PriceRUB     int64   `json:"price_rub"`
	PricePerUnit float64 `json:"price_per_unit"`
	Count        int     `json:"count"`

	// BestPriceFee accompanies flea quotes produced by the price optimizer.
	BestPriceFee int64 `json:"best_price_fee,omitempty"`
}

// NoneQuote means no valid acquisition path exists. A normal outcome, not an
// error.
func NoneQuote() PriceQuote {
	return PriceQuote{Type: value.QuoteTypeNone}
}

func (q PriceQuote) IsNone() bool {
	return q.Type == value.QuoteTypeNone
}

// Usable reports whether the quote represents a real way to obtain the item.
// Cash-sell quotes are cost-basis display only.
func (q PriceQuote) Usable() bool {
	return q.Type != value.QuoteTypeNone && q.Type != value.QuoteTypeCashSell
}
