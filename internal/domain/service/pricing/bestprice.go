package pricing

import (
	"tarkov_market/internal/domain/entity"
)

// bestPriceStep is the fixed decrement of the ask-price search. The greedy
// fixed-step walk is a deliberate compatibility constraint: downstream
// consumers depend on the exact values it produces, so it is not replaced
// with a true optimum search.
const bestPriceStep = 1000

// BestPriceResult is the ask price maximizing net proceeds and the fee paid
// at that price.
type BestPriceResult struct {
	BestPrice    int64
	BestPriceFee int64
}

// BestPrice walks the ask price down from startPrice in 1000 RUB steps while
// profit (ask - fee) keeps improving. startPrice 0 falls back to the item's
// last observed flea price, then to basePrice*100.
func BestPrice(item *entity.Item, rates FeeRates, startPrice int64, intelligenceCenterLevel, hideoutManagementLevel int) BestPriceResult {
	if item.BasePrice == 0 {
		return BestPriceResult{}
	}

	price := startPrice
	if price <= 0 {
		price = item.LastLowPrice
	}
	if price <= 0 {
		price = item.BasePrice * 100
	}

	fee := FleaMarketFee(item.BasePrice, price, 1, rates, intelligenceCenterLevel, hideoutManagementLevel)
	bestProfit := price - fee

	best := BestPriceResult{
		BestPrice:    price,
		BestPriceFee: fee,
	}

	for {
		price -= bestPriceStep
		if price <= 0 {
			break
		}

		fee = FleaMarketFee(item.BasePrice, price, 1, rates, intelligenceCenterLevel, hideoutManagementLevel)

		profit := price - fee
		if profit < bestProfit {
			break
		}

		bestProfit = profit
		best = BestPriceResult{
			BestPrice:    price,
			BestPriceFee: fee,
		}
	}

	return best
}
