package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tarkov_market/internal/domain/service/pricing"
)

func TestFleaMarketFee(t *testing.T) {
	rates := pricing.FeeRates{SellOffer: 0.05, SellRequirement: 0.05}

	testCases := []struct {
		name      string
		basePrice int64
		sellPrice int64
		count     int
		rates     pricing.FeeRates
		icLevel   int
		hmLevel   int
		want      int64
	}{
		{
			name:      "ask equals base",
			basePrice: 10000,
			sellPrice: 10000,
			count:     1,
			rates:     rates,
			want:      1000,
		},
		{
			name:      "ask above base",
			basePrice: 2000,
			sellPrice: 2500,
			count:     1,
			rates:     pricing.FeeRates{SellOffer: 0.03, SellRequirement: 0.03},
			want:      137,
		},
		{
			name:      "ask below base",
			basePrice: 2500,
			sellPrice: 2000,
			count:     1,
			rates:     pricing.FeeRates{SellOffer: 0.03, SellRequirement: 0.03},
			want:      137,
		},
		{
			name:      "count scales the fee before rounding",
			basePrice: 2000,
			sellPrice: 2500,
			count:     3,
			rates:     pricing.FeeRates{SellOffer: 0.03, SellRequirement: 0.03},
			want:      409,
		},
		{
			name:      "intelligence center discount",
			basePrice: 10000,
			sellPrice: 10000,
			count:     1,
			rates:     rates,
			icLevel:   3,
			want:      700,
		},
		{
			name:      "hideout management stacks onto the discount",
			basePrice: 10000,
			sellPrice: 10000,
			count:     1,
			rates:     rates,
			icLevel:   3,
			hmLevel:   10,
			want:      669,
		},
		{
			name:      "discount needs intelligence center 3",
			basePrice: 10000,
			sellPrice: 10000,
			count:     1,
			rates:     rates,
			icLevel:   2,
			hmLevel:   10,
			want:      1000,
		},
		{
			name:      "no base price means no listing",
			basePrice: 0,
			sellPrice: 5000,
			count:     1,
			rates:     rates,
			want:      0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			got := pricing.FleaMarketFee(tc.basePrice, tc.sellPrice, tc.count, tc.rates, tc.icLevel, tc.hmLevel)
			rq.Equal(tc.want, got)

			again := pricing.FleaMarketFee(tc.basePrice, tc.sellPrice, tc.count, tc.rates, tc.icLevel, tc.hmLevel)
			rq.Equal(got, again)
		})
	}
}

func TestFleaMarketFeeGrowsWithAsk(t *testing.T) {
	rq := require.New(t)

	rates := pricing.FeeRates{SellOffer: 0.05, SellRequirement: 0.05}

	prev := pricing.FleaMarketFee(10000, 10000, 1, rates, 0, 0)
	for sell := int64(15000); sell <= 50000; sell += 5000 {
		fee := pricing.FleaMarketFee(10000, sell, 1, rates, 0, 0)
		rq.Greater(fee, prev, "ask %d", sell)
		prev = fee
	}
}
