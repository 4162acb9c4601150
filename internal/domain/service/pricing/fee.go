package pricing

import (
	"math"
)

// feeExponentPower is the game's penalty exponent applied to the fee factor
// on the losing side of the base/ask ratio.
const feeExponentPower = 1.08

// FeeRates are the flea market's fee fractions: Ti applies to the item's
// base value, Tr to the sell requirement.
type FeeRates struct {
	SellOffer       float64 // Ti
	SellRequirement float64 // Tr
}

// FleaMarketFee computes the listing fee for selling count units at
// sellPrice when the item's handbook value is basePrice. The formula must
// match the game client bit-for-bit:
//
//	P0 = log10(V0/VR), PR = log10(VR/V0), the side moving away from the
//	base price is raised to 1.08, and the summed components are scaled by
//	the intelligence center discount.
//
// An item without a base price is not flea-tradeable and costs nothing to
// list. sellPrice must be > 0; callers guard that.
func FleaMarketFee(basePrice, sellPrice int64, count int, rates FeeRates, intelligenceCenterLevel, hideoutManagementLevel int) int64 {
	if basePrice == 0 {
		return 0
	}

	v0 := float64(basePrice)
	vr := float64(sellPrice)
	q := float64(count)

	p0 := math.Log10(v0 / vr)
	pr := math.Log10(vr / v0)

	if vr < v0 {
		p0 = math.Pow(p0, feeExponentPower)
	} else {
		pr = math.Pow(pr, feeExponentPower)
	}

	discount := 1.0
	if intelligenceCenterLevel >= 3 {
		discount = 1 - ((0.01*float64(hideoutManagementLevel) + 1) * 0.3)
	}

	fee := math.Ceil(v0*rates.SellOffer*math.Pow(4, p0)*q+vr*rates.SellRequirement*math.Pow(4, pr)*q) * discount

	return int64(fee)
}
