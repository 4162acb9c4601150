// Package pricing computes flea-market fees, optimized ask prices, and the
// cheapest way to obtain one unit of an item across cash offers, barters and
// crafts.
package pricing

import (
	"math"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/service/catalog"
	"tarkov_market/internal/domain/value"
)

// maxResolveDepth caps recipe recursion even with cycle detection in place.
// Real dependency chains are a handful of levels deep.
const maxResolveDepth = 16

// ResolveOptions are the per-call behavioral switches.
type ResolveOptions struct {
	// AllowAllSources ignores trader/station/task gating.
	AllowAllSources bool
	// UseBarterIngredients lets ingredient costs themselves be satisfied by
	// barters; otherwise ingredients are priced from cash and flea only.
	UseBarterIngredients bool
	// UseCraftIngredients is the same switch for crafts.
	UseCraftIngredients bool
}

// Resolver answers the cheapest-acquisition question over one catalog
// snapshot and one settings profile. It is a pure in-memory computation:
// no I/O, no blocking, safe to run from any number of call sites.
type Resolver struct {
	snap     *catalog.Snapshot
	settings entity.Settings
	opts     ResolveOptions
}

func NewResolver(snap *catalog.Snapshot, settings entity.Settings, opts ResolveOptions) *Resolver {
	return &Resolver{
		snap:     snap,
		settings: settings,
		opts:     opts,
	}
}

func (r *Resolver) feeRates() FeeRates {
	return FeeRates{
		SellOffer:       r.snap.Flea.SellOfferFeeRate,
		SellRequirement: r.snap.Flea.SellRequirementFeeRate,
	}
}

// Resolve returns the cheapest acquisition quote for one unit of the item.
// It is total: cycles, gated sources and unknown items all collapse into a
// none-typed quote instead of an error.
func (r *Resolver) Resolve(itemID string) entity.PriceQuote {
	pass := &resolvePass{
		resolver: r,
		memo:     make(map[string]entity.PriceQuote),
		visited:  make(map[string]struct{}),
	}

	quote, _ := pass.resolve(itemID, 0)

	return quote
}

// resolvePass carries the state of one top-level resolution: the memo cache
// shared across sub-items and the visited set guarding against cycles. Both
// are discarded when the pass ends.
type resolvePass struct {
	resolver *Resolver
	memo     map[string]entity.PriceQuote
	visited  map[string]struct{}
}

// resolve produces the quote for itemID at the given recursion depth.
// pruned reports that a cycle or depth guard truncated some branch; pruned
// results are path-dependent and must not be memoized.
func (p *resolvePass) resolve(itemID string, depth int) (quote entity.PriceQuote, pruned bool) {
	// The universal currency always costs exactly itself. Business rule,
	// not a shortcut.
	if itemID == entity.RoublesItemID {
		return entity.PriceQuote{
			Type:         value.QuoteTypeCash,
			Price:        1,
			Currency:     "RUB",
			PriceRUB:     1,
			PricePerUnit: 1,
			Count:        1,
		}, false
	}

	item, ok := p.resolver.snap.Item(itemID)
	if !ok {
		return entity.NoneQuote(), false
	}

	if cached, ok := p.memo[itemID]; ok {
		return cached, false
	}

	if _, cycling := p.visited[itemID]; cycling {
		return entity.NoneQuote(), true
	}

	if depth > maxResolveDepth {
		return entity.NoneQuote(), true
	}

	p.visited[itemID] = struct{}{}
	defer delete(p.visited, itemID)

	quote, pruned = p.resolveItem(item, depth)

	if !pruned {
		p.memo[itemID] = quote
	}

	return quote, pruned
}

func (p *resolvePass) resolveItem(item *entity.Item, depth int) (entity.PriceQuote, bool) {
	best := entity.NoneQuote()
	pruned := false

	// Candidate order implements the tie-break precedence: trader cash
	// beats flea beats barter beats craft at equal per-unit cost, because
	// replacement below requires a strictly lower price.
	if cash, ok := p.cashBuyQuote(item); ok {
		best = pickCheaper(best, cash)
	}

	if flea, ok := p.fleaQuote(item); ok {
		best = pickCheaper(best, flea)
	}

	if depth == 0 || p.resolver.opts.UseBarterIngredients {
		for _, barter := range p.resolver.snap.BartersFor(item.ID) {
			quote, ok, branchPruned := p.barterQuote(item, barter, depth)
			pruned = pruned || branchPruned
			if ok {
				best = pickCheaper(best, quote)
			}
		}
	}

	if depth == 0 || p.resolver.opts.UseCraftIngredients {
		for _, craft := range p.resolver.snap.CraftsFor(item.ID) {
			quote, ok, branchPruned := p.craftQuote(item, craft, depth)
			pruned = pruned || branchPruned
			if ok {
				best = pickCheaper(best, quote)
			}
		}
	}

	if best.IsNone() {
		// Craft/quest-only items that cannot be bought anywhere still get a
		// sell-side quote so consumers can show a cost basis. It never
		// competes with real acquisition candidates.
		if offer, ok := item.BestTraderSell(); ok {
			best = entity.PriceQuote{
				Type:         value.QuoteTypeCashSell,
				Vendor:       offer.Vendor,
				Price:        offer.Price,
				Currency:     offer.Currency,
				PriceRUB:     offer.PriceRUB,
				PricePerUnit: float64(offer.PriceRUB),
				Count:        1,
			}
		}
	}

	return best, pruned
}

func pickCheaper(current, candidate entity.PriceQuote) entity.PriceQuote {
	if current.IsNone() {
		return candidate
	}
	if candidate.PricePerUnit < current.PricePerUnit {
		return candidate
	}
	return current
}

// cashBuyQuote picks the cheapest trader offer the player can actually use.
func (p *resolvePass) cashBuyQuote(item *entity.Item) (entity.PriceQuote, bool) {
	settings := p.resolver.settings

	var (
		best  entity.PriceOffer
		found bool
	)

	for _, offer := range item.BuyFor {
		if offer.IsFlea() {
			continue
		}

		if !p.resolver.opts.AllowAllSources {
			if offer.MinTraderLevel > settings.TraderLevel(offer.Vendor) {
				continue
			}
			if offer.TaskUnlockID != "" && !settings.TaskCompleted(offer.TaskUnlockID) {
				continue
			}
		}

		if !found || offer.PriceRUB < best.PriceRUB {
			best = offer
			found = true
		}
	}

	if !found {
		return entity.PriceQuote{}, false
	}

	return entity.PriceQuote{
		Type:         value.QuoteTypeCash,
		Vendor:       best.Vendor,
		Price:        best.Price,
		Currency:     best.Currency,
		PriceRUB:     best.PriceRUB,
		PricePerUnit: float64(best.PriceRUB),
		Count:        1,
	}, true
}

// fleaQuote prices the item off the player market via the ask optimizer.
func (p *resolvePass) fleaQuote(item *entity.Item) (entity.PriceQuote, bool) {
	settings := p.resolver.settings

	if !settings.HasFlea || !item.CanSellOnFlea() {
		return entity.PriceQuote{}, false
	}

	priceItem := item
	if item.LastLowPrice == 0 && item.DefaultPresetID != "" && item.Types.Has(value.TagGun) {
		// A bare weapon rarely trades; its default preset stands in.
		if preset, ok := p.resolver.snap.Item(item.DefaultPresetID); ok {
			priceItem = preset
		}
	}

	lastLow := priceItem.LastLowPrice
	if override, ok := settings.CustomPrices[item.ID]; ok {
		lastLow = override
	}

	if lastLow <= 0 || priceItem.BasePrice == 0 {
		return entity.PriceQuote{}, false
	}

	best := BestPrice(priceItem, p.resolver.feeRates(), lastLow, settings.IntelligenceCenterLevel, settings.HideoutManagementLevel)
	if best.BestPrice <= 0 {
		return entity.PriceQuote{}, false
	}

	return entity.PriceQuote{
		Type:         value.QuoteTypeCash,
		Vendor:       entity.FleaMarketVendor,
		Price:        best.BestPrice,
		Currency:     "RUB",
		PriceRUB:     best.BestPrice,
		PricePerUnit: float64(best.BestPrice),
		Count:        1,
		BestPriceFee: best.BestPriceFee,
	}, true
}

func (p *resolvePass) barterQuote(item *entity.Item, barter *entity.Barter, depth int) (entity.PriceQuote, bool, bool) {
	settings := p.resolver.settings

	if !p.resolver.opts.AllowAllSources {
		if barter.Level > settings.TraderLevel(barter.Trader) {
			return entity.PriceQuote{}, false, false
		}
		if barter.TaskUnlockID != "" && !settings.TaskCompleted(barter.TaskUnlockID) {
			return entity.PriceQuote{}, false, false
		}
	}

	if settings.HideDogtagBarters && p.requiresDogtag(barter.RequiredItems) {
		return entity.PriceQuote{}, false, false
	}

	total, ok, pruned := p.ingredientsCost(barter.RequiredItems, depth)
	if !ok {
		return entity.PriceQuote{}, false, pruned
	}

	count := barter.RewardCount(item.ID)
	if count <= 0 {
		return entity.PriceQuote{}, false, pruned
	}

	perUnit := total / float64(count)

	return entity.PriceQuote{
		Type:         value.QuoteTypeBarter,
		Barter:       barter,
		Price:        int64(math.Round(total)),
		Currency:     "RUB",
		PriceRUB:     int64(math.Round(total)),
		PricePerUnit: perUnit,
		Count:        count,
	}, true, pruned
}

func (p *resolvePass) craftQuote(item *entity.Item, craft *entity.Craft, depth int) (entity.PriceQuote, bool, bool) {
	settings := p.resolver.settings

	if !p.resolver.opts.AllowAllSources {
		if craft.Level > settings.StationLevel(craft.Station) {
			return entity.PriceQuote{}, false, false
		}
		if craft.TaskUnlockID != "" && !settings.TaskCompleted(craft.TaskUnlockID) {
			return entity.PriceQuote{}, false, false
		}
	}

	total, ok, pruned := p.ingredientsCost(craft.RequiredItems, depth)
	if !ok {
		return entity.PriceQuote{}, false, pruned
	}

	count := craft.RewardCount(item.ID)
	if count <= 0 {
		return entity.PriceQuote{}, false, pruned
	}

	perUnit := total / float64(count)

	return entity.PriceQuote{
		Type:         value.QuoteTypeCraft,
		Craft:        craft,
		Price:        int64(math.Round(total)),
		Currency:     "RUB",
		PriceRUB:     int64(math.Round(total)),
		PricePerUnit: perUnit,
		Count:        count,
	}, true, pruned
}

// ingredientsCost sums the recipe's input costs. Tool ingredients are
// returned to the player and cost nothing. One unobtainable ingredient makes
// the whole recipe unusable.
func (p *resolvePass) ingredientsCost(lines []entity.RecipeItem, depth int) (total float64, ok bool, pruned bool) {
	for _, line := range lines {
		if line.IsTool {
			continue
		}

		unit, unitOK, unitPruned := p.ingredientUnitCost(line.ItemID, depth)
		pruned = pruned || unitPruned

		if !unitOK {
			return 0, false, pruned
		}

		total += unit * float64(line.Count)
	}

	return total, true, pruned
}

func (p *resolvePass) ingredientUnitCost(itemID string, depth int) (float64, bool, bool) {
	settings := p.resolver.settings

	// Dogtags have no market; their barter value is base price scaled by
	// the configured minimum level.
	if ingredient, ok := p.resolver.snap.Item(itemID); ok && ingredient.Types.Has(value.TagDogtag) {
		level := settings.MinDogtagLevel
		if level < 1 {
			level = 1
		}
		return float64(ingredient.BasePrice * int64(level)), true, false
	}

	quote, pruned := p.resolve(itemID, depth+1)
	if !quote.Usable() {
		return 0, false, pruned
	}

	return quote.PricePerUnit, true, pruned
}

func (p *resolvePass) requiresDogtag(lines []entity.RecipeItem) bool {
	for _, line := range lines {
		if ingredient, ok := p.resolver.snap.Item(line.ItemID); ok && ingredient.Types.Has(value.TagDogtag) {
			return true
		}
	}
	return false
}
