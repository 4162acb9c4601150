package entity

import "time"

// RecipeItem is one line of a barter or craft recipe.
type RecipeItem struct {
	ItemID string `json:"item_id"`
	Count  int    `json:"count"`

	// IsTool marks an ingredient that is consumed-but-returned (e.g. a
	// screwdriver in a craft). Tools never contribute to the recipe cost.
	IsTool bool `json:"is_tool,omitempty"`
}

// Barter is a trader-offered item exchange gated by loyalty level.
type Barter struct {
	ID            string       `json:"id"`
	Trader        string       `json:"trader"` // trader normalized name
	Level         int          `json:"level"`  // loyalty level required
	TaskUnlockID  string       `json:"task_unlock_id,omitempty"`
	RequiredItems []RecipeItem `json:"required_items"`
	RewardItems   []RecipeItem `json:"reward_items"`
}

// Craft is a hideout-station recipe gated by station level.
type Craft struct {
	ID            string        `json:"id"`
	Station       string        `json:"station"` // station normalized name
	Level         int           `json:"level"`   // station level required
	Duration      time.Duration `json:"duration"`
	TaskUnlockID  string        `json:"task_unlock_id,omitempty"`
	RequiredItems []RecipeItem  `json:"required_items"`
	RewardItems   []RecipeItem  `json:"reward_items"`
}

// RewardCount returns how many units of itemID one execution of the recipe
// yields.
func rewardCount(rewards []RecipeItem, itemID string) int {
	for _, reward := range rewards {
		if reward.ItemID == itemID {
			return reward.Count
		}
	}
	return 0
}

func (b Barter) RewardCount(itemID string) int {
	return rewardCount(b.RewardItems, itemID)
}

func (c Craft) RewardCount(itemID string) int {
	return rewardCount(c.RewardItems, itemID)
}

// FleaMarket carries the market-wide fee rates used by the fee formula.
// Rates are fractions (0.03 == 3%).
type FleaMarket struct {
	MinPlayerLevel         int     `json:"min_player_level"`
	SellOfferFeeRate       float64 `json:"sell_offer_fee_rate"`
	SellRequirementFeeRate float64 `json:"sell_requirement_fee_rate"`
}
