package tarkovdev

import (
	"time"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
	"tarkov_market/pkg/lox"
)

type itemDTO struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	NormalizedName string        `json:"normalizedName"`
	BasePrice      int64         `json:"basePrice"`
	LastLowPrice   *int64        `json:"lastLowPrice"`
	Avg24hPrice    *int64        `json:"avg24hPrice"`
	Types          []string      `json:"types"`
	Categories     []categoryDTO `json:"categories"`
	Properties     propertiesDTO `json:"properties"`
	BuyFor         []offerDTO    `json:"buyFor"`
	SellFor        []offerDTO    `json:"sellFor"`
}

type categoryDTO struct {
	NormalizedName string `json:"normalizedName"`
}

type propertiesDTO struct {
	DefaultPreset *struct {
		ID string `json:"id"`
	} `json:"defaultPreset"`
}

type offerDTO struct {
	PriceRUB int64     `json:"priceRUB"`
	Price    int64     `json:"price"`
	Currency string    `json:"currency"`
	Vendor   vendorDTO `json:"vendor"`
}

type vendorDTO struct {
	NormalizedName string  `json:"normalizedName"`
	MinTraderLevel int     `json:"minTraderLevel"`
	TaskUnlock     *idOnly `json:"taskUnlock"`
}

type idOnly struct {
	ID string `json:"id"`
}

type barterDTO struct {
	ID            string          `json:"id"`
	Level         int             `json:"level"`
	Trader        categoryDTO     `json:"trader"`
	TaskUnlock    *idOnly         `json:"taskUnlock"`
	RequiredItems []recipeItemDTO `json:"requiredItems"`
	RewardItems   []recipeItemDTO `json:"rewardItems"`
}

type craftDTO struct {
	ID              string          `json:"id"`
	Level           int             `json:"level"`
	DurationSeconds int64           `json:"duration"`
	Station         categoryDTO     `json:"station"`
	TaskUnlock      *idOnly         `json:"taskUnlock"`
	RequiredItems   []recipeItemDTO `json:"requiredItems"`
	RewardItems     []recipeItemDTO `json:"rewardItems"`
}

type recipeItemDTO struct {
	Item       idOnly         `json:"item"`
	Count      int            `json:"count"`
	Attributes []attributeDTO `json:"attributes"`
}

type attributeDTO struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

type fleaMarketDTO struct {
	MinPlayerLevel         int     `json:"minPlayerLevel"`
	SellOfferFeeRate       float64 `json:"sellOfferFeeRate"`
	SellRequirementFeeRate float64 `json:"sellRequirementFeeRate"`
}

func (d itemDTO) toDomain() entity.Item {
	item := entity.Item{
		ID:             d.ID,
		Name:           d.Name,
		NormalizedName: d.NormalizedName,
		BasePrice:      d.BasePrice,
		Types: lox.Map(d.Types, func(t string) value.ItemTag {
			return value.ItemTag(t)
		}),
		Categories: lox.Map(d.Categories, func(c categoryDTO) string {
			return c.NormalizedName
		}),
		BuyFor:  lox.Map(d.BuyFor, offerDTO.toDomain),
		SellFor: lox.Map(d.SellFor, offerDTO.toDomain),
	}

	if d.LastLowPrice != nil {
		item.LastLowPrice = *d.LastLowPrice
	}
	if d.Avg24hPrice != nil {
		item.Avg24hPrice = *d.Avg24hPrice
	}
	if d.Properties.DefaultPreset != nil {
		item.DefaultPresetID = d.Properties.DefaultPreset.ID
	}

	return item
}

func (d offerDTO) toDomain() entity.PriceOffer {
	offer := entity.PriceOffer{
		Vendor:         d.Vendor.NormalizedName,
		Price:          d.Price,
		Currency:       d.Currency,
		PriceRUB:       d.PriceRUB,
		MinTraderLevel: d.Vendor.MinTraderLevel,
	}

	if d.Vendor.TaskUnlock != nil {
		offer.TaskUnlockID = d.Vendor.TaskUnlock.ID
	}

	return offer
}

func (d barterDTO) toDomain() entity.Barter {
	barter := entity.Barter{
		ID:            d.ID,
		Trader:        d.Trader.NormalizedName,
		Level:         d.Level,
		RequiredItems: lox.Map(d.RequiredItems, recipeItemDTO.toDomain),
		RewardItems:   lox.Map(d.RewardItems, recipeItemDTO.toDomain),
	}

	if d.TaskUnlock != nil {
		barter.TaskUnlockID = d.TaskUnlock.ID
	}

	return barter
}

func (d craftDTO) toDomain() entity.Craft {
	craft := entity.Craft{
		ID:            d.ID,
		Station:       d.Station.NormalizedName,
		Level:         d.Level,
		Duration:      time.Duration(d.DurationSeconds) * time.Second,
		RequiredItems: lox.Map(d.RequiredItems, recipeItemDTO.toDomain),
		RewardItems:   lox.Map(d.RewardItems, recipeItemDTO.toDomain),
	}

	if d.TaskUnlock != nil {
		craft.TaskUnlockID = d.TaskUnlock.ID
	}

	return craft
}

func (d recipeItemDTO) toDomain() entity.RecipeItem {
	line := entity.RecipeItem{
		ItemID: d.Item.ID,
		Count:  d.Count,
	}

	for _, attr := range d.Attributes {
		if attr.Type == "tool" && attr.Value == "true" {
			line.IsTool = true
		}
	}

	return line
}

func (d fleaMarketDTO) toDomain() entity.FleaMarket {
	return entity.FleaMarket{
		MinPlayerLevel:         d.MinPlayerLevel,
		SellOfferFeeRate:       d.SellOfferFeeRate,
		SellRequirementFeeRate: d.SellRequirementFeeRate,
	}
}
