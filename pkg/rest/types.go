// This file should be generated from an openapi specification and named types.gen.go
package rest

// Item is a compact item card.
type Item struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	NormalizedName string `json:"normalizedName"`
	BasePrice      int64  `json:"basePrice"`
	LastLowPrice   int64  `json:"lastLowPrice,omitempty"`
}

// PriceQuote is the source and price of the cheapest acquisition.
type PriceQuote struct {
	Type         string  `json:"type"`
	Vendor       string  `json:"vendor,omitempty"`
	Trader       string  `json:"trader,omitempty"`
	Station      string  `json:"station,omitempty"`
	Price        int64   `json:"price"`
	PriceRUB     int64   `json:"priceRUB"`
	PricePerUnit float64 `json:"pricePerUnit"`
	Count        int     `json:"count"`
	Currency     string  `json:"currency,omitempty"`
	BestPriceFee int64   `json:"bestPriceFee,omitempty"`
	Usable       bool    `json:"usable"`
}

// CheapestResponse carries the cheapest acquisition for an item.
type CheapestResponse struct {
	Item  Item       `json:"item"`
	Quote PriceQuote `json:"quote"`
}

// FeeResponse is the flea market fee for a given ask.
type FeeResponse struct {
	ItemID    string `json:"itemId"`
	SellPrice int64  `json:"sellPrice"`
	Count     int    `json:"count"`
	Fee       int64  `json:"fee"`
}

// Settings are the game settings that affect price resolution.
type Settings struct {
	GameMode                string           `json:"gameMode"`
	PlayerLevel             int              `json:"playerLevel" validate:"gte=1,lte=79"`
	HasFlea                 bool             `json:"hasFlea"`
	TraderLevels            map[string]int   `json:"traderLevels"`
	StationLevels           map[string]int   `json:"stationLevels"`
	IntelligenceCenterLevel int              `json:"intelligenceCenterLevel" validate:"gte=0,lte=3"`
	HideoutManagementLevel  int              `json:"hideoutManagementLevel" validate:"gte=0,lte=51"`
	MinDogtagLevel          int              `json:"minDogtagLevel" validate:"gte=0,lte=79"`
	HideDogtagBarters       bool             `json:"hideDogtagBarters"`
	CompletedTasks          []string         `json:"completedTasks"`
	CustomPrices            map[string]int64 `json:"customPrices"`
}

// Watch is a price drop subscription.
type Watch struct {
	ID           int64  `json:"id"`
	ItemID       string `json:"itemId" validate:"required"`
	ThresholdRUB int64  `json:"thresholdRUB" validate:"required,gt=0"`
	ChatID       int64  `json:"chatId,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// Error is the error model.
type Error struct {
	// Code is the error code
	Code ErrorCode `json:"code"`

	// Message is the human readable error message
	Message string `json:"message"`
}

// ErrorCode is the error code
type ErrorCode string
