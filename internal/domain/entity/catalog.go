package entity

// CatalogData is everything one fetch cycle returns for a
// (language, game mode) pair.
type CatalogData struct {
	Items   []Item     `json:"items"`
	Barters []Barter   `json:"barters"`
	Crafts  []Craft    `json:"crafts"`
	Flea    FleaMarket `json:"flea"`
}
