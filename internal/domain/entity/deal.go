package entity

type Deal struct {
	Item  *Item
	Quote PriceQuote
	Watch Watch

	// SavedRUB is how far below the watch threshold the quote landed.
	SavedRUB int64
}
