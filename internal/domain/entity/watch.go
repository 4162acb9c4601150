package entity

import "time"

// Watch is a standing price alert: notify when the cheapest acquisition of
// an item drops to or below the threshold.
type Watch struct {
	ID           int64     `json:"id" db:"id"`
	ItemID       string    `json:"item_id" db:"item_id"`
	ThresholdRUB int64     `json:"threshold_rub" db:"threshold_rub"`
	ChatID       int64     `json:"chat_id" db:"chat_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
