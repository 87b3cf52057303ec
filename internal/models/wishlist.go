package models

import "time"

// WishlistItem is a creator-listed good. Images is never nil; an item
// without images serializes as an empty array.
type WishlistItem struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	AmountFunded float64   `json:"amount_funded"`
	IsPriority   bool      `json:"is_priority"`
	CreatedAt    time.Time `json:"created_at"`
	Images       []string  `json:"images"`
}

// Funded reports whether the item has reached its price. Over-funding is
// permitted, so this is a >= check, not equality.
func (w WishlistItem) Funded() bool {
	return w.AmountFunded >= w.Price
}
