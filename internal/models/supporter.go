package models

import "time"

// Supporter statuses share the withdrawal vocabulary; only COMPLETED rows
// count toward revenue figures.
type Supporter struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatorName string    `json:"creator_name"`
}
