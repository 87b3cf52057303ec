package models

import "time"

// Creator is a profile row enriched with the derived earnings figures from
// the completed-supporter aggregation. Profiles with no supporters still
// appear, with zero earnings.
type Creator struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	Username        string    `json:"username"`
	DisplayName     string    `json:"display_name"`
	CreatorURL      string    `json:"creator_url"`
	AvatarURL       string    `json:"avatar_url"`
	Bio             string    `json:"bio"`
	Category        string    `json:"category"`
	Website         string    `json:"website"`
	CreatedAt       time.Time `json:"created_at"`
	Email           string    `json:"email"`
	EmailVerified   bool      `json:"email_verified"`
	TotalEarnings   float64   `json:"total_earnings"`
	TotalSupporters int64     `json:"total_supporters"`
}
