package domain

import "time"

// FoodCategory is a global menu grouping shared by all restaurants.
type FoodCategory struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description,omitempty"`
	ImageURL       *string   `json:"image_url,omitempty"`
	SortOrder      int       `json:"sort_order"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	TotalItems     *int      `json:"total_items,omitempty"`
	AvailableItems *int      `json:"available_items,omitempty"`
}
