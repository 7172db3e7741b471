package domain

import "time"

// Restaurant is one physical location. Aggregate rating fields are derived
// by out-of-band jobs and are never written by the API read paths.
type Restaurant struct {
	ID                 string    `json:"id"`
	ChainID            *string   `json:"chain_id,omitempty"`
	Name               string    `json:"name"`
	Description        *string   `json:"description,omitempty"`
	CuisineType        []string  `json:"cuisine_type"`
	Phone              *string   `json:"phone,omitempty"`
	Email              *string   `json:"email,omitempty"`
	StreetAddress      string    `json:"street_address"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	PostalCode         string    `json:"postal_code"`
	Country            string    `json:"country"`
	Latitude           *float64  `json:"latitude,omitempty"`
	Longitude          *float64  `json:"longitude,omitempty"`
	DeliveryRadiusKm   *float64  `json:"delivery_radius_km,omitempty"`
	MinimumOrderAmount *float64  `json:"minimum_order_amount,omitempty"`
	DeliveryFee        *float64  `json:"delivery_fee,omitempty"`
	LogoURL            *string   `json:"logo_url,omitempty"`
	CoverImageURL      *string   `json:"cover_image_url,omitempty"`
	IsActive           bool      `json:"is_active"`
	IsAcceptingOrders  bool      `json:"is_accepting_orders"`
	AverageRating      *float64  `json:"average_rating,omitempty"`
	TotalReviews       *int      `json:"total_reviews,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Query-dependent extras. An empty menu stays an empty array in the
	// payload, never a missing key.
	MenuItems      []MenuItemSummary `json:"menu_items"`
	TotalMenuItems *int              `json:"total_menu_items,omitempty"`
}

// MenuItemSummary is the embedded menu shape produced by the restaurant list
// query (json_agg in SQL, passed through as-is).
type MenuItemSummary struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   *string  `json:"description"`
	Price         float64  `json:"price"`
	ImageURL      *string  `json:"image_url"`
	Category      *string  `json:"category"`
	IsFeatured    bool     `json:"is_featured"`
	AverageRating *float64 `json:"average_rating"`
	TotalOrders   *int     `json:"total_orders"`
}

// RestaurantCategorySummary is the per-restaurant category breakdown
// (item counts and price spread), computed entirely in SQL.
type RestaurantCategorySummary struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	SortOrder      int     `json:"sort_order"`
	TotalItems     int     `json:"total_items"`
	AvailableItems int     `json:"available_items"`
	MinPrice       float64 `json:"min_price"`
	MaxPrice       float64 `json:"max_price"`
	AvgPrice       float64 `json:"avg_price"`
}
