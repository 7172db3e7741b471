package domain

import "time"

// FoodItem belongs to exactly one restaurant and one category. Variants are
// pre-aggregated into a JSON array by the menu queries; an item without
// variants carries an empty slice, never null.
type FoodItem struct {
	ID              string    `json:"id"`
	RestaurantID    string    `json:"restaurant_id"`
	CategoryID      string    `json:"category_id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Price           float64   `json:"price"`
	DiscountedPrice *float64  `json:"discounted_price,omitempty"`
	Ingredients     []string  `json:"ingredients,omitempty"`
	Allergens       []string  `json:"allergens,omitempty"`
	DietaryInfo     []string  `json:"dietary_info,omitempty"`
	Calories        *int      `json:"calories,omitempty"`
	PrepTimeMinutes *int      `json:"prep_time_minutes,omitempty"`
	ImageURL        *string   `json:"image_url,omitempty"`
	IsAvailable     bool      `json:"is_available"`
	IsFeatured      bool      `json:"is_featured"`
	AverageRating   *float64  `json:"average_rating,omitempty"`
	TotalReviews    *int      `json:"total_reviews,omitempty"`
	TotalOrders     *int      `json:"total_orders,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Join extras, present depending on the query
	CategoryName       *string           `json:"category_name,omitempty"`
	CategorySortOrder  *int              `json:"category_sort_order,omitempty"`
	RestaurantName     *string           `json:"restaurant_name,omitempty"`
	RestaurantRating   *float64          `json:"restaurant_rating,omitempty"`
	DeliveryFee        *float64          `json:"delivery_fee,omitempty"`
	MinimumOrderAmount *float64          `json:"minimum_order_amount,omitempty"`
	RecentOrders       *int              `json:"recent_orders,omitempty"`
	Variants           []FoodItemVariant `json:"variants"`
}

// FoodItemVariant is a size/option row under one food item. The price
// modifier is added to the item base price at order time.
type FoodItemVariant struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	PriceModifier float64 `json:"price_modifier"`
	IsDefault     bool    `json:"is_default"`
}
