package domain

import "time"

// Order statuses. Transitions are not enforced here; the column is free to
// move between any of these values.
const (
	OrderStatusPending        = "pending"
	OrderStatusConfirmed      = "confirmed"
	OrderStatusPreparing      = "preparing"
	OrderStatusReady          = "ready"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCancelled      = "cancelled"
)

// Order is one placed order with its money breakdown. Item prices are
// snapshotted into order_items at creation so later menu edits never change
// a historical invoice.
type Order struct {
	ID                   string      `json:"id"`
	OrderNumber          string      `json:"order_number"`
	CustomerID           string      `json:"customer_id"`
	RestaurantID         string      `json:"restaurant_id"`
	Status               string      `json:"status"`
	DeliveryType         string      `json:"delivery_type"`
	Subtotal             float64     `json:"subtotal"`
	TaxAmount            float64     `json:"tax_amount"`
	DeliveryFee          float64     `json:"delivery_fee"`
	DiscountAmount       float64     `json:"discount_amount"`
	TipAmount            float64     `json:"tip_amount"`
	TotalAmount          float64     `json:"total_amount"`
	PaymentMethod        *string     `json:"payment_method,omitempty"`
	DeliveryAddressID    *string     `json:"delivery_address_id,omitempty"`
	DeliveryInstructions *string     `json:"delivery_instructions,omitempty"`
	SpecialInstructions  *string     `json:"special_instructions,omitempty"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`

	// Join extras
	RestaurantName  *string     `json:"restaurant_name,omitempty"`
	RestaurantPhone *string     `json:"restaurant_phone,omitempty"`
	CustomerName    *string     `json:"customer_name,omitempty"`
	CustomerPhone   *string     `json:"customer_phone,omitempty"`
	DeliveryAddress *string     `json:"delivery_address,omitempty"`
	Items           []OrderItem `json:"order_items"`
}

// OrderItem references a food item and carries the price snapshot taken at
// order time.
type OrderItem struct {
	ID                  string  `json:"id"`
	FoodItemID          string  `json:"food_item_id"`
	FoodItemName        *string `json:"food_item_name,omitempty"`
	Quantity            int     `json:"quantity"`
	UnitPrice           float64 `json:"unit_price"`
	TotalPrice          float64 `json:"total_price"`
	SpecialInstructions *string `json:"special_instructions,omitempty"`
	ImageURL            *string `json:"image_url,omitempty"`
}

// OrderSummary is the flat shape used by listings and the orders report.
type OrderSummary struct {
	ID             string    `json:"id"`
	OrderNumber    string    `json:"order_number"`
	RestaurantName string    `json:"restaurant_name"`
	CustomerName   string    `json:"customer_name"`
	Status         string    `json:"status"`
	TotalItems     int       `json:"total_items"`
	TotalAmount    float64   `json:"total_amount"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewOrderItemInput is one line of an order-placement request.
type NewOrderItemInput struct {
	FoodItemID          string  `json:"food_item_id"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions *string `json:"special_instructions,omitempty"`
}

// NewOrderInput is the order-placement request body.
type NewOrderInput struct {
	CustomerID           string              `json:"customer_id"`
	RestaurantID         string              `json:"restaurant_id"`
	DeliveryType         string              `json:"delivery_type"`
	PaymentMethod        *string             `json:"payment_method,omitempty"`
	DeliveryAddressID    *string             `json:"delivery_address_id,omitempty"`
	DeliveryInstructions *string             `json:"delivery_instructions,omitempty"`
	SpecialInstructions  *string             `json:"special_instructions,omitempty"`
	TipAmount            float64             `json:"tip_amount"`
	DiscountAmount       float64             `json:"discount_amount"`
	Items                []NewOrderItemInput `json:"items"`
}
