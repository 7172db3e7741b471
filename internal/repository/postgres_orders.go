package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"restaurant-api/internal/domain"
	"restaurant-api/internal/queries"
)

// Sentinel errors the order handler translates to client statuses.
var (
	ErrRestaurantUnavailable = errors.New("restaurant not found or not active")
	ErrFoodItemUnavailable   = errors.New("food item not found or not available")
)

// PostgresOrdersRepo executes the order statements of the query catalog.
type PostgresOrdersRepo struct {
	db *sql.DB
}

func NewPostgresOrdersRepo(db *sql.DB) *PostgresOrdersRepo {
	return &PostgresOrdersRepo{db: db}
}

// newOrderNumber builds a short human-readable order reference.
func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}

// Create places an order in one transaction: snapshot each item's current
// price, insert the order row, then the item rows. Later menu edits never
// change the stored invoice amounts.
func (repo *PostgresOrdersRepo) Create(ctx context.Context, input domain.NewOrderInput) (*domain.Order, error) {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var deliveryFee float64
	err = tx.QueryRowContext(ctx, queries.GetRestaurantDeliveryFee, input.RestaurantID).Scan(&deliveryFee)
	if err == sql.ErrNoRows {
		return nil, ErrRestaurantUnavailable
	}
	if err != nil {
		return nil, err
	}

	order := domain.Order{
		OrderNumber:          newOrderNumber(),
		CustomerID:           input.CustomerID,
		RestaurantID:         input.RestaurantID,
		DeliveryType:         input.DeliveryType,
		DeliveryFee:          deliveryFee,
		DiscountAmount:       input.DiscountAmount,
		TipAmount:            input.TipAmount,
		PaymentMethod:        input.PaymentMethod,
		DeliveryAddressID:    input.DeliveryAddressID,
		DeliveryInstructions: input.DeliveryInstructions,
		SpecialInstructions:  input.SpecialInstructions,
		Items:                []domain.OrderItem{},
	}

	for _, line := range input.Items {
		var price float64
		var restaurantID string
		err = tx.QueryRowContext(ctx, queries.GetFoodItemPrice, line.FoodItemID).Scan(&price, &restaurantID)
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: %s", ErrFoodItemUnavailable, line.FoodItemID)
		}
		if err != nil {
			return nil, err
		}
		if restaurantID != input.RestaurantID {
			return nil, fmt.Errorf("%w: %s belongs to another restaurant", ErrFoodItemUnavailable, line.FoodItemID)
		}

		item := domain.OrderItem{
			FoodItemID:          line.FoodItemID,
			Quantity:            line.Quantity,
			UnitPrice:           price,
			TotalPrice:          price * float64(line.Quantity),
			SpecialInstructions: line.SpecialInstructions,
		}
		order.Subtotal += item.TotalPrice
		order.Items = append(order.Items, item)
	}

	// Tax is computed by the invoicing job, not at placement time.
	order.TotalAmount = order.Subtotal + order.TaxAmount + order.DeliveryFee + order.TipAmount - order.DiscountAmount

	err = tx.QueryRowContext(ctx, queries.CreateOrder,
		order.OrderNumber,
		order.CustomerID,
		order.RestaurantID,
		order.DeliveryType,
		order.Subtotal,
		order.TaxAmount,
		order.DeliveryFee,
		order.DiscountAmount,
		order.TipAmount,
		order.TotalAmount,
		order.PaymentMethod,
		order.DeliveryAddressID,
		order.DeliveryInstructions,
		order.SpecialInstructions,
	).Scan(&order.ID, &order.Status, &order.CreatedAt)
	if err != nil {
		return nil, err
	}

	for i := range order.Items {
		item := &order.Items[i]
		err = tx.QueryRowContext(ctx, queries.AddOrderItem,
			order.ID,
			item.FoodItemID,
			item.Quantity,
			item.UnitPrice,
			item.TotalPrice,
			item.SpecialInstructions,
		).Scan(&item.ID)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByID returns one order with items pre-aggregated into a JSON array,
// or (nil, nil) when no row matches.
func (repo *PostgresOrdersRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	var itemsJSON []byte
	err := repo.db.QueryRowContext(ctx, queries.GetOrderByID, id).Scan(
		&o.ID,
		&o.OrderNumber,
		&o.CustomerID,
		&o.RestaurantID,
		&o.Status,
		&o.DeliveryType,
		&o.Subtotal,
		&o.TaxAmount,
		&o.DeliveryFee,
		&o.DiscountAmount,
		&o.TipAmount,
		&o.TotalAmount,
		&o.PaymentMethod,
		&o.DeliveryAddressID,
		&o.DeliveryInstructions,
		&o.SpecialInstructions,
		&o.CreatedAt,
		&o.UpdatedAt,
		&o.RestaurantName,
		&o.RestaurantPhone,
		&o.CustomerName,
		&o.CustomerPhone,
		&o.DeliveryAddress,
		&itemsJSON,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	o.Items = []domain.OrderItem{}
	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, fmt.Errorf("failed to decode order_items for order %s: %w", o.ID, err)
	}
	return &o, nil
}

// ListRecent returns the newest orders for the admin report.
func (repo *PostgresOrdersRepo) ListRecent(ctx context.Context, limit int) ([]domain.OrderSummary, error) {
	rows, err := repo.db.QueryContext(ctx, queries.ListRecentOrders, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.OrderSummary{}
	for rows.Next() {
		var s domain.OrderSummary
		if err := rows.Scan(
			&s.ID,
			&s.OrderNumber,
			&s.RestaurantName,
			&s.CustomerName,
			&s.Status,
			&s.TotalItems,
			&s.TotalAmount,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
