package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"restaurant-api/internal/domain"
	"restaurant-api/internal/queries"
)

// PostgresRestaurantsRepo executes the restaurant statements of the query
// catalog. Connectivity failures surface to the caller unchanged; status-code
// translation happens at the handler boundary only.
type PostgresRestaurantsRepo struct {
	db *sql.DB
}

func NewPostgresRestaurantsRepo(db *sql.DB) *PostgresRestaurantsRepo {
	return &PostgresRestaurantsRepo{db: db}
}

// restaurantScanDests matches queries.restaurantColumns order.
func restaurantScanDests(r *domain.Restaurant) []any {
	return []any{
		&r.ID,
		&r.ChainID,
		&r.Name,
		&r.Description,
		pq.Array(&r.CuisineType),
		&r.Phone,
		&r.Email,
		&r.StreetAddress,
		&r.City,
		&r.State,
		&r.PostalCode,
		&r.Country,
		&r.Latitude,
		&r.Longitude,
		&r.DeliveryRadiusKm,
		&r.MinimumOrderAmount,
		&r.DeliveryFee,
		&r.LogoURL,
		&r.CoverImageURL,
		&r.IsActive,
		&r.IsAcceptingOrders,
		&r.AverageRating,
		&r.TotalReviews,
		&r.CreatedAt,
		&r.UpdatedAt,
	}
}

// ListWithMenu returns all active restaurants; the store pre-aggregates each
// restaurant's available items into an embedded JSON array.
func (repo *PostgresRestaurantsRepo) ListWithMenu(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := repo.db.QueryContext(ctx, queries.ListRestaurantsWithMenu)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Restaurant{}
	for rows.Next() {
		var r domain.Restaurant
		var menuJSON []byte
		if err := rows.Scan(append(restaurantScanDests(&r), &menuJSON)...); err != nil {
			return nil, err
		}
		r.MenuItems = []domain.MenuItemSummary{}
		if err := json.Unmarshal(menuJSON, &r.MenuItems); err != nil {
			return nil, fmt.Errorf("failed to decode menu_items for restaurant %s: %w", r.ID, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetByID returns one active restaurant, or (nil, nil) when no row matches.
func (repo *PostgresRestaurantsRepo) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	var r domain.Restaurant
	err := repo.db.QueryRowContext(ctx, queries.GetRestaurantByID, id).Scan(restaurantScanDests(&r)...)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r.MenuItems = []domain.MenuItemSummary{}
	return &r, nil
}

// ListByCity matches city case-insensitively. The wildcard pattern is built
// here and bound as a parameter.
func (repo *PostgresRestaurantsRepo) ListByCity(ctx context.Context, city string) ([]domain.Restaurant, error) {
	return repo.listWithItemCount(ctx, queries.ListRestaurantsByCity, "%"+city+"%")
}

// ListByCuisine matches an exact cuisine tag.
func (repo *PostgresRestaurantsRepo) ListByCuisine(ctx context.Context, cuisine string) ([]domain.Restaurant, error) {
	return repo.listWithItemCount(ctx, queries.ListRestaurantsByCuisine, cuisine)
}

func (repo *PostgresRestaurantsRepo) listWithItemCount(ctx context.Context, query string, arg any) ([]domain.Restaurant, error) {
	rows, err := repo.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Restaurant{}
	for rows.Next() {
		var r domain.Restaurant
		if err := rows.Scan(append(restaurantScanDests(&r), &r.TotalMenuItems)...); err != nil {
			return nil, err
		}
		r.MenuItems = []domain.MenuItemSummary{}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CategorySummaries breaks a restaurant's menu down by category.
func (repo *PostgresRestaurantsRepo) CategorySummaries(ctx context.Context, restaurantID string) ([]domain.RestaurantCategorySummary, error) {
	rows, err := repo.db.QueryContext(ctx, queries.ListRestaurantCategorySummaries, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.RestaurantCategorySummary{}
	for rows.Next() {
		var s domain.RestaurantCategorySummary
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.SortOrder,
			&s.TotalItems,
			&s.AvailableItems,
			&s.MinPrice,
			&s.MaxPrice,
			&s.AvgPrice,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
