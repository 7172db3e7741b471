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

// PostgresFoodRepo executes the food item statements of the query catalog.
type PostgresFoodRepo struct {
	db *sql.DB
}

func NewPostgresFoodRepo(db *sql.DB) *PostgresFoodRepo {
	return &PostgresFoodRepo{db: db}
}

// foodScanDests matches queries.foodItemColumns order.
func foodScanDests(fi *domain.FoodItem) []any {
	return []any{
		&fi.ID,
		&fi.RestaurantID,
		&fi.CategoryID,
		&fi.Name,
		&fi.Description,
		&fi.Price,
		&fi.DiscountedPrice,
		pq.Array(&fi.Ingredients),
		pq.Array(&fi.Allergens),
		pq.Array(&fi.DietaryInfo),
		&fi.Calories,
		&fi.PrepTimeMinutes,
		&fi.ImageURL,
		&fi.IsAvailable,
		&fi.IsFeatured,
		&fi.AverageRating,
		&fi.TotalReviews,
		&fi.TotalOrders,
		&fi.CreatedAt,
		&fi.UpdatedAt,
	}
}

// searchScanDests matches queries.searchResultColumns order.
func searchScanDests(fi *domain.FoodItem) []any {
	return append(foodScanDests(fi),
		&fi.CategoryName,
		&fi.RestaurantName,
		&fi.DeliveryFee,
		&fi.MinimumOrderAmount,
		&fi.RestaurantRating,
	)
}

func decodeVariants(fi *domain.FoodItem, raw []byte) error {
	fi.Variants = []domain.FoodItemVariant{}
	if err := json.Unmarshal(raw, &fi.Variants); err != nil {
		return fmt.Errorf("failed to decode variants for food item %s: %w", fi.ID, err)
	}
	return nil
}

// MenuForRestaurant returns the available items of one restaurant with
// category labels and embedded variants, in category grouping order.
func (repo *PostgresFoodRepo) MenuForRestaurant(ctx context.Context, restaurantID string) ([]domain.FoodItem, error) {
	rows, err := repo.db.QueryContext(ctx, queries.GetRestaurantMenu, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.FoodItem{}
	for rows.Next() {
		var fi domain.FoodItem
		var variantsJSON []byte
		dests := append(foodScanDests(&fi), &fi.CategoryName, &fi.CategorySortOrder, &variantsJSON)
		if err := rows.Scan(dests...); err != nil {
			return nil, err
		}
		if err := decodeVariants(&fi, variantsJSON); err != nil {
			return nil, err
		}
		out = append(out, fi)
	}
	return out, rows.Err()
}

// GetByID returns one item with variants, or (nil, nil) when no row matches.
func (repo *PostgresFoodRepo) GetByID(ctx context.Context, id string) (*domain.FoodItem, error) {
	var fi domain.FoodItem
	var variantsJSON []byte
	dests := append(foodScanDests(&fi),
		&fi.CategoryName,
		&fi.RestaurantName,
		&fi.DeliveryFee,
		&fi.MinimumOrderAmount,
		&variantsJSON,
	)
	err := repo.db.QueryRowContext(ctx, queries.GetFoodItemByID, id).Scan(dests...)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := decodeVariants(&fi, variantsJSON); err != nil {
		return nil, err
	}
	return &fi, nil
}

// Search ranks available items against a free-text term.
func (repo *PostgresFoodRepo) Search(ctx context.Context, term string) ([]domain.FoodItem, error) {
	return repo.listSearchShaped(ctx, queries.SearchFoodItems, term, "%"+term+"%")
}

// ByCategory lists available items of one category.
func (repo *PostgresFoodRepo) ByCategory(ctx context.Context, categoryID string) ([]domain.FoodItem, error) {
	return repo.listSearchShaped(ctx, queries.ListFoodItemsByCategory, categoryID)
}

// ByDiet lists available items carrying a dietary tag.
func (repo *PostgresFoodRepo) ByDiet(ctx context.Context, diet string) ([]domain.FoodItem, error) {
	return repo.listSearchShaped(ctx, queries.ListFoodItemsByDiet, diet)
}

// ByPriceRange lists available items priced inside the closed range. An
// inverted range yields zero rows rather than an error.
func (repo *PostgresFoodRepo) ByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]domain.FoodItem, error) {
	return repo.listSearchShaped(ctx, queries.ListFoodItemsByPriceRange, minPrice, maxPrice)
}

// Featured lists flagged or frequently ordered items.
func (repo *PostgresFoodRepo) Featured(ctx context.Context, limit int) ([]domain.FoodItem, error) {
	return repo.listSearchShaped(ctx, queries.ListFeaturedFoodItems, limit)
}

func (repo *PostgresFoodRepo) listSearchShaped(ctx context.Context, query string, args ...any) ([]domain.FoodItem, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.FoodItem{}
	for rows.Next() {
		var fi domain.FoodItem
		if err := rows.Scan(searchScanDests(&fi)...); err != nil {
			return nil, err
		}
		fi.Variants = []domain.FoodItemVariant{}
		out = append(out, fi)
	}
	return out, rows.Err()
}

// Trending lists items ordered within the last 7 days.
func (repo *PostgresFoodRepo) Trending(ctx context.Context, limit int) ([]domain.FoodItem, error) {
	rows, err := repo.db.QueryContext(ctx, queries.ListTrendingFoodItems, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.FoodItem{}
	for rows.Next() {
		var fi domain.FoodItem
		if err := rows.Scan(append(searchScanDests(&fi), &fi.RecentOrders)...); err != nil {
			return nil, err
		}
		fi.Variants = []domain.FoodItemVariant{}
		out = append(out, fi)
	}
	return out, rows.Err()
}
