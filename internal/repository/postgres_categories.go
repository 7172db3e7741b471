package repository

import (
	"context"
	"database/sql"

	"restaurant-api/internal/domain"
	"restaurant-api/internal/queries"
)

// PostgresCategoriesRepo executes the category statements of the query
// catalog.
type PostgresCategoriesRepo struct {
	db *sql.DB
}

func NewPostgresCategoriesRepo(db *sql.DB) *PostgresCategoriesRepo {
	return &PostgresCategoriesRepo{db: db}
}

// ListActive returns active categories with item counts, in sort order.
func (repo *PostgresCategoriesRepo) ListActive(ctx context.Context) ([]domain.FoodCategory, error) {
	rows, err := repo.db.QueryContext(ctx, queries.ListActiveCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.FoodCategory{}
	for rows.Next() {
		var c domain.FoodCategory
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Description,
			&c.ImageURL,
			&c.SortOrder,
			&c.IsActive,
			&c.CreatedAt,
			&c.UpdatedAt,
			&c.TotalItems,
			&c.AvailableItems,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
