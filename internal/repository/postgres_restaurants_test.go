package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var restaurantCols = []string{
	"id", "chain_id", "name", "description", "cuisine_type", "phone", "email",
	"street_address", "city", "state", "postal_code", "country",
	"latitude", "longitude", "delivery_radius_km", "minimum_order_amount",
	"delivery_fee", "logo_url", "cover_image_url", "is_active",
	"is_accepting_orders", "average_rating", "total_reviews",
	"created_at", "updated_at",
}

func restaurantRowValues(id, name string) []driver.Value {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	return []driver.Value{
		id, nil, name, "A neighborhood spot", []byte("{Italian,Pizza}"),
		"+1-555-0201", "hello@example.com",
		"200 SW Oak Avenue", "Portland", "OR", "97204", "USA",
		45.5190, -122.6789, 5.0, 15.0,
		3.99, nil, nil, true,
		true, 4.6, 182,
		now, now,
	}
}

func TestListWithMenu_DecodesEmbeddedMenu(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	menuJSON := []byte(`[{"id":"fi-1","name":"Margherita","description":null,"price":14.5,` +
		`"image_url":null,"category":"Pizza","is_featured":true,"average_rating":4.7,"total_orders":412}]`)

	rows := sqlmock.NewRows(append(restaurantCols, "menu_items")).
		AddRow(append(restaurantRowValues("r-1", "Bella Napoli"), menuJSON)...)

	mock.ExpectQuery("FROM restaurants r").WillReturnRows(rows)

	repo := NewPostgresRestaurantsRepo(db)
	out, err := repo.ListWithMenu(context.Background())

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "r-1", out[0].ID)
	assert.Equal(t, []string{"Italian", "Pizza"}, out[0].CuisineType)
	require.Len(t, out[0].MenuItems, 1)
	assert.Equal(t, "Margherita", out[0].MenuItems[0].Name)
	assert.Equal(t, 14.5, out[0].MenuItems[0].Price)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListWithMenu_EmptyMenuStaysEmptySlice(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(append(restaurantCols, "menu_items")).
		AddRow(append(restaurantRowValues("r-1", "Bella Napoli"), []byte("[]"))...)
	mock.ExpectQuery("FROM restaurants r").WillReturnRows(rows)

	repo := NewPostgresRestaurantsRepo(db)
	out, err := repo.ListWithMenu(context.Background())

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.NotNil(t, out[0].MenuItems)
	assert.Empty(t, out[0].MenuItems)
}

func TestListWithMenu_NoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM restaurants r").
		WillReturnRows(sqlmock.NewRows(append(restaurantCols, "menu_items")))

	repo := NewPostgresRestaurantsRepo(db)
	out, err := repo.ListWithMenu(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestGetByID_NotFoundReturnsNilNil(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("WHERE r.id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := NewPostgresRestaurantsRepo(db)
	r, err := repo.GetByID(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestGetByID_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(restaurantCols).
		AddRow(restaurantRowValues("r-1", "Bella Napoli")...)
	mock.ExpectQuery("WHERE r.id").WithArgs("r-1").WillReturnRows(rows)

	repo := NewPostgresRestaurantsRepo(db)
	r, err := repo.GetByID(context.Background(), "r-1")

	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "Bella Napoli", r.Name)
	assert.Nil(t, r.ChainID)
	require.NotNil(t, r.DeliveryFee)
	assert.Equal(t, 3.99, *r.DeliveryFee)
	assert.NotNil(t, r.MenuItems)
	assert.Empty(t, r.MenuItems)
}

func TestListByCity_BindsWildcardPattern(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(append(restaurantCols, "total_menu_items")).
		AddRow(append(restaurantRowValues("r-1", "Bella Napoli"), 6)...)
	mock.ExpectQuery("r.city ILIKE").
		WithArgs("%Portland%").
		WillReturnRows(rows)

	repo := NewPostgresRestaurantsRepo(db)
	out, err := repo.ListByCity(context.Background(), "Portland")

	require.NoError(t, err)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].TotalMenuItems)
	assert.Equal(t, 6, *out[0].TotalMenuItems)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByCuisine_BindsExactTag(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("ANY").
		WithArgs("Vietnamese").
		WillReturnRows(sqlmock.NewRows(append(restaurantCols, "total_menu_items")))

	repo := NewPostgresRestaurantsRepo(db)
	out, err := repo.ListByCuisine(context.Background(), "Vietnamese")

	require.NoError(t, err)
	assert.Empty(t, out)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorySummaries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "name", "sort_order", "total_items", "available_items",
		"min_price", "max_price", "avg_price",
	}).
		AddRow("c-1", "Pizza", 2, 4, 3, 12.0, 18.5, 15.25).
		AddRow("c-2", "Desserts", 4, 2, 2, 6.0, 9.0, 7.5)

	mock.ExpectQuery("FROM food_categories fc").
		WithArgs("r-1").
		WillReturnRows(rows)

	repo := NewPostgresRestaurantsRepo(db)
	out, err := repo.CategorySummaries(context.Background(), "r-1")

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Pizza", out[0].Name)
	assert.Equal(t, 3, out[0].AvailableItems)
	assert.Equal(t, 7.5, out[1].AvgPrice)
}
