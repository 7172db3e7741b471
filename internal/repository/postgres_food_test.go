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

var foodItemCols = []string{
	"id", "restaurant_id", "category_id", "name", "description", "price",
	"discounted_price", "ingredients", "allergens", "dietary_info", "calories",
	"prep_time_minutes", "image_url", "is_available", "is_featured",
	"average_rating", "total_reviews", "total_orders", "created_at", "updated_at",
}

var searchResultCols = append(append([]string{}, foodItemCols...),
	"category_name", "restaurant_name", "delivery_fee", "minimum_order_amount", "restaurant_rating")

func foodRowValues(id, name string) []driver.Value {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	return []driver.Value{
		id, "r-1", "c-1", name, "San Marzano tomato and basil", 14.5,
		nil, []byte("{tomato,mozzarella,basil}"), []byte("{}"), []byte("{vegetarian}"), 820,
		15, nil, true, true,
		4.7, 96, 412, now, now,
	}
}

func searchRowValues(id, name string) []driver.Value {
	return append(foodRowValues(id, name),
		"Pizza", "Bella Napoli", 3.99, 15.0, 4.6)
}

func TestMenuForRestaurant_DecodesVariants(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	variantsJSON := []byte(`[{"id":"v-1","name":"12 inch","type":"size","price_modifier":0,"is_default":true},` +
		`{"id":"v-2","name":"16 inch","type":"size","price_modifier":5,"is_default":false}]`)

	rows := sqlmock.NewRows(append(append([]string{}, foodItemCols...), "category_name", "category_sort_order", "variants")).
		AddRow(append(foodRowValues("fi-1", "Margherita"), "Pizza", 2, variantsJSON)...)

	mock.ExpectQuery("FROM food_items fi").
		WithArgs("r-1").
		WillReturnRows(rows)

	repo := NewPostgresFoodRepo(db)
	out, err := repo.MenuForRestaurant(context.Background(), "r-1")

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"tomato", "mozzarella", "basil"}, out[0].Ingredients)
	assert.Empty(t, out[0].Allergens)
	require.NotNil(t, out[0].CategoryName)
	assert.Equal(t, "Pizza", *out[0].CategoryName)
	require.Len(t, out[0].Variants, 2)
	assert.Equal(t, "16 inch", out[0].Variants[1].Name)
	assert.Equal(t, 5.0, out[0].Variants[1].PriceModifier)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuForRestaurant_NoVariantsStaysEmptySlice(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(append(append([]string{}, foodItemCols...), "category_name", "category_sort_order", "variants")).
		AddRow(append(foodRowValues("fi-1", "Margherita"), "Pizza", 2, []byte("[]"))...)
	mock.ExpectQuery("FROM food_items fi").WithArgs("r-1").WillReturnRows(rows)

	repo := NewPostgresFoodRepo(db)
	out, err := repo.MenuForRestaurant(context.Background(), "r-1")

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.NotNil(t, out[0].Variants)
	assert.Empty(t, out[0].Variants)
}

func TestFoodGetByID_NotFoundReturnsNilNil(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("WHERE fi.id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := NewPostgresFoodRepo(db)
	fi, err := repo.GetByID(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, fi)
}

func TestSearch_BindsTermAndPattern(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(searchResultCols).
		AddRow(searchRowValues("fi-1", "Margherita")...)

	mock.ExpectQuery("ts_rank_cd").
		WithArgs("pizza", "%pizza%").
		WillReturnRows(rows)

	repo := NewPostgresFoodRepo(db)
	out, err := repo.Search(context.Background(), "pizza")

	require.NoError(t, err)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].RestaurantName)
	assert.Equal(t, "Bella Napoli", *out[0].RestaurantName)
	require.NotNil(t, out[0].RestaurantRating)
	assert.Equal(t, 4.6, *out[0].RestaurantRating)
	assert.NotNil(t, out[0].Variants)
	assert.Empty(t, out[0].Variants)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestByPriceRange_InvertedRangeYieldsEmptyList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("BETWEEN").
		WithArgs(50.0, 10.0).
		WillReturnRows(sqlmock.NewRows(searchResultCols))

	repo := NewPostgresFoodRepo(db)
	out, err := repo.ByPriceRange(context.Background(), 50, 10)

	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestByDiet_BindsTag(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(searchResultCols).
		AddRow(searchRowValues("fi-6", "Tofu Banh Mi")...)
	mock.ExpectQuery("ANY").
		WithArgs("vegan").
		WillReturnRows(rows)

	repo := NewPostgresFoodRepo(db)
	out, err := repo.ByDiet(context.Background(), "vegan")

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Tofu Banh Mi", out[0].Name)
}

func TestFeatured_BindsLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("is_featured").
		WithArgs(20).
		WillReturnRows(sqlmock.NewRows(searchResultCols))

	repo := NewPostgresFoodRepo(db)
	out, err := repo.Featured(context.Background(), 20)

	require.NoError(t, err)
	assert.Empty(t, out)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTrending_ScansRecentOrders(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(append(append([]string{}, searchResultCols...), "recent_orders")).
		AddRow(append(searchRowValues("fi-4", "Pho Bo"), 37)...)
	mock.ExpectQuery("recent_orders").
		WithArgs(10).
		WillReturnRows(rows)

	repo := NewPostgresFoodRepo(db)
	out, err := repo.Trending(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].RecentOrders)
	assert.Equal(t, 37, *out[0].RecentOrders)
}
