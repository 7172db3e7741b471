package httpapi

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"restaurant-api/internal/repository"
)

func TestOrdersReport_StreamsWorkbook(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewReportHandler(repository.NewPostgresOrdersRepo(db), testLogger(), false)
	router := gin.New()
	router.GET("/api/admin/reports/orders.xlsx", h.OrdersReport)

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "order_number", "restaurant_name", "customer_name",
		"status", "total_items", "total_amount", "created_at",
	}).AddRow("o-1", "ORD-SEED0001", "Saigon Corner", "Alice Nguyen", "delivered", 2, 28.63, now)

	mock.ExpectQuery("ORDER BY o.created_at DESC").
		WithArgs(500).
		WillReturnRows(rows)

	w, _ := perform(t, router, http.MethodGet, "/api/admin/reports/orders.xlsx", nil)

	requireStatus(t, w, http.StatusOK)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	sheetRows, err := f.GetRows("Orders")
	require.NoError(t, err)
	require.Len(t, sheetRows, 2)
	assert.Equal(t, "ORD-SEED0001", sheetRows[1][0])
}

func TestOrdersReport_DatabaseFailureIs500(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewReportHandler(repository.NewPostgresOrdersRepo(db), testLogger(), false)
	router := gin.New()
	router.GET("/api/admin/reports/orders.xlsx", h.OrdersReport)

	mock.ExpectQuery("ORDER BY o.created_at DESC").WillReturnError(assert.AnError)

	w, env := perform(t, router, http.MethodGet, "/api/admin/reports/orders.xlsx", nil)

	requireStatus(t, w, http.StatusInternalServerError)
	assert.Equal(t, "Internal server error", env.Message)
}
