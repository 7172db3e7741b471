package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"restaurant-api/internal/domain"
	"restaurant-api/internal/repository"
)

// OrderHandler serves order placement and lookup. Status transitions are not
// guarded here.
type OrderHandler struct {
	base
	orders *repository.PostgresOrdersRepo
}

func NewOrderHandler(orders *repository.PostgresOrdersRepo, logger *zap.Logger, production bool) *OrderHandler {
	return &OrderHandler{
		base:   base{logger: logger, production: production},
		orders: orders,
	}
}

// Create places an order. Item prices are snapshotted server-side; the
// client never supplies amounts.
func (h *OrderHandler) Create(c *gin.Context) {
	var input domain.NewOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.CustomerID == "" {
		respondError(c, http.StatusBadRequest, "Customer ID is required")
		return
	}
	if input.RestaurantID == "" {
		respondError(c, http.StatusBadRequest, "Restaurant ID is required")
		return
	}
	if len(input.Items) == 0 {
		respondError(c, http.StatusBadRequest, "Order items are required")
		return
	}
	for _, item := range input.Items {
		if item.FoodItemID == "" {
			respondError(c, http.StatusBadRequest, "Food item ID is required")
			return
		}
		if item.Quantity < 1 {
			respondError(c, http.StatusBadRequest, "Item quantity must be at least 1")
			return
		}
	}
	if input.DeliveryType == "" {
		input.DeliveryType = "delivery"
	}

	order, err := h.orders.Create(c.Request.Context(), input)
	if errors.Is(err, repository.ErrRestaurantUnavailable) {
		respondError(c, http.StatusNotFound, "Restaurant not found")
		return
	}
	if errors.Is(err, repository.ErrFoodItemUnavailable) {
		respondError(c, http.StatusBadRequest, "Food item not found or not available")
		return
	}
	if err != nil {
		h.internalError(c, "failed to create order", err)
		return
	}
	respondCreated(c, order)
}

// GetByID returns one order with its items.
func (h *OrderHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondError(c, http.StatusBadRequest, "Order ID is required")
		return
	}

	order, err := h.orders.GetByID(c.Request.Context(), id)
	if err != nil {
		h.internalError(c, "failed to fetch order", err)
		return
	}
	if order == nil {
		respondError(c, http.StatusNotFound, "Order not found")
		return
	}
	respondOK(c, order)
}
