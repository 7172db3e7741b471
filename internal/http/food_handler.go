package httpapi

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"restaurant-api/internal/domain"
	"restaurant-api/internal/repository"
)

const defaultListLimit = 20

// FoodHandler serves item lookup, search, featured and trending endpoints.
type FoodHandler struct {
	base
	food *repository.PostgresFoodRepo
}

func NewFoodHandler(food *repository.PostgresFoodRepo, logger *zap.Logger, production bool) *FoodHandler {
	return &FoodHandler{
		base: base{logger: logger, production: production},
		food: food,
	}
}

// GetItem returns one food item with its variants.
func (h *FoodHandler) GetItem(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondError(c, http.StatusBadRequest, "Food item ID is required")
		return
	}

	item, err := h.food.GetByID(c.Request.Context(), id)
	if err != nil {
		h.internalError(c, "failed to fetch food item", err)
		return
	}
	if item == nil {
		respondError(c, http.StatusNotFound, "Food item not found")
		return
	}
	respondOK(c, item)
}

// Search dispatches on the first matching filter: free text, then category,
// then diet, then price range (both bounds required), then the featured
// fallback. Lower-precedence filters present alongside a higher one are
// ignored.
func (h *FoodHandler) Search(c *gin.Context) {
	ctx := c.Request.Context()
	var items []domain.FoodItem
	var err error

	q := c.Query("q")
	category := c.Query("category")
	diet := c.Query("diet")
	minRaw := c.Query("min_price")
	maxRaw := c.Query("max_price")

	switch {
	case q != "":
		items, err = h.food.Search(ctx, q)
	case category != "":
		items, err = h.food.ByCategory(ctx, category)
	case diet != "":
		items, err = h.food.ByDiet(ctx, diet)
	case minRaw != "" && maxRaw != "":
		minPrice, minErr := strconv.ParseFloat(minRaw, 64)
		maxPrice, maxErr := strconv.ParseFloat(maxRaw, 64)
		if minErr != nil || maxErr != nil || !isFinite(minPrice) || !isFinite(maxPrice) {
			respondError(c, http.StatusBadRequest, "Invalid price range values")
			return
		}
		// An inverted range is a valid query that matches nothing.
		items, err = h.food.ByPriceRange(ctx, minPrice, maxPrice)
	default:
		// A single price bound is not a filter; it falls through here.
		items, err = h.food.Featured(ctx, defaultListLimit)
	}

	if err != nil {
		h.internalError(c, "failed to search food items", err)
		return
	}
	respondList(c, items, len(items))
}

// Featured lists flagged or frequently ordered items.
func (h *FoodHandler) Featured(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	items, err := h.food.Featured(c.Request.Context(), limit)
	if err != nil {
		h.internalError(c, "failed to fetch featured items", err)
		return
	}
	respondList(c, items, len(items))
}

// Trending lists items ordered within the last week.
func (h *FoodHandler) Trending(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	items, err := h.food.Trending(c.Request.Context(), limit)
	if err != nil {
		h.internalError(c, "failed to fetch trending items", err)
		return
	}
	respondList(c, items, len(items))
}

// parseLimit reads the optional limit parameter; anything outside 1-100
// (or not a number) is rejected before data access.
func parseLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return defaultListLimit, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > 100 {
		respondError(c, http.StatusBadRequest, "Limit must be between 1 and 100")
		return 0, false
	}
	return limit, true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
