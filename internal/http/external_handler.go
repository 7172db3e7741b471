package httpapi

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"restaurant-api/internal/service"
)

var numericIDPattern = regexp.MustCompile(`^\d+$`)

// ExternalHandler proxies TheMealDB through the local envelope. Input is
// validated before any outbound call so malformed requests never spend an
// external round-trip.
type ExternalHandler struct {
	base
	meals *service.MealDBClient
}

func NewExternalHandler(meals *service.MealDBClient, logger *zap.Logger, production bool) *ExternalHandler {
	return &ExternalHandler{
		base:  base{logger: logger, production: production},
		meals: meals,
	}
}

// FoodList returns the default browsing list.
func (h *ExternalHandler) FoodList(c *gin.Context) {
	result, err := h.meals.FoodList(c.Request.Context())
	if err != nil {
		h.upstreamFailure(c, "failed to fetch food list", err)
		return
	}
	respondList(c, result, len(result.Meals))
}

// FoodDetails looks one meal up by numeric id.
func (h *ExternalHandler) FoodDetails(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondError(c, http.StatusBadRequest, "Food ID is required")
		return
	}
	if !numericIDPattern.MatchString(id) {
		respondError(c, http.StatusBadRequest, "Invalid food ID format")
		return
	}

	result, err := h.meals.FoodDetails(c.Request.Context(), id)
	if err != nil {
		h.upstreamFailure(c, "failed to fetch food details", err)
		return
	}
	if len(result.Meals) == 0 {
		respondError(c, http.StatusNotFound, "Food item not found")
		return
	}
	respondOK(c, result)
}

// FoodByCategory filters meals by category name.
func (h *ExternalHandler) FoodByCategory(c *gin.Context) {
	category := c.Param("category")
	if category == "" {
		respondError(c, http.StatusBadRequest, "Category is required")
		return
	}
	if len(category) < 2 || len(category) > 50 {
		respondError(c, http.StatusBadRequest, "Invalid category format")
		return
	}

	result, err := h.meals.FoodsByCategory(c.Request.Context(), category)
	if err != nil {
		h.upstreamFailure(c, "failed to fetch food by category", err)
		return
	}
	respondList(c, result, len(result.Meals))
}

// Search runs a free-text meal search.
func (h *ExternalHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		respondError(c, http.StatusBadRequest, "Search query is required")
		return
	}
	if len(q) < 2 || len(q) > 100 {
		respondError(c, http.StatusBadRequest, "Search query must be between 2 and 100 characters")
		return
	}

	result, err := h.meals.SearchMeals(c.Request.Context(), q)
	if err != nil {
		h.upstreamFailure(c, "failed to search meals", err)
		return
	}
	respondList(c, result, len(result.Meals))
}

// upstreamFailure writes an already-translated external error, falling back
// to the generic 500 for anything unexpected.
func (h *ExternalHandler) upstreamFailure(c *gin.Context, logMsg string, err error) {
	var extErr *service.ExternalError
	if errors.As(err, &extErr) {
		h.logger.Warn(logMsg,
			zap.Int("status", extErr.StatusCode),
			zap.String("message", extErr.Message),
		)
		h.externalFailure(c, extErr.StatusCode, extErr.Message, extErr.Detail)
		return
	}
	h.internalError(c, logMsg, err)
}
