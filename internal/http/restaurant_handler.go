package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"restaurant-api/internal/domain"
	"restaurant-api/internal/repository"
)

// RestaurantHandler serves the restaurant read endpoints.
type RestaurantHandler struct {
	base
	restaurants *repository.PostgresRestaurantsRepo
	food        *repository.PostgresFoodRepo
}

func NewRestaurantHandler(
	restaurants *repository.PostgresRestaurantsRepo,
	food *repository.PostgresFoodRepo,
	logger *zap.Logger,
	production bool,
) *RestaurantHandler {
	return &RestaurantHandler{
		base:        base{logger: logger, production: production},
		restaurants: restaurants,
		food:        food,
	}
}

// List returns all active restaurants with embedded menus.
func (h *RestaurantHandler) List(c *gin.Context) {
	restaurants, err := h.restaurants.ListWithMenu(c.Request.Context())
	if err != nil {
		h.internalError(c, "failed to fetch restaurants", err)
		return
	}
	respondList(c, restaurants, len(restaurants))
}

// GetByID returns one restaurant.
func (h *RestaurantHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondError(c, http.StatusBadRequest, "Restaurant ID is required")
		return
	}

	restaurant, err := h.restaurants.GetByID(c.Request.Context(), id)
	if err != nil {
		h.internalError(c, "failed to fetch restaurant", err)
		return
	}
	if restaurant == nil {
		respondError(c, http.StatusNotFound, "Restaurant not found")
		return
	}
	respondOK(c, restaurant)
}

// Menu returns one restaurant's available items grouped by category label,
// in first-occurrence order with row order preserved inside each group.
func (h *RestaurantHandler) Menu(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondError(c, http.StatusBadRequest, "Restaurant ID is required")
		return
	}

	items, err := h.food.MenuForRestaurant(c.Request.Context(), id)
	if err != nil {
		h.internalError(c, "failed to fetch menu", err)
		return
	}
	respondOK(c, domain.GroupMenuByCategory(items))
}

// ByCity lists restaurants matching a city name.
func (h *RestaurantHandler) ByCity(c *gin.Context) {
	city := c.Param("city")
	if city == "" {
		respondError(c, http.StatusBadRequest, "City is required")
		return
	}

	restaurants, err := h.restaurants.ListByCity(c.Request.Context(), city)
	if err != nil {
		h.internalError(c, "failed to fetch restaurants by city", err)
		return
	}
	respondList(c, restaurants, len(restaurants))
}

// ByCuisine lists restaurants carrying a cuisine tag.
func (h *RestaurantHandler) ByCuisine(c *gin.Context) {
	cuisine := c.Param("cuisine")
	if cuisine == "" {
		respondError(c, http.StatusBadRequest, "Cuisine is required")
		return
	}

	restaurants, err := h.restaurants.ListByCuisine(c.Request.Context(), cuisine)
	if err != nil {
		h.internalError(c, "failed to fetch restaurants by cuisine", err)
		return
	}
	respondList(c, restaurants, len(restaurants))
}

// Categories returns one restaurant's category summary.
func (h *RestaurantHandler) Categories(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondError(c, http.StatusBadRequest, "Restaurant ID is required")
		return
	}

	summaries, err := h.restaurants.CategorySummaries(c.Request.Context(), id)
	if err != nil {
		h.internalError(c, "failed to fetch restaurant categories", err)
		return
	}
	respondList(c, summaries, len(summaries))
}
