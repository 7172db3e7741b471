package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"restaurant-api/internal/repository"
)

// CategoryHandler serves the category endpoints.
type CategoryHandler struct {
	base
	categories *repository.PostgresCategoriesRepo
	food       *repository.PostgresFoodRepo
}

func NewCategoryHandler(
	categories *repository.PostgresCategoriesRepo,
	food *repository.PostgresFoodRepo,
	logger *zap.Logger,
	production bool,
) *CategoryHandler {
	return &CategoryHandler{
		base:       base{logger: logger, production: production},
		categories: categories,
		food:       food,
	}
}

// List returns all active categories with item counts.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.ListActive(c.Request.Context())
	if err != nil {
		h.internalError(c, "failed to fetch categories", err)
		return
	}
	respondList(c, categories, len(categories))
}

// Items lists the available items of one category.
func (h *CategoryHandler) Items(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondError(c, http.StatusBadRequest, "Category ID is required")
		return
	}

	items, err := h.food.ByCategory(c.Request.Context(), id)
	if err != nil {
		h.internalError(c, "failed to fetch category items", err)
		return
	}
	respondList(c, items, len(items))
}
