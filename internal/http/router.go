package httpapi

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"restaurant-api/internal/config"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health      *HealthHandler
	Restaurants *RestaurantHandler
	Food        *FoodHandler
	Categories  *CategoryHandler
	Orders      *OrderHandler
	External    *ExternalHandler
	Reports     *ReportHandler
}

// NewRouter builds the gin engine with middleware and the full route table.
func NewRouter(cfg *config.Config, logger *zap.Logger, h Handlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		AllowCredentials: true,
	}))

	router.GET("/health", h.Health.Health)

	api := router.Group("/api")
	{
		api.GET("/restaurants", h.Restaurants.List)
		api.GET("/restaurants/city/:city", h.Restaurants.ByCity)
		api.GET("/restaurants/cuisine/:cuisine", h.Restaurants.ByCuisine)
		api.GET("/restaurants/:id", h.Restaurants.GetByID)
		api.GET("/restaurants/:id/menu", h.Restaurants.Menu)
		api.GET("/restaurants/:id/categories", h.Restaurants.Categories)

		api.GET("/categories", h.Categories.List)
		api.GET("/categories/:id/items", h.Categories.Items)

		api.GET("/food-items/:id", h.Food.GetItem)
		api.GET("/search", h.Food.Search)
		api.GET("/featured", h.Food.Featured)
		api.GET("/trending", h.Food.Trending)

		api.POST("/orders", h.Orders.Create)
		api.GET("/orders/:id", h.Orders.GetByID)

		api.GET("/admin/reports/orders.xlsx", h.Reports.OrdersReport)

		external := api.Group("/external")
		{
			external.GET("/food-list", h.External.FoodList)
			external.GET("/food-details/:id", h.External.FoodDetails)
			external.GET("/food-category/:category", h.External.FoodByCategory)
			external.GET("/search", h.External.Search)
		}
	}

	return router
}
