package httpapi

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthHandler answers the liveness probe with the database reachability
// folded in. The endpoint stays 200 even when the store is down so the
// external proxy endpoints keep serving.
type HealthHandler struct {
	base
	db *sql.DB
}

func NewHealthHandler(db *sql.DB, logger *zap.Logger, production bool) *HealthHandler {
	return &HealthHandler{
		base: base{logger: logger, production: production},
		db:   db,
	}
}

func (h *HealthHandler) Health(c *gin.Context) {
	dbStatus := "up"
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("health check: database unreachable", zap.Error(err))
		dbStatus = "down"
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Restaurant API is running",
		Data:    gin.H{"database": dbStatus},
	})
}
