package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"restaurant-api/internal/repository"
	"restaurant-api/internal/service"
)

const ordersReportLimit = 500

// ReportHandler serves the admin Excel exports.
type ReportHandler struct {
	base
	orders *repository.PostgresOrdersRepo
}

func NewReportHandler(orders *repository.PostgresOrdersRepo, logger *zap.Logger, production bool) *ReportHandler {
	return &ReportHandler{
		base:   base{logger: logger, production: production},
		orders: orders,
	}
}

// OrdersReport streams the recent-orders workbook.
func (h *ReportHandler) OrdersReport(c *gin.Context) {
	orders, err := h.orders.ListRecent(c.Request.Context(), ordersReportLimit)
	if err != nil {
		h.internalError(c, "failed to fetch orders for report", err)
		return
	}

	workbook, err := service.GenerateOrdersReport(orders)
	if err != nil {
		h.internalError(c, "failed to generate orders report", err)
		return
	}

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		workbook,
	)
}
