package handlers

import (
	"net/http"

	"kitchen-service/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	logger  *zap.Logger
	service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		logger:  logger,
		service: service,
	}
}

// Stats handles GET /api/v1/dashboard/stats
// @Summary      Dashboard statistics
// @Description  Order counts by status, orders and revenue in the window, a trend series, the low-stock count and finished-goods units on hand.
// @Description  Results are cached and dropped whenever an order or stock event is consumed.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        period  query     string  false  "daily (default), weekly or monthly"
// @Success      200     {object}  services.DashboardStats
// @Failure      400     {object}  errors.StandardError
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	period, err := services.ParsePeriod(c.Query("period"))
	if err != nil {
		fail(c, err)
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), period)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
