package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/humidorlog/humidor/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats godoc
// @Summary Dashboard statistics
// @Description Aggregates over the collection: stock total, finalized tasting count, average score, favourite cigar and flavor counts
// @Tags dashboard
// @Produce json
// @Success 200 {object} services.DashboardStats
// @Failure 500 {object} ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
