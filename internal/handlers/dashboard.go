package handlers

import (
	"log"

	"nisapoti-admin/internal/services/dashboard"
	"nisapoti-admin/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns the composed dashboard figures and chart series.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.Stats()
	if err != nil {
		log.Printf("Error fetching dashboard stats: %v", err)
		return utils.QueryFailed(c, "Failed to fetch dashboard stats", err)
	}
	return utils.Success(c, stats)
}
