package handlers

import (
	"github.com/gofiber/fiber/v2"

	"inventori/internal/mapper"
	"inventori/internal/services"
)

type DashboardHandler struct {
	service services.DashboardService
}

func NewDashboardHandler(service services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetDashboard never fails the request on a backend error; failed halves
// come back empty and the client's next refresh retries.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	stats, recent := h.service.GetDashboard(OwnerID(c))
	return c.JSON(mapper.ToDashboardDTO(stats.TotalBoxes, stats.MostUsedCategory, recent))
}
