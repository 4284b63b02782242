package handlers

import (
	"log"

	"furniro/internal/services"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the admin overview.
type DashboardHandler struct {
	service *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// RegisterAdminRoutes registers the dashboard route.
func (h *DashboardHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/dashboard", h.HandleGetStats)
}

// HandleGetStats returns revenue, counts and top sellers.
func (h *DashboardHandler) HandleGetStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		log.Printf("Error computing dashboard: %v", err)
		return fail(c, "Could not compute dashboard", err)
	}
	return c.JSON(stats)
}
