package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/staffdir/internal/config"
	"github.com/localnerve/staffdir/internal/dataset"
	"github.com/localnerve/staffdir/internal/services"
)

// HealthHandler handles the health route
type HealthHandler struct {
	Store *dataset.Store
	Cfg   *config.Config
}

// GetHealth handles GET /api/health
// @Summary Service health
// @Description Dataset load report and avatar service reachability
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Cfg, h.Store)

	status := fiber.StatusOK
	if result.Status == "unhealthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
