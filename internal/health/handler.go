package health

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nkaewam/storefront/internal/models"
)

// Handler handles health check requests
type Handler struct {
	service *Service
}

// ProvideHandler creates a new health handler
func ProvideHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetHealth reports service health
// @Summary Health check
// @Description Report liveness and storage reachability
// @Tags health
// @Produce json
// @Success 200 {object} models.Response{data=HealthStatus}
// @Failure 503 {object} models.Response{data=HealthStatus}
// @Router /health [get]
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	status := h.service.GetHealth(c.UserContext())
	if !status.Healthy() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.Response{Success: false, Data: status})
	}
	return c.JSON(models.Success(status))
}
