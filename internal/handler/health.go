package handler

import (
	"lexiquiz/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler reports service liveness and store reachability
type HealthHandler struct {
	store domain.DocumentStore
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(store domain.DocumentStore) *HealthHandler {
	return &HealthHandler{store: store}
}

// Check handles GET /health
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if err := h.store.Ping(c.UserContext()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "degraded",
			"store":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
