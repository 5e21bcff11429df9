package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/breakbuddy/internal/persistence"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	postgres *persistence.Postgres
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(postgres *persistence.Postgres) *HealthHandler {
	return &HealthHandler{postgres: postgres}
}

// Live handles GET /health. It always reports 200 regardless of dependency
// state; clients of the original API rely on this shape.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "OK",
		"message": "BreakBuddy API is running",
	})
}

// Ready handles GET /health/ready by checking the credential store.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := h.postgres.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "database unavailable",
		})
	}
	return c.JSON(fiber.Map{"status": "ready"})
}
