package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthController reports whether the API can reach its database.
type HealthController struct {
	ping func(context.Context) error
}

func NewHealthController(ping func(context.Context) error) *HealthController {
	return &HealthController{ping: ping}
}

// GET /healthz
func (h *HealthController) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()
	if err := h.ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "database": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
