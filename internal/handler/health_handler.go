package handler

import (
	"examforge/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler reports process and cache backend liveness.
type HealthHandler struct {
	cache domain.Cache
}

func NewHealthHandler(cache domain.Cache) *HealthHandler {
	return &HealthHandler{cache: cache}
}

// Check godoc
// @Summary Health check
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if err := h.cache.Ping(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "degraded",
			"cache":  "unreachable",
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
