package handler

import (
	"context"
	"time"

	"survey-console/internal/dto"
	"survey-console/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// Pinger is satisfied by *sqlx.DB and the cache adapter.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) PingContext(ctx context.Context) error { return f(ctx) }

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Health godoc
// @Summary Health check
// @Description Pings the database and the session cache
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), healthTimeout)
	defer cancel()

	resp := dto.HealthResponse{
		Status:   "ok",
		Database: check(ctx, "database", h.db),
		Cache:    check(ctx, "cache", h.cache),
	}
	if resp.Database == "down" || resp.Cache == "down" {
		resp.Status = "degraded"
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}

func check(ctx context.Context, name string, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.PingContext(ctx); err != nil {
		logger.Get().Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
		return "down"
	}
	return "ok"
}
