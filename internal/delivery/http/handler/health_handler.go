package handler

import (
	"context"
	"time"

	"member-profile/internal/database"
	"member-profile/internal/infrastructure/cache"
	"member-profile/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	cache *cache.Redis
}

func NewHealthHandler(db database.DB, cache *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := fiber.Map{
		"database": "ok",
		"cache":    "ok",
	}

	if h.db == nil || h.db.Ping(ctx) != nil {
		status["database"] = "unavailable"
	}
	// The cache is optional: the app degrades without it, so a down cache
	// is reported but never fails the health check.
	if h.cache == nil || h.cache.Ping(ctx) != nil {
		status["cache"] = "unavailable"
	}

	if status["database"] != "ok" {
		return response.Error(c, fiber.StatusServiceUnavailable, "degraded", status)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, status)
}
