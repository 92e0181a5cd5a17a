package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"

	"github.com/justintdct/CineVault/cinevault-go/internal/store"
)

type HealthHandler struct {
	catalog *store.Catalog
	stats   *store.StatsStore
	rdb     *redis.Client
	startAt time.Time
}

func NewHealthHandler(catalog *store.Catalog, stats *store.StatsStore, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{
		catalog: catalog,
		stats:   stats,
		rdb:     rdb,
		startAt: time.Now(),
	}
}

// Live handles GET /health/live — liveness probe.
func (h *HealthHandler) Live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready handles GET /health/ready — readiness probe with dependency checks.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	checks := make(fiber.Map)
	overallStatus := "healthy"

	checks["catalog"] = checkCatalog(h.catalog, h.stats)
	if catCheck, ok := checks["catalog"].(fiber.Map); ok {
		if catCheck["status"] != "up" {
			overallStatus = "degraded"
		}
	}

	checks["redis"] = checkRedis(ctx, h.rdb)
	if redisCheck, ok := checks["redis"].(fiber.Map); ok {
		if redisCheck["status"] != "up" && redisCheck["status"] != "disabled" && overallStatus == "healthy" {
			overallStatus = "degraded"
		}
	}

	uptimeSeconds := int(time.Since(h.startAt).Seconds())

	resp := fiber.Map{
		"status":         overallStatus,
		"checks":         checks,
		"uptime_seconds": uptimeSeconds,
		"version":        "1.0.0",
	}

	status := fiber.StatusOK
	if overallStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(resp)
}

func checkCatalog(catalog *store.Catalog, stats *store.StatsStore) fiber.Map {
	if catalog == nil || catalog.Len() == 0 {
		return fiber.Map{
			"status": "down",
			"error":  "catalog is empty",
		}
	}
	return fiber.Map{
		"status":           "up",
		"items":            catalog.Len(),
		"registered_stats": stats.Len(),
	}
}

func checkRedis(ctx context.Context, rdb *redis.Client) fiber.Map {
	if rdb == nil {
		return fiber.Map{
			"status": "disabled",
		}
	}

	start := time.Now()
	err := rdb.Ping(ctx).Err()
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return fiber.Map{
			"status":     "down",
			"latency_ms": latency,
			"error":      "connection failed",
		}
	}
	return fiber.Map{
		"status":     "up",
		"latency_ms": latency,
	}
}
