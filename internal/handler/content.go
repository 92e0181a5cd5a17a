package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/justintdct/CineVault/cinevault-go/internal/middleware"
	"github.com/justintdct/CineVault/cinevault-go/internal/model"
	"github.com/justintdct/CineVault/cinevault-go/internal/service"
	"github.com/justintdct/CineVault/cinevault-go/internal/store"
)

type ContentHandler struct {
	catalog *store.Catalog
	stats   *store.StatsStore
	ranking *service.RankingService
	cache   *service.CacheService
}

func NewContentHandler(catalog *store.Catalog, stats *store.StatsStore, ranking *service.RankingService, cache *service.CacheService) *ContentHandler {
	return &ContentHandler{catalog: catalog, stats: stats, ranking: ranking, cache: cache}
}

// List handles GET /api/content — the full catalog joined with stats,
// unsorted. An optional ?category= query filters by category.
func (h *ContentHandler) List(c fiber.Ctx) error {
	category := fiber.Query[string](c, "category")
	category, errMsg := middleware.ValidateCategory(category)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_CATEGORY", errMsg)
	}

	if category != "" {
		return c.JSON(h.ranking.AllRankedByCategory(category))
	}
	return c.JSON(h.ranking.AllRanked())
}

// GetByID handles GET /api/content/:id. Stats are omitted when the entry has
// none yet.
func (h *ContentHandler) GetByID(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateContentID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	content, ok := h.catalog.Get(id)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Content not found")
	}

	detail := model.ContentDetail{Content: *content}
	if stats, ok := h.stats.Get(id); ok {
		detail.Stats = &stats
	}
	return c.JSON(detail)
}

// Categories handles GET /api/categories — the sorted distinct category set
// for the filter UI.
func (h *ContentHandler) Categories(c fiber.Ctx) error {
	return c.JSON(h.ranking.Categories())
}

// UpdateStats handles POST /api/content/:id/update-stats — a client-triggered
// refresh of one entry (simulates time passing).
func (h *ContentHandler) UpdateStats(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateContentID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	stats, err := h.stats.Refresh(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Content not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update stats")
	}

	// Scores changed; drop stale cached rankings.
	if h.cache != nil {
		if err := h.cache.InvalidateRankings(c.Context()); err != nil {
			log.Printf("cache: rankings invalidate error: %v", err)
		}
	}

	return c.JSON(stats)
}
