package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/justintdct/CineVault/cinevault-go/internal/middleware"
	"github.com/justintdct/CineVault/cinevault-go/internal/model"
	"github.com/justintdct/CineVault/cinevault-go/internal/service"
)

type RankingHandler struct {
	svc   *service.RankingService
	limit int
}

func NewRankingHandler(svc *service.RankingService, limit int) *RankingHandler {
	if limit <= 0 {
		limit = service.DefaultRankingLimit
	}
	return &RankingHandler{svc: svc, limit: limit}
}

// GetByPeriod handles GET /api/rankings/:period for period in
// {weekly, monthly, alltime}. Anything else is rejected before the store is
// read.
func (h *RankingHandler) GetByPeriod(c fiber.Ctx) error {
	period := c.Params("period")

	ranked, err := h.svc.Rank(c.Context(), period, h.limit)
	if err != nil {
		if errors.Is(err, model.ErrInvalidPeriod) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PERIOD",
				"period must be one of: weekly, monthly, alltime")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch rankings")
	}

	return c.JSON(ranked)
}
