package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/smarthire/placement-api/internal/service"
	"github.com/smarthire/placement-api/internal/utils"
)

// AdminStatsHandler exposes portal-wide counters for the admin landing page.
type AdminStatsHandler struct {
	stats  service.StatsService
	logger zerolog.Logger
}

// NewAdminStatsHandler creates a new handler instance.
func NewAdminStatsHandler(stats service.StatsService, logger zerolog.Logger) *AdminStatsHandler {
	return &AdminStatsHandler{
		stats:  stats,
		logger: logger.With().Str("component", "admin_stats_handler").Logger(),
	}
}

// Register attaches the stats endpoint.
func (h *AdminStatsHandler) Register(router fiber.Router) {
	router.Get("/stats", h.dashboard)
}

func (h *AdminStatsHandler) dashboard(c *fiber.Ctx) error {
	stats, err := h.stats.AdminDashboard(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load dashboard stats")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load dashboard stats")
	}

	return utils.SendSuccess(c, "stats retrieved", stats)
}
