package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/smarthire/placement-api/internal/repository"
	"github.com/smarthire/placement-api/internal/service"
	"github.com/smarthire/placement-api/internal/utils"
)

// AdminActivityHandler exposes the audit log.
type AdminActivityHandler struct {
	activities service.ActivityService
	logger     zerolog.Logger
}

// NewAdminActivityHandler creates a new handler instance.
func NewAdminActivityHandler(activities service.ActivityService, logger zerolog.Logger) *AdminActivityHandler {
	return &AdminActivityHandler{
		activities: activities,
		logger:     logger.With().Str("component", "admin_activity_handler").Logger(),
	}
}

// Register attaches the audit log endpoint.
func (h *AdminActivityHandler) Register(router fiber.Router) {
	router.Get("/activity", h.list)
}

func (h *AdminActivityHandler) list(c *fiber.Ctx) error {
	page, err := parseQueryInt(c, "page")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid page")
	}
	pageSize, err := parseQueryInt(c, "page_size")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid page_size")
	}

	filter := repository.ActivityLogFilter{
		Action:     c.Query("action"),
		EntityType: c.Query("entity_type"),
		Page:       page,
		PageSize:   pageSize,
	}

	entries, err := h.activities.List(c.UserContext(), filter)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list audit entries")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list audit entries")
	}

	return utils.SendSuccess(c, "audit entries retrieved", entries)
}
