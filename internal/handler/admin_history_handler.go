package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/smarthire/placement-api/internal/service"
	"github.com/smarthire/placement-api/internal/utils"
)

// AdminHistoryHandler exposes the completed-drive archive.
type AdminHistoryHandler struct {
	histories service.HistoryService
	logger    zerolog.Logger
}

// NewAdminHistoryHandler creates a new handler instance.
func NewAdminHistoryHandler(histories service.HistoryService, logger zerolog.Logger) *AdminHistoryHandler {
	return &AdminHistoryHandler{
		histories: histories,
		logger:    logger.With().Str("component", "admin_history_handler").Logger(),
	}
}

// Register attaches the history endpoints.
func (h *AdminHistoryHandler) Register(router fiber.Router) {
	router.Get("/history", h.list)
	router.Get("/companies/:id/history", h.listByCompany)
}

func (h *AdminHistoryHandler) list(c *fiber.Ctx) error {
	records, err := h.histories.List(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list history")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list history")
	}

	return utils.SendSuccess(c, "history retrieved", records)
}

func (h *AdminHistoryHandler) listByCompany(c *fiber.Ctx) error {
	companyID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	records, err := h.histories.ListByCompany(c.UserContext(), companyID)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Uint("company_id", companyID).Msg("failed to list company history")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list company history")
	}

	return utils.SendSuccess(c, "history retrieved", records)
}
