package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/smarthire/placement-api/internal/repository"
	"github.com/smarthire/placement-api/internal/service"
	"github.com/smarthire/placement-api/internal/utils"
)

// NoticeHandler exposes the student-facing notice feed.
type NoticeHandler struct {
	notices service.NoticeService
	logger  zerolog.Logger
}

// NewNoticeHandler creates a new handler instance.
func NewNoticeHandler(notices service.NoticeService, logger zerolog.Logger) *NoticeHandler {
	return &NoticeHandler{
		notices: notices,
		logger:  logger.With().Str("component", "notice_handler").Logger(),
	}
}

// Register attaches the notice feed endpoint.
func (h *NoticeHandler) Register(router fiber.Router) {
	router.Get("/notices", h.list)
}

func (h *NoticeHandler) list(c *fiber.Ctx) error {
	page, err := parseQueryInt(c, "page")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid page")
	}
	pageSize, err := parseQueryInt(c, "page_size")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid page_size")
	}

	notices, err := h.notices.List(c.UserContext(), repository.NoticeFilter{Page: page, PageSize: pageSize})
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list notices")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list notices")
	}

	return utils.SendSuccess(c, "notices retrieved", notices)
}
