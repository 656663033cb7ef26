package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/smarthire/placement-api/internal/dto"
	"github.com/smarthire/placement-api/internal/service"
	"github.com/smarthire/placement-api/internal/utils"
)

// AdminNoticeHandler exposes notice authoring for the placement cell.
type AdminNoticeHandler struct {
	notices service.NoticeService
	logger  zerolog.Logger
}

// NewAdminNoticeHandler creates a new handler instance.
func NewAdminNoticeHandler(notices service.NoticeService, logger zerolog.Logger) *AdminNoticeHandler {
	return &AdminNoticeHandler{
		notices: notices,
		logger:  logger.With().Str("component", "admin_notice_handler").Logger(),
	}
}

// Register attaches the admin notice endpoints.
func (h *AdminNoticeHandler) Register(router fiber.Router) {
	router.Post("/notices", h.create)
	router.Delete("/notices/:id", h.remove)
}

func (h *AdminNoticeHandler) create(c *fiber.Ctx) error {
	adminID, err := extractUserID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.NoticeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	notice, err := h.notices.Create(c.UserContext(), adminID, req)
	if err != nil {
		if status, ok := statusForError(err); ok {
			return utils.SendError(c, status, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to post notice")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to post notice")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "notice posted", notice)
}

func (h *AdminNoticeHandler) remove(c *fiber.Ctx) error {
	noticeID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.notices.Delete(c.UserContext(), noticeID); err != nil {
		if status, ok := statusForError(err); ok {
			return utils.SendError(c, status, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("notice_id", noticeID).Msg("failed to delete notice")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to delete notice")
	}

	return utils.SendSuccess(c, "notice deleted", nil)
}
