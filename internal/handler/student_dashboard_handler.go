package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/smarthire/placement-api/internal/service"
	"github.com/smarthire/placement-api/internal/utils"
)

// StudentDashboardHandler exposes the student dashboard and inbox endpoints.
type StudentDashboardHandler struct {
	eligibilities service.EligibilityService
	logger        zerolog.Logger
}

// NewStudentDashboardHandler creates a new handler instance.
func NewStudentDashboardHandler(eligibilities service.EligibilityService, logger zerolog.Logger) *StudentDashboardHandler {
	return &StudentDashboardHandler{
		eligibilities: eligibilities,
		logger:        logger.With().Str("component", "student_dashboard_handler").Logger(),
	}
}

// Register attaches the dashboard endpoints.
func (h *StudentDashboardHandler) Register(router fiber.Router) {
	router.Get("/dashboard", h.getDashboard)
	router.Get("/inbox", h.getInbox)
	router.Get("/eligibility", h.getReport)
	router.Get("/companies/:id/eligibility", h.checkCompany)
}

func (h *StudentDashboardHandler) getDashboard(c *fiber.Ctx) error {
	studentID, err := extractUserID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	dashboard, err := h.eligibilities.Dashboard(c.UserContext(), studentID)
	if err != nil {
		if status, ok := statusForError(err); ok {
			return utils.SendError(c, status, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("student_id", studentID).Msg("failed to load dashboard")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load dashboard")
	}

	return utils.SendSuccess(c, "dashboard retrieved", dashboard)
}

func (h *StudentDashboardHandler) getInbox(c *fiber.Ctx) error {
	studentID, err := extractUserID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	inbox, err := h.eligibilities.Inbox(c.UserContext(), studentID)
	if err != nil {
		if status, ok := statusForError(err); ok {
			return utils.SendError(c, status, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("student_id", studentID).Msg("failed to load inbox")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load inbox")
	}

	return utils.SendSuccess(c, "inbox retrieved", inbox)
}

func (h *StudentDashboardHandler) getReport(c *fiber.Ctx) error {
	studentID, err := extractUserID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	report, err := h.eligibilities.Report(c.UserContext(), studentID)
	if err != nil {
		if status, ok := statusForError(err); ok {
			return utils.SendError(c, status, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("student_id", studentID).Msg("failed to build eligibility report")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to build eligibility report")
	}

	return utils.SendSuccess(c, "eligibility report retrieved", report)
}

func (h *StudentDashboardHandler) checkCompany(c *fiber.Ctx) error {
	studentID, err := extractUserID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	companyID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	verdict, err := h.eligibilities.CheckCompany(c.UserContext(), studentID, companyID)
	if err != nil {
		if status, ok := statusForError(err); ok {
			return utils.SendError(c, status, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("company_id", companyID).Msg("failed to check eligibility")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to check eligibility")
	}

	return utils.SendSuccess(c, "eligibility checked", verdict)
}
