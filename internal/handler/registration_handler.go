package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/smarthire/placement-api/internal/service"
	"github.com/smarthire/placement-api/internal/utils"
)

// RegistrationHandler exposes the student-facing registration endpoints.
type RegistrationHandler struct {
	registrations service.RegistrationService
	logger        zerolog.Logger
}

// NewRegistrationHandler creates a new handler instance.
func NewRegistrationHandler(registrations service.RegistrationService, logger zerolog.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		registrations: registrations,
		logger:        logger.With().Str("component", "registration_handler").Logger(),
	}
}

// Register attaches the registration endpoints.
func (h *RegistrationHandler) Register(router fiber.Router) {
	router.Post("/companies/:id/register", h.registerForDrive)
	router.Get("/registrations", h.listOwn)
}

func (h *RegistrationHandler) registerForDrive(c *fiber.Ctx) error {
	studentID, err := extractUserID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	companyID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	registration, err := h.registrations.Register(c.UserContext(), studentID, companyID)
	if err != nil {
		if status, ok := statusForError(err); ok {
			return utils.SendError(c, status, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).
			Uint("student_id", studentID).
			Uint("company_id", companyID).
			Msg("failed to register for drive")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to register for drive")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "registered for drive", registration)
}

func (h *RegistrationHandler) listOwn(c *fiber.Ctx) error {
	studentID, err := extractUserID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	registrations, err := h.registrations.ListByStudent(c.UserContext(), studentID)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Uint("student_id", studentID).Msg("failed to list registrations")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list registrations")
	}

	return utils.SendSuccess(c, "registrations retrieved", registrations)
}
