package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/smarthire/placement-api/internal/dto"
	"github.com/smarthire/placement-api/internal/service"
	"github.com/smarthire/placement-api/internal/utils"
)

// StudentProfileHandler exposes the student's own profile and stats endpoints.
type StudentProfileHandler struct {
	students service.StudentService
	stats    service.StatsService
	logger   zerolog.Logger
}

// NewStudentProfileHandler creates a new handler instance.
func NewStudentProfileHandler(students service.StudentService, stats service.StatsService, logger zerolog.Logger) *StudentProfileHandler {
	return &StudentProfileHandler{
		students: students,
		stats:    stats,
		logger:   logger.With().Str("component", "student_profile_handler").Logger(),
	}
}

// Register attaches the profile endpoints.
func (h *StudentProfileHandler) Register(router fiber.Router) {
	router.Get("/profile", h.getProfile)
	router.Put("/profile", h.updateProfile)
	router.Get("/stats", h.getStats)
}

func (h *StudentProfileHandler) getProfile(c *fiber.Ctx) error {
	studentID, err := extractUserID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	profile, err := h.students.Profile(c.UserContext(), studentID)
	if err != nil {
		if status, ok := statusForError(err); ok {
			return utils.SendError(c, status, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("student_id", studentID).Msg("failed to load profile")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load profile")
	}

	return utils.SendSuccess(c, "profile retrieved", profile)
}

func (h *StudentProfileHandler) updateProfile(c *fiber.Ctx) error {
	studentID, err := extractUserID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.StudentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	profile, err := h.students.UpdateProfile(c.UserContext(), studentID, req)
	if err != nil {
		if status, ok := statusForError(err); ok {
			return utils.SendError(c, status, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("student_id", studentID).Msg("failed to update profile")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to update profile")
	}

	return utils.SendSuccess(c, "profile updated", profile)
}

func (h *StudentProfileHandler) getStats(c *fiber.Ctx) error {
	studentID, err := extractUserID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	stats, err := h.stats.StudentStats(c.UserContext(), studentID)
	if err != nil {
		if status, ok := statusForError(err); ok {
			return utils.SendError(c, status, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("student_id", studentID).Msg("failed to load stats")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load stats")
	}

	return utils.SendSuccess(c, "stats retrieved", stats)
}
