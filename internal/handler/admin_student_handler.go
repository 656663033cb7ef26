package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/smarthire/placement-api/internal/dto"
	"github.com/smarthire/placement-api/internal/repository"
	"github.com/smarthire/placement-api/internal/service"
	"github.com/smarthire/placement-api/internal/utils"
)

// AdminStudentHandler exposes student record keeping for the placement cell.
type AdminStudentHandler struct {
	students service.StudentService
	logger   zerolog.Logger
}

// NewAdminStudentHandler creates a new handler instance.
func NewAdminStudentHandler(students service.StudentService, logger zerolog.Logger) *AdminStudentHandler {
	return &AdminStudentHandler{
		students: students,
		logger:   logger.With().Str("component", "admin_student_handler").Logger(),
	}
}

// Register attaches the admin student endpoints.
func (h *AdminStudentHandler) Register(router fiber.Router) {
	router.Get("/students", h.list)
	router.Post("/students", h.create)
	router.Get("/students/:id", h.get)
	router.Put("/students/:id", h.update)
	router.Delete("/students/:id", h.remove)
}

func (h *AdminStudentHandler) list(c *fiber.Ctx) error {
	page, err := parseQueryInt(c, "page")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid page")
	}
	pageSize, err := parseQueryInt(c, "page_size")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid page_size")
	}

	filter := repository.StudentFilter{
		Search:   c.Query("search"),
		Batch:    c.Query("batch"),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	}

	students, err := h.students.AdminList(c.UserContext(), filter)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list students")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list students")
	}

	return utils.SendSuccess(c, "students retrieved", students)
}

func (h *AdminStudentHandler) create(c *fiber.Ctx) error {
	var req dto.AdminStudentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	student, err := h.students.AdminCreate(c.UserContext(), req)
	if err != nil {
		if status, ok := statusForError(err); ok {
			return utils.SendError(c, status, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Str("roll_no", req.RollNo).Msg("failed to create student")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create student")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "student created", student)
}

func (h *AdminStudentHandler) get(c *fiber.Ctx) error {
	studentID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	student, err := h.students.Profile(c.UserContext(), studentID)
	if err != nil {
		if status, ok := statusForError(err); ok {
			return utils.SendError(c, status, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("student_id", studentID).Msg("failed to load student")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load student")
	}

	return utils.SendSuccess(c, "student retrieved", student)
}

func (h *AdminStudentHandler) update(c *fiber.Ctx) error {
	studentID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.StudentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	student, err := h.students.AdminUpdate(c.UserContext(), studentID, req)
	if err != nil {
		if status, ok := statusForError(err); ok {
			return utils.SendError(c, status, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("student_id", studentID).Msg("failed to update student")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to update student")
	}

	return utils.SendSuccess(c, "student updated", student)
}

func (h *AdminStudentHandler) remove(c *fiber.Ctx) error {
	studentID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.students.AdminDelete(c.UserContext(), studentID); err != nil {
		if status, ok := statusForError(err); ok {
			return utils.SendError(c, status, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("student_id", studentID).Msg("failed to delete student")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to delete student")
	}

	return utils.SendSuccess(c, "student deleted", nil)
}
