package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/smarthire/placement-api/internal/dto"
	"github.com/smarthire/placement-api/internal/service"
	"github.com/smarthire/placement-api/internal/utils"
)

// AdminCompanyHandler exposes drive posting and lifecycle endpoints for the
// placement cell.
type AdminCompanyHandler struct {
	companies     service.CompanyService
	drives        service.DriveService
	registrations service.RegistrationService
	activities    service.ActivityRecorder
	logger        zerolog.Logger
}

// NewAdminCompanyHandler creates a new handler instance.
func NewAdminCompanyHandler(
	companies service.CompanyService,
	drives service.DriveService,
	registrations service.RegistrationService,
	activities service.ActivityRecorder,
	logger zerolog.Logger,
) *AdminCompanyHandler {
	return &AdminCompanyHandler{
		companies:     companies,
		drives:        drives,
		registrations: registrations,
		activities:    activities,
		logger:        logger.With().Str("component", "admin_company_handler").Logger(),
	}
}

// Register attaches the admin company endpoints.
func (h *AdminCompanyHandler) Register(router fiber.Router) {
	router.Post("/companies", h.create)
	router.Get("/companies", h.list)
	router.Get("/companies/:id", h.get)
	router.Put("/companies/:id", h.update)
	router.Get("/companies/:id/registrations", h.listRegistrations)
	router.Post("/companies/:id/complete", h.complete)
	router.Post("/companies/:id/cancel", h.cancel)
}

func (h *AdminCompanyHandler) create(c *fiber.Ctx) error {
	var req dto.CompanyCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	response, err := h.companies.Create(c.UserContext(), req)
	if err != nil {
		if status, ok := statusForError(err); ok {
			return utils.SendError(c, status, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Str("name", req.Name).Msg("failed to post drive")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to post drive")
	}

	h.record(c, "drive.posted", response.Company.ID, map[string]interface{}{
		"name":              response.Company.Name,
		"eligible_students": response.EligibleStudentsCount,
	})

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "drive posted", response)
}

func (h *AdminCompanyHandler) list(c *fiber.Ctx) error {
	companies, err := h.companies.List(c.UserContext(), c.Query("status"))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list companies")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list companies")
	}

	return utils.SendSuccess(c, "companies retrieved", companies)
}

func (h *AdminCompanyHandler) get(c *fiber.Ctx) error {
	companyID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	company, err := h.companies.Get(c.UserContext(), companyID)
	if err != nil {
		if status, ok := statusForError(err); ok {
			return utils.SendError(c, status, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("company_id", companyID).Msg("failed to load company")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load company")
	}

	return utils.SendSuccess(c, "company retrieved", company)
}

func (h *AdminCompanyHandler) update(c *fiber.Ctx) error {
	companyID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.CompanyUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	company, err := h.companies.Update(c.UserContext(), companyID, req)
	if err != nil {
		if status, ok := statusForError(err); ok {
			return utils.SendError(c, status, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("company_id", companyID).Msg("failed to update company")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to update company")
	}

	return utils.SendSuccess(c, "company updated", company)
}

func (h *AdminCompanyHandler) listRegistrations(c *fiber.Ctx) error {
	companyID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	registrations, err := h.registrations.ListByCompany(c.UserContext(), companyID, c.Query("filter"))
	if err != nil {
		if status, ok := statusForError(err); ok {
			return utils.SendError(c, status, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("company_id", companyID).Msg("failed to list registrations")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list registrations")
	}

	return utils.SendSuccess(c, "registrations retrieved", registrations)
}

func (h *AdminCompanyHandler) complete(c *fiber.Ctx) error {
	companyID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.CompleteDriveRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	history, err := h.drives.Complete(c.UserContext(), companyID, req.SelectedStudentIDs, service.DriveSourceAdmin)
	if err != nil {
		if status, ok := statusForError(err); ok {
			return utils.SendError(c, status, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("company_id", companyID).Msg("failed to complete drive")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to complete drive")
	}

	h.record(c, "drive.completed", companyID, map[string]interface{}{
		"selected": len(history.SelectedStudents),
	})

	return utils.SendSuccess(c, "drive completed", history)
}

func (h *AdminCompanyHandler) cancel(c *fiber.Ctx) error {
	companyID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	company, err := h.drives.Cancel(c.UserContext(), companyID)
	if err != nil {
		if status, ok := statusForError(err); ok {
			return utils.SendError(c, status, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("company_id", companyID).Msg("failed to cancel drive")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to cancel drive")
	}

	h.record(c, "drive.cancelled", companyID, nil)

	return utils.SendSuccess(c, "drive cancelled", company)
}

func (h *AdminCompanyHandler) record(c *fiber.Ctx, action string, companyID uint, metadata map[string]interface{}) {
	if h.activities == nil {
		return
	}

	actor := activityActorFromContext(c)
	entry := service.ActivityEntry{
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		Action:     action,
		EntityType: "company",
		EntityID:   &companyID,
		Metadata:   metadata,
	}
	if _, err := h.activities.Record(c.UserContext(), entry); err != nil {
		requestLogger(h.logger, c).Warn().Err(err).Str("action", action).Msg("failed to record audit entry")
	}
}
