package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/smarthire/placement-api/internal/service"
	"github.com/smarthire/placement-api/internal/utils"
)

// CompanyHandler exposes the student-facing drive listing.
type CompanyHandler struct {
	companies service.CompanyService
	logger    zerolog.Logger
}

// NewCompanyHandler creates a new handler instance.
func NewCompanyHandler(companies service.CompanyService, logger zerolog.Logger) *CompanyHandler {
	return &CompanyHandler{
		companies: companies,
		logger:    logger.With().Str("component", "company_handler").Logger(),
	}
}

// Register attaches the drive listing endpoints.
func (h *CompanyHandler) Register(router fiber.Router) {
	router.Get("/companies", h.listOpen)
	router.Get("/companies/:id", h.get)
}

func (h *CompanyHandler) listOpen(c *fiber.Ctx) error {
	companies, err := h.companies.ListOpen(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list open drives")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list open drives")
	}

	return utils.SendSuccess(c, "companies retrieved", companies)
}

func (h *CompanyHandler) get(c *fiber.Ctx) error {
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
