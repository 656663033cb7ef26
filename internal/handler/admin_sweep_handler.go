package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/smarthire/placement-api/internal/service"
	"github.com/smarthire/placement-api/internal/utils"
)

// SweepRunResponse reports the outcome of a manually triggered sweep pass.
type SweepRunResponse struct {
	Scanned int `json:"scanned"`
	Closed  int `json:"closed"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// AdminSweepHandler lets the placement cell trigger a deadline sweep on demand
// instead of waiting for the next scheduled pass.
type AdminSweepHandler struct {
	sweep  service.SweepService
	logger zerolog.Logger
}

// NewAdminSweepHandler creates a new handler instance.
func NewAdminSweepHandler(sweep service.SweepService, logger zerolog.Logger) *AdminSweepHandler {
	return &AdminSweepHandler{
		sweep:  sweep,
		logger: logger.With().Str("component", "admin_sweep_handler").Logger(),
	}
}

// Register attaches the sweep endpoint.
func (h *AdminSweepHandler) Register(router fiber.Router) {
	router.Post("/sweep/run", h.run)
}

func (h *AdminSweepHandler) run(c *fiber.Ctx) error {
	report := h.sweep.Run(c.UserContext())

	return utils.SendSuccess(c, "sweep pass finished", SweepRunResponse{
		Scanned: report.Scanned,
		Closed:  report.Closed,
		Skipped: report.Skipped,
		Failed:  report.Failed,
	})
}
