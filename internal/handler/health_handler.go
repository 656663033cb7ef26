package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/smarthire/placement-api/internal/config"
	"github.com/smarthire/placement-api/internal/utils"
)

// HealthResponse is the liveness payload. Uptime lets a dashboard spot
// restart loops without scraping metrics.
type HealthResponse struct {
	Status      string    `json:"status"`
	Service     string    `json:"service"`
	Environment string    `json:"environment"`
	Timestamp   time.Time `json:"timestamp"`
	Uptime      string    `json:"uptime"`
}

// HealthCheck reports service liveness.
func HealthCheck(cfg config.Config) fiber.Handler {
	started := time.Now()
	return func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, "service healthy", HealthResponse{
			Status:      "ok",
			Service:     cfg.AppName,
			Environment: cfg.AppEnv,
			Timestamp:   time.Now().UTC(),
			Uptime:      time.Since(started).Round(time.Second).String(),
		})
	}
}
