package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/smarthire/placement-api/internal/config"
	"github.com/smarthire/placement-api/internal/handler"
	"github.com/smarthire/placement-api/internal/middleware"
	"github.com/smarthire/placement-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	StudentDashboardHandler *handler.StudentDashboardHandler
	StudentProfileHandler   *handler.StudentProfileHandler
	CompanyHandler          *handler.CompanyHandler
	RegistrationHandler     *handler.RegistrationHandler
	NoticeHandler           *handler.NoticeHandler
	AdminCompanyHandler     *handler.AdminCompanyHandler
	AdminStudentHandler     *handler.AdminStudentHandler
	AdminHistoryHandler     *handler.AdminHistoryHandler
	AdminNoticeHandler      *handler.AdminNoticeHandler
	AdminStatsHandler       *handler.AdminStatsHandler
	AdminActivityHandler    *handler.AdminActivityHandler
	AdminSweepHandler       *handler.AdminSweepHandler
	JWTMiddleware           fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	app.Get("/metrics", observability.MetricsHandler())

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	student := app.Group("/api/v1/student",
		jwtMiddleware,
		middleware.RequireRole(middleware.RoleStudent),
		middleware.RateLimit("student-api", 120, time.Minute),
	)
	if deps.StudentDashboardHandler != nil {
		deps.StudentDashboardHandler.Register(student)
	}
	if deps.StudentProfileHandler != nil {
		deps.StudentProfileHandler.Register(student)
	}
	if deps.CompanyHandler != nil {
		deps.CompanyHandler.Register(student)
	}
	if deps.RegistrationHandler != nil {
		deps.RegistrationHandler.Register(student)
	}
	if deps.NoticeHandler != nil {
		deps.NoticeHandler.Register(student)
	}

	admin := app.Group("/api/v1/admin", jwtMiddleware, middleware.RequireRole(middleware.RoleAdmin))
	if deps.AdminCompanyHandler != nil {
		deps.AdminCompanyHandler.Register(admin)
	}
	if deps.AdminStudentHandler != nil {
		deps.AdminStudentHandler.Register(admin)
	}
	if deps.AdminHistoryHandler != nil {
		deps.AdminHistoryHandler.Register(admin)
	}
	if deps.AdminNoticeHandler != nil {
		deps.AdminNoticeHandler.Register(admin)
	}
	if deps.AdminStatsHandler != nil {
		deps.AdminStatsHandler.Register(admin)
	}
	if deps.AdminActivityHandler != nil {
		deps.AdminActivityHandler.Register(admin)
	}
	if deps.AdminSweepHandler != nil {
		deps.AdminSweepHandler.Register(admin)
	}
}
