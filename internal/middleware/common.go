package middleware

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
)

// Config carries the knobs for the shared middleware pipeline.
type Config struct {
	Logger *zerolog.Logger
	// AllowOrigins overrides the CORS origin list; empty means allow all,
	// which suits the campus-internal deployments this API targets.
	AllowOrigins []string
}

// Register installs the pipeline every route runs through. Order matters:
// recover must wrap everything, the correlation ID must exist before the
// observability layer logs it.
func Register(app *fiber.App, cfg Config) {
	structured := zerolog.New(io.Discard)
	if cfg.Logger != nil {
		structured = *cfg.Logger
	}

	origins := "*"
	if len(cfg.AllowOrigins) > 0 {
		origins = strings.Join(cfg.AllowOrigins, ",")
	}

	app.Use(recover.New())
	app.Use(CorrelationID())
	app.Use(Observability(structured))
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Correlation-ID",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
}
