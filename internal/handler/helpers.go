package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/smarthire/placement-api/internal/eligibility"
	"github.com/smarthire/placement-api/internal/middleware"
	"github.com/smarthire/placement-api/internal/service"
)

func extractUserID(c *fiber.Ctx) (uint, error) {
	value := c.Locals("user_id")
	if value == nil {
		return 0, fmt.Errorf("missing user context")
	}

	switch v := value.(type) {
	case uint:
		return v, nil
	case int:
		if v < 0 {
			return 0, fmt.Errorf("invalid user context")
		}
		return uint(v), nil
	case string:
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid user context")
		}
		return uint(parsed), nil
	default:
		return 0, fmt.Errorf("invalid user context")
	}
}

func userRoleFromContext(c *fiber.Ctx) string {
	if v := c.Locals("user_role"); v != nil {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}

func activityActorFromContext(c *fiber.Ctx) service.ActivityActor {
	id, _ := extractUserID(c)
	return service.ActivityActor{
		ID:   id,
		Role: userRoleFromContext(c),
	}
}

func parseUintParam(c *fiber.Ctx, key string) (uint, error) {
	raw := strings.TrimSpace(c.Params(key))
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(parsed), nil
}

func parseQueryInt(c *fiber.Ctx, key string) (int, error) {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return parsed, nil
}

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}

// statusForError maps business errors onto HTTP statuses. Unknown errors fall
// through to 500 at the call site.
func statusForError(err error) (int, bool) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound),
		errors.Is(err, service.ErrCompanyNotFound),
		errors.Is(err, service.ErrNoticeNotFound):
		return fiber.StatusNotFound, true
	case errors.Is(err, service.ErrDuplicateRegistration),
		errors.Is(err, service.ErrAlreadyCompleted):
		return fiber.StatusConflict, true
	case errors.Is(err, service.ErrDeadlinePassed):
		return fiber.StatusBadRequest, true
	case errors.Is(err, service.ErrInvalidSelection):
		return fiber.StatusUnprocessableEntity, true
	case errors.Is(err, eligibility.ErrInvalidCriteria):
		return fiber.StatusBadRequest, true
	case isValidationError(err):
		return fiber.StatusBadRequest, true
	default:
		return 0, false
	}
}
