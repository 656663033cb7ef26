package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/smarthire/placement-api/internal/dto"
	"github.com/smarthire/placement-api/internal/handler"
	"github.com/smarthire/placement-api/internal/models"
	"github.com/smarthire/placement-api/internal/service"
)

type stubRegistrationService struct {
	err           error
	lastStudentID uint
	lastCompanyID uint
}

func (s *stubRegistrationService) Register(_ context.Context, studentID, companyID uint) (dto.RegistrationResponse, error) {
	s.lastStudentID = studentID
	s.lastCompanyID = companyID
	if s.err != nil {
		return dto.RegistrationResponse{}, s.err
	}
	return dto.RegistrationResponse{
		ID:        1,
		StudentID: studentID,
		CompanyID: companyID,
		Status:    models.RegistrationStatusRegistered,
	}, nil
}

func (s *stubRegistrationService) ListByCompany(context.Context, uint, string) ([]dto.RegistrationResponse, error) {
	return nil, nil
}

func (s *stubRegistrationService) ListByStudent(context.Context, uint) ([]dto.RegistrationResponse, error) {
	return []dto.RegistrationResponse{}, nil
}

func registrationApp(svc service.RegistrationService) *fiber.App {
	app := fiber.New()
	group := app.Group("/api/v1/student", func(c *fiber.Ctx) error {
		c.Locals("user_id", uint(7))
		return c.Next()
	})
	handler.NewRegistrationHandler(svc, zerolog.Nop()).Register(group)
	return app
}

func TestRegistrationHandler_Created(t *testing.T) {
	svc := &stubRegistrationService{}
	app := registrationApp(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/student/companies/12/register", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Equal(t, uint(7), svc.lastStudentID)
	require.Equal(t, uint(12), svc.lastCompanyID)
}

func TestRegistrationHandler_Duplicate(t *testing.T) {
	app := registrationApp(&stubRegistrationService{err: service.ErrDuplicateRegistration})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/student/companies/12/register", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestRegistrationHandler_DeadlinePassed(t *testing.T) {
	app := registrationApp(&stubRegistrationService{err: service.ErrDeadlinePassed})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/student/companies/12/register", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRegistrationHandler_CompanyNotFound(t *testing.T) {
	app := registrationApp(&stubRegistrationService{err: service.ErrCompanyNotFound})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/student/companies/12/register", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRegistrationHandler_InvalidCompanyID(t *testing.T) {
	app := registrationApp(&stubRegistrationService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/student/companies/0/register", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
