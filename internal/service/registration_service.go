package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/smarthire/placement-api/internal/dto"
	"github.com/smarthire/placement-api/internal/models"
	"github.com/smarthire/placement-api/internal/observability"
	"github.com/smarthire/placement-api/internal/repository"
)

// RegistrationService handles students signing up for drives and admins
// reviewing the sign-ups.
//
// Registration is deliberately not gated on eligibility: a drive's criteria
// shape what the student sees, not what they may submit. Placement cells
// override criteria case by case, so the write path stays lenient.
type RegistrationService interface {
	Register(ctx context.Context, studentID, companyID uint) (dto.RegistrationResponse, error)
	ListByCompany(ctx context.Context, companyID uint, filter string) ([]dto.RegistrationResponse, error)
	ListByStudent(ctx context.Context, studentID uint) ([]dto.RegistrationResponse, error)
}

type registrationService struct {
	students      repository.StudentRepository
	companies     repository.CompanyRepository
	registrations repository.RegistrationRepository
	logger        zerolog.Logger
	now           func() time.Time
}

// NewRegistrationService constructs the registration service.
func NewRegistrationService(
	students repository.StudentRepository,
	companies repository.CompanyRepository,
	registrations repository.RegistrationRepository,
	logger zerolog.Logger,
) RegistrationService {
	return &registrationService{
		students:      students,
		companies:     companies,
		registrations: registrations,
		logger:        logger.With().Str("component", "registration_service").Logger(),
		now:           time.Now,
	}
}

func (s *registrationService) Register(ctx context.Context, studentID, companyID uint) (dto.RegistrationResponse, error) {
	ctx, span := otel.Tracer("placement-api").Start(ctx, "registration.register")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("student.id", int64(studentID)),
		attribute.Int64("company.id", int64(companyID)),
	)

	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RegistrationResponse{}, ErrStudentNotFound
		}
		return dto.RegistrationResponse{}, err
	}

	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RegistrationResponse{}, ErrCompanyNotFound
		}
		return dto.RegistrationResponse{}, err
	}

	now := s.now()
	if !company.IsOpen(now) {
		observability.Registrations().WithLabelValues("deadline_passed").Inc()
		return dto.RegistrationResponse{}, ErrDeadlinePassed
	}

	existing, err := s.registrations.GetByPair(ctx, studentID, companyID)
	switch {
	case err == nil:
		// Postings pre-register eligible students as Not Registered; an
		// explicit sign-up upgrades that row. Anything past that is a repeat.
		if existing.Status != models.RegistrationStatusNotRegistered {
			observability.Registrations().WithLabelValues("duplicate").Inc()
			return dto.RegistrationResponse{}, ErrDuplicateRegistration
		}

		updates := map[string]interface{}{
			"status":        models.RegistrationStatusRegistered,
			"registered_at": now,
		}
		if err := s.registrations.Update(ctx, existing.ID, updates); err != nil {
			return dto.RegistrationResponse{}, err
		}
		existing.Status = models.RegistrationStatusRegistered
		existing.RegisteredAt = &now

		observability.Registrations().WithLabelValues("registered").Inc()
		s.logger.Info().Uint("student_id", studentID).Uint("company_id", companyID).Msg("student registered for drive")
		return dto.NewRegistrationResponse(existing), nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		registration := models.Registration{
			StudentID:    studentID,
			CompanyID:    companyID,
			Status:       models.RegistrationStatusRegistered,
			RegisteredAt: &now,
		}
		if err := s.registrations.Create(ctx, &registration); err != nil {
			if errors.Is(err, repository.ErrDuplicatePair) {
				// Lost the race against a concurrent sign-up for the same pair.
				observability.Registrations().WithLabelValues("duplicate").Inc()
				return dto.RegistrationResponse{}, ErrDuplicateRegistration
			}
			return dto.RegistrationResponse{}, err
		}

		observability.Registrations().WithLabelValues("registered").Inc()
		s.logger.Info().Uint("student_id", studentID).Uint("company_id", companyID).Msg("student registered for drive")
		return dto.NewRegistrationResponse(registration), nil

	default:
		return dto.RegistrationResponse{}, err
	}
}

func (s *registrationService) ListByCompany(ctx context.Context, companyID uint, filter string) ([]dto.RegistrationResponse, error) {
	if _, err := s.companies.GetByID(ctx, companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	status := ""
	switch filter {
	case "", "all":
	case "registered":
		status = models.RegistrationStatusRegistered
	case "not-registered":
		status = models.RegistrationStatusNotRegistered
	case "selected":
		status = models.RegistrationStatusSelected
	default:
		status = filter
	}

	registrations, err := s.registrations.ListByCompany(ctx, companyID, status)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.RegistrationResponse, 0, len(registrations))
	for _, registration := range registrations {
		responses = append(responses, dto.NewRegistrationResponse(registration))
	}

	return responses, nil
}

func (s *registrationService) ListByStudent(ctx context.Context, studentID uint) ([]dto.RegistrationResponse, error) {
	registrations, err := s.registrations.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.RegistrationResponse, 0, len(registrations))
	for _, registration := range registrations {
		responses = append(responses, dto.NewRegistrationResponse(registration))
	}

	return responses, nil
}
