package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/smarthire/placement-api/internal/dto"
	"github.com/smarthire/placement-api/internal/eligibility"
	"github.com/smarthire/placement-api/internal/events"
	"github.com/smarthire/placement-api/internal/models"
	"github.com/smarthire/placement-api/internal/repository"
)

// CompanyService manages drive postings: creation with eligible-student
// pre-registration, listing and edits.
type CompanyService interface {
	Create(ctx context.Context, req dto.CompanyCreateRequest) (dto.CompanyCreateResponse, error)
	Get(ctx context.Context, id uint) (dto.CompanyResponse, error)
	List(ctx context.Context, status string) ([]dto.CompanyResponse, error)
	ListOpen(ctx context.Context) ([]dto.CompanyResponse, error)
	Update(ctx context.Context, id uint, req dto.CompanyUpdateRequest) (dto.CompanyResponse, error)
}

type companyService struct {
	companies     repository.CompanyRepository
	registrations repository.RegistrationRepository
	eligibilities EligibilityService
	publisher     events.Publisher
	validate      *validator.Validate
	logger        zerolog.Logger
	now           func() time.Time
}

// NewCompanyService constructs the company service.
func NewCompanyService(
	companies repository.CompanyRepository,
	registrations repository.RegistrationRepository,
	eligibilities EligibilityService,
	publisher events.Publisher,
	validate *validator.Validate,
	logger zerolog.Logger,
) CompanyService {
	return &companyService{
		companies:     companies,
		registrations: registrations,
		eligibilities: eligibilities,
		publisher:     publisher,
		validate:      validate,
		logger:        logger.With().Str("component", "company_service").Logger(),
		now:           time.Now,
	}
}

func (s *companyService) Create(ctx context.Context, req dto.CompanyCreateRequest) (dto.CompanyCreateResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.CompanyCreateResponse{}, err
	}

	criteria := req.Criteria()
	if err := eligibility.ValidateCriteria(criteria); err != nil {
		return dto.CompanyCreateResponse{}, err
	}

	companyType := req.Type
	if companyType == "" {
		companyType = models.CompanyTypeGeneral
	}

	company := models.Company{
		Name:                 req.Name,
		Description:          req.Description,
		JobRole:              req.JobRole,
		Package:              req.Package,
		Location:             req.Location,
		VisitDate:            req.VisitDate,
		RegistrationDeadline: req.RegistrationDeadline,
		Criteria:             criteria,
		Status:               models.CompanyStatusActive,
		Type:                 companyType,
	}
	if err := s.companies.Create(ctx, &company); err != nil {
		return dto.CompanyCreateResponse{}, err
	}

	// Seed a Not Registered row for every currently eligible student so the
	// admin review screen shows the full candidate pool from day one.
	eligibleStudents, err := s.eligibilities.EligibleStudents(ctx, criteria)
	if err != nil {
		s.logger.Error().Err(err).Uint("company_id", company.ID).Msg("failed to compute eligible students for new drive")
		eligibleStudents = nil
	}

	rows := make([]models.Registration, 0, len(eligibleStudents))
	for _, student := range eligibleStudents {
		rows = append(rows, models.Registration{
			StudentID: student.ID,
			CompanyID: company.ID,
			Status:    models.RegistrationStatusNotRegistered,
		})
	}
	if err := s.registrations.BulkCreate(ctx, rows); err != nil {
		s.logger.Error().Err(err).Uint("company_id", company.ID).Msg("failed to pre-register eligible students")
	}

	s.logger.Info().
		Uint("company_id", company.ID).
		Str("name", company.Name).
		Int("eligible_students", len(eligibleStudents)).
		Msg("drive posted")

	if s.publisher != nil {
		_ = s.publisher.PublishDrive(ctx, events.SubjectDrivePosted, events.DriveEvent{
			CompanyID:   company.ID,
			CompanyName: company.Name,
			CompanyType: company.Type,
			Source:      DriveSourceAdmin,
			OccurredAt:  s.now(),
		})
	}

	return dto.CompanyCreateResponse{
		Company:               dto.NewCompanyResponse(company),
		EligibleStudentsCount: len(eligibleStudents),
	}, nil
}

func (s *companyService) Get(ctx context.Context, id uint) (dto.CompanyResponse, error) {
	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CompanyResponse{}, ErrCompanyNotFound
		}
		return dto.CompanyResponse{}, err
	}

	return dto.NewCompanyResponse(company), nil
}

func (s *companyService) List(ctx context.Context, status string) ([]dto.CompanyResponse, error) {
	companies, err := s.companies.List(ctx, status)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CompanyResponse, 0, len(companies))
	for _, company := range companies {
		responses = append(responses, dto.NewCompanyResponse(company))
	}

	return responses, nil
}

func (s *companyService) ListOpen(ctx context.Context) ([]dto.CompanyResponse, error) {
	companies, err := s.companies.ListOpen(ctx, s.now())
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CompanyResponse, 0, len(companies))
	for _, company := range companies {
		responses = append(responses, dto.NewCompanyResponse(company))
	}

	return responses, nil
}

func (s *companyService) Update(ctx context.Context, id uint, req dto.CompanyUpdateRequest) (dto.CompanyResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.CompanyResponse{}, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.JobRole != nil {
		updates["job_role"] = *req.JobRole
	}
	if req.Package != nil {
		updates["package"] = *req.Package
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.VisitDate != nil {
		updates["visit_date"] = *req.VisitDate
	}
	if req.RegistrationDeadline != nil {
		updates["registration_deadline"] = *req.RegistrationDeadline
	}

	if len(updates) == 0 {
		return s.Get(ctx, id)
	}

	company, err := s.companies.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CompanyResponse{}, ErrCompanyNotFound
		}
		return dto.CompanyResponse{}, err
	}

	return dto.NewCompanyResponse(company), nil
}
