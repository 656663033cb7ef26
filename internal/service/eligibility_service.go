package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/smarthire/placement-api/internal/dto"
	"github.com/smarthire/placement-api/internal/eligibility"
	"github.com/smarthire/placement-api/internal/models"
	"github.com/smarthire/placement-api/internal/observability"
	"github.com/smarthire/placement-api/internal/repository"
)

// EligibilityService answers every "which drives can this student sit for"
// question. All read paths route through the one engine so a student can
// never see different verdicts on different screens.
type EligibilityService interface {
	Dashboard(ctx context.Context, studentID uint) (dto.DashboardResponse, error)
	Inbox(ctx context.Context, studentID uint) (dto.InboxResponse, error)
	Report(ctx context.Context, studentID uint) (dto.EligibilityReportResponse, error)
	CheckCompany(ctx context.Context, studentID, companyID uint) (dto.CompanyEligibility, error)
	EligibleStudents(ctx context.Context, criteria models.EligibilityCriteria) ([]models.Student, error)
	InvalidateDashboard(ctx context.Context, studentID uint)
}

type eligibilityService struct {
	students      repository.StudentRepository
	companies     repository.CompanyRepository
	registrations repository.RegistrationRepository
	cache         *redis.Client
	cacheTTL      time.Duration
	logger        zerolog.Logger
	now           func() time.Time
}

// NewEligibilityService constructs the eligibility read service. The cache
// client may be nil, in which case dashboards are always computed fresh.
func NewEligibilityService(
	students repository.StudentRepository,
	companies repository.CompanyRepository,
	registrations repository.RegistrationRepository,
	cache *redis.Client,
	cacheTTL time.Duration,
	logger zerolog.Logger,
) EligibilityService {
	return &eligibilityService{
		students:      students,
		companies:     companies,
		registrations: registrations,
		cache:         cache,
		cacheTTL:      cacheTTL,
		logger:        logger.With().Str("component", "eligibility_service").Logger(),
		now:           time.Now,
	}
}

func dashboardCacheKey(studentID uint) string {
	return fmt.Sprintf("dashboard:student:%d", studentID)
}

func (s *eligibilityService) Dashboard(ctx context.Context, studentID uint) (dto.DashboardResponse, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, dashboardCacheKey(studentID)).Result()
		if err == nil {
			var response dto.DashboardResponse
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				observability.DashboardCache().WithLabelValues("hit").Inc()
				response.CacheHit = true
				return response, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn().Err(err).Uint("student_id", studentID).Msg("dashboard cache read failed")
		}
		observability.DashboardCache().WithLabelValues("miss").Inc()
	}

	response, err := s.buildDashboard(ctx, studentID)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, dashboardCacheKey(studentID), payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Uint("student_id", studentID).Msg("dashboard cache write failed")
			}
		}
	}

	return response, nil
}

func (s *eligibilityService) buildDashboard(ctx context.Context, studentID uint) (dto.DashboardResponse, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.DashboardResponse{}, ErrStudentNotFound
		}
		return dto.DashboardResponse{}, err
	}

	open, err := s.companies.ListOpen(ctx, s.now())
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	eligibleDrives := make([]dto.CompanyResponse, 0, len(open))
	for _, company := range open {
		if eligibility.Evaluate(student, company.Criteria).IsEligible {
			eligibleDrives = append(eligibleDrives, dto.NewCompanyResponse(company))
		}
	}

	return dto.DashboardResponse{
		Student:        dto.NewStudentSummary(student),
		EligibleDrives: eligibleDrives,
		TotalEligible:  len(eligibleDrives),
	}, nil
}

func (s *eligibilityService) Inbox(ctx context.Context, studentID uint) (dto.InboxResponse, error) {
	dashboard, err := s.Dashboard(ctx, studentID)
	if err != nil {
		return dto.InboxResponse{}, err
	}

	registrations, err := s.registrations.ListByStudent(ctx, studentID)
	if err != nil {
		return dto.InboxResponse{}, err
	}

	responses := make([]dto.RegistrationResponse, 0, len(registrations))
	for _, registration := range registrations {
		responses = append(responses, dto.NewRegistrationResponse(registration))
	}

	return dto.InboxResponse{
		EligibleDrives: dashboard.EligibleDrives,
		Registrations:  responses,
	}, nil
}

func (s *eligibilityService) Report(ctx context.Context, studentID uint) (dto.EligibilityReportResponse, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.EligibilityReportResponse{}, ErrStudentNotFound
		}
		return dto.EligibilityReportResponse{}, err
	}

	open, err := s.companies.ListOpen(ctx, s.now())
	if err != nil {
		return dto.EligibilityReportResponse{}, err
	}

	report := dto.EligibilityReportResponse{
		Student:     dto.NewStudentSummary(student),
		Eligible:    []dto.CompanyEligibility{},
		NotEligible: []dto.CompanyEligibility{},
	}

	for _, company := range open {
		verdict := eligibility.Evaluate(student, company.Criteria)
		entry := dto.NewCompanyEligibility(dto.NewCompanyResponse(company), verdict)
		if verdict.IsEligible {
			report.Eligible = append(report.Eligible, entry)
		} else {
			report.NotEligible = append(report.NotEligible, entry)
		}
	}

	report.Summary = dto.EligibilitySummary{
		TotalCompanies:   len(open),
		EligibleCount:    len(report.Eligible),
		NotEligibleCount: len(report.NotEligible),
	}
	if len(open) > 0 {
		report.Summary.EligibilityPercentage = len(report.Eligible) * 100 / len(open)
	}

	return report, nil
}

func (s *eligibilityService) CheckCompany(ctx context.Context, studentID, companyID uint) (dto.CompanyEligibility, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CompanyEligibility{}, ErrStudentNotFound
		}
		return dto.CompanyEligibility{}, err
	}

	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CompanyEligibility{}, ErrCompanyNotFound
		}
		return dto.CompanyEligibility{}, err
	}

	verdict := eligibility.Evaluate(student, company.Criteria)
	return dto.NewCompanyEligibility(dto.NewCompanyResponse(company), verdict), nil
}

// EligibleStudents filters the whole student body against one criteria set.
// Drive posting uses it to pre-register eligible students.
func (s *eligibilityService) EligibleStudents(ctx context.Context, criteria models.EligibilityCriteria) ([]models.Student, error) {
	students, err := s.students.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	eligible := make([]models.Student, 0, len(students))
	for _, student := range students {
		if eligibility.Evaluate(student, criteria).IsEligible {
			eligible = append(eligible, student)
		}
	}

	return eligible, nil
}

// InvalidateDashboard drops the cached dashboard for one student. Best effort:
// the TTL bounds staleness when the delete fails.
func (s *eligibilityService) InvalidateDashboard(ctx context.Context, studentID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, dashboardCacheKey(studentID)).Err(); err != nil {
		s.logger.Warn().Err(err).Uint("student_id", studentID).Msg("dashboard cache invalidation failed")
	}
}
