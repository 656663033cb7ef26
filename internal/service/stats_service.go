package service

import (
	"context"
	"errors"
	"math"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/smarthire/placement-api/internal/dto"
	"github.com/smarthire/placement-api/internal/models"
	"github.com/smarthire/placement-api/internal/repository"
)

// StatsService aggregates placement counters for students and the admin panel.
type StatsService interface {
	StudentStats(ctx context.Context, studentID uint) (dto.PlacementStatsResponse, error)
	AdminDashboard(ctx context.Context) (dto.AdminDashboardStatsResponse, error)
}

type statsService struct {
	students      repository.StudentRepository
	companies     repository.CompanyRepository
	registrations repository.RegistrationRepository
	logger        zerolog.Logger
}

// NewStatsService constructs the stats service.
func NewStatsService(
	students repository.StudentRepository,
	companies repository.CompanyRepository,
	registrations repository.RegistrationRepository,
	logger zerolog.Logger,
) StatsService {
	return &statsService{
		students:      students,
		companies:     companies,
		registrations: registrations,
		logger:        logger.With().Str("component", "stats_service").Logger(),
	}
}

func (s *statsService) StudentStats(ctx context.Context, studentID uint) (dto.PlacementStatsResponse, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PlacementStatsResponse{}, ErrStudentNotFound
		}
		return dto.PlacementStatsResponse{}, err
	}

	registrations, err := s.registrations.ListByStudent(ctx, studentID)
	if err != nil {
		return dto.PlacementStatsResponse{}, err
	}

	stats := dto.PlacementStatsResponse{
		PlacementStatus: models.NormalizePlacementStatus(student.PlacedStatus),
	}

	for _, registration := range registrations {
		// Pre-registered rows the student never acted on are not sign-ups.
		if registration.Status == models.RegistrationStatusNotRegistered {
			continue
		}
		stats.TotalRegistrations++

		switch registration.Status {
		case models.RegistrationStatusRegistered:
			stats.ByStatus.Registered++
		case models.RegistrationStatusSelected:
			stats.ByStatus.Selected++
		case models.RegistrationStatusRejected:
			stats.ByStatus.Rejected++
		}

		switch registration.Company.Type {
		case models.CompanyTypeDream:
			stats.ByCompanyType.Dream++
		case models.CompanyTypeSuperDream:
			stats.ByCompanyType.SuperDream++
		default:
			stats.ByCompanyType.General++
		}
	}

	return stats, nil
}

func (s *statsService) AdminDashboard(ctx context.Context) (dto.AdminDashboardStatsResponse, error) {
	total, err := s.students.Count(ctx)
	if err != nil {
		return dto.AdminDashboardStatsResponse{}, err
	}

	breakdown, err := s.students.PlacementCounts(ctx)
	if err != nil {
		return dto.AdminDashboardStatsResponse{}, err
	}

	withArrears, err := s.students.CountWithArrears(ctx)
	if err != nil {
		return dto.AdminDashboardStatsResponse{}, err
	}

	averageCGPA, err := s.students.AverageCGPA(ctx)
	if err != nil {
		return dto.AdminDashboardStatsResponse{}, err
	}

	activeCompanies, err := s.companies.CountByStatus(ctx, models.CompanyStatusActive)
	if err != nil {
		return dto.AdminDashboardStatsResponse{}, err
	}

	placed := breakdown[models.StatusGeneral] + breakdown[models.StatusDream] + breakdown[models.StatusSuperDream]

	stats := dto.AdminDashboardStatsResponse{
		TotalStudents:       total,
		PlacedStudents:      placed,
		ActiveCompanies:     activeCompanies,
		StudentsWithArrears: withArrears,
		AverageCGPA:         math.Round(averageCGPA*100) / 100,
		PlacementBreakdown:  breakdown,
	}
	if total > 0 {
		stats.PlacementPercentage = math.Round(float64(placed)/float64(total)*10000) / 100
	}

	return stats, nil
}
