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
	"github.com/smarthire/placement-api/internal/events"
	"github.com/smarthire/placement-api/internal/models"
	"github.com/smarthire/placement-api/internal/observability"
	"github.com/smarthire/placement-api/internal/repository"
)

// Completion sources, recorded on metrics and events so a drive closed by the
// sweep is distinguishable from one closed by an admin.
const (
	DriveSourceAdmin = "admin"
	DriveSourceSweep = "sweep"
)

// DriveService owns drive lifecycle transitions: completion with its frozen
// snapshot, and cancellation. Both ride the Active -> terminal compare-and-set,
// so a drive can only ever leave Active once.
type DriveService interface {
	Complete(ctx context.Context, companyID uint, selectedIDs []uint, source string) (dto.HistoryResponse, error)
	Cancel(ctx context.Context, companyID uint) (dto.CompanyResponse, error)
}

type driveService struct {
	companies repository.CompanyRepository
	drives    repository.DriveRepository
	publisher events.Publisher
	logger    zerolog.Logger
	now       func() time.Time
}

// NewDriveService constructs the drive lifecycle service. The publisher may be
// nil when no broker is configured.
func NewDriveService(
	companies repository.CompanyRepository,
	drives repository.DriveRepository,
	publisher events.Publisher,
	logger zerolog.Logger,
) DriveService {
	return &driveService{
		companies: companies,
		drives:    drives,
		publisher: publisher,
		logger:    logger.With().Str("component", "drive_service").Logger(),
		now:       time.Now,
	}
}

// placementStatusFor maps a drive tier to the placement status written onto
// selected students.
func placementStatusFor(companyType string) string {
	switch companyType {
	case models.CompanyTypeDream:
		return models.StatusDream
	case models.CompanyTypeSuperDream:
		return models.StatusSuperDream
	default:
		return models.StatusGeneral
	}
}

func (s *driveService) Complete(ctx context.Context, companyID uint, selectedIDs []uint, source string) (dto.HistoryResponse, error) {
	ctx, span := otel.Tracer("placement-api").Start(ctx, "drive.complete")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("company.id", int64(companyID)),
		attribute.Int("selected.count", len(selectedIDs)),
		attribute.String("source", source),
	)

	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.HistoryResponse{}, ErrCompanyNotFound
		}
		return dto.HistoryResponse{}, err
	}

	completion := repository.DriveCompletion{
		CompanyID:       companyID,
		SelectedIDs:     selectedIDs,
		PlacementStatus: placementStatusFor(company.Type),
		CompletedAt:     s.now(),
	}

	history, err := s.drives.Complete(ctx, completion)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDriveNotActive):
			return dto.HistoryResponse{}, ErrAlreadyCompleted
		case errors.Is(err, repository.ErrSelectionNotRegistered):
			return dto.HistoryResponse{}, ErrInvalidSelection
		}
		return dto.HistoryResponse{}, err
	}
	history.Company = company

	observability.DrivesCompleted().WithLabelValues(source).Inc()
	s.logger.Info().
		Uint("company_id", companyID).
		Int("selected", len(history.SelectedStudents)).
		Str("source", source).
		Msg("drive completed")

	s.publish(ctx, events.SubjectDriveCompleted, company, len(history.SelectedStudents), source)

	return dto.NewHistoryResponse(history), nil
}

func (s *driveService) Cancel(ctx context.Context, companyID uint) (dto.CompanyResponse, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CompanyResponse{}, ErrCompanyNotFound
		}
		return dto.CompanyResponse{}, err
	}

	if err := s.companies.TransitionFromActive(ctx, companyID, models.CompanyStatusCancelled); err != nil {
		if errors.Is(err, repository.ErrDriveNotActive) {
			return dto.CompanyResponse{}, ErrAlreadyCompleted
		}
		return dto.CompanyResponse{}, err
	}
	company.Status = models.CompanyStatusCancelled

	s.logger.Info().Uint("company_id", companyID).Msg("drive cancelled")
	s.publish(ctx, events.SubjectDriveCancelled, company, 0, DriveSourceAdmin)

	return dto.NewCompanyResponse(company), nil
}

func (s *driveService) publish(ctx context.Context, subject string, company models.Company, selected int, source string) {
	if s.publisher == nil {
		return
	}

	event := events.DriveEvent{
		CompanyID:     company.ID,
		CompanyName:   company.Name,
		CompanyType:   company.Type,
		SelectedCount: selected,
		Source:        source,
		OccurredAt:    s.now(),
	}
	// Best effort; the publisher already logged the failure.
	_ = s.publisher.PublishDrive(ctx, subject, event)
}
