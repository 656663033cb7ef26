package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/smarthire/placement-api/internal/observability"
	"github.com/smarthire/placement-api/internal/repository"
)

// SweepReport summarises one sweep pass.
type SweepReport struct {
	Scanned int
	Closed  int
	Skipped int
	Failed  int
}

// SweepService periodically closes drives whose registration deadline has
// passed without an admin completing them. Each overdue drive is handled
// independently: one failure never aborts the pass.
type SweepService interface {
	Run(ctx context.Context) SweepReport
	Start(ctx context.Context, interval time.Duration)
}

type sweepService struct {
	companies repository.CompanyRepository
	drives    DriveService
	logger    zerolog.Logger
	now       func() time.Time
}

// NewSweepService constructs the deadline sweep.
func NewSweepService(companies repository.CompanyRepository, drives DriveService, logger zerolog.Logger) SweepService {
	return &sweepService{
		companies: companies,
		drives:    drives,
		logger:    logger.With().Str("component", "sweep_service").Logger(),
		now:       time.Now,
	}
}

func (s *sweepService) Run(ctx context.Context) SweepReport {
	observability.SweepRuns().Inc()

	overdue, err := s.companies.ListOverdue(ctx, s.now())
	if err != nil {
		s.logger.Error().Err(err).Msg("sweep failed to list overdue drives")
		observability.SweepFailures().Inc()
		return SweepReport{}
	}

	report := SweepReport{Scanned: len(overdue)}
	for _, company := range overdue {
		// Overdue drives close with an empty selection: nobody placed, the
		// snapshot still records who was eligible and who registered.
		_, err := s.drives.Complete(ctx, company.ID, nil, DriveSourceSweep)
		switch {
		case err == nil:
			report.Closed++
			observability.SweepDrivesClosed().Inc()
		case errors.Is(err, ErrAlreadyCompleted):
			// An admin beat us to it between the listing and the flip.
			report.Skipped++
		default:
			report.Failed++
			observability.SweepFailures().Inc()
			s.logger.Error().Err(err).Uint("company_id", company.ID).Msg("sweep failed to close drive")
		}
	}

	if report.Scanned > 0 {
		s.logger.Info().
			Int("scanned", report.Scanned).
			Int("closed", report.Closed).
			Int("skipped", report.Skipped).
			Int("failed", report.Failed).
			Msg("sweep pass finished")
	}

	return report
}

// Start runs sweep passes on a fixed interval until the context is cancelled.
// Intended to be launched in its own goroutine at startup.
func (s *sweepService) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", interval).Msg("deadline sweep started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("deadline sweep stopped")
			return
		case <-ticker.C:
			s.Run(ctx)
		}
	}
}
