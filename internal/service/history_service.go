package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/smarthire/placement-api/internal/dto"
	"github.com/smarthire/placement-api/internal/repository"
)

// HistoryService reads the completed-drive archive, newest first.
type HistoryService interface {
	List(ctx context.Context) ([]dto.HistoryResponse, error)
	ListByCompany(ctx context.Context, companyID uint) ([]dto.HistoryResponse, error)
}

type historyService struct {
	histories repository.HistoryRepository
	logger    zerolog.Logger
}

// NewHistoryService constructs the history service.
func NewHistoryService(histories repository.HistoryRepository, logger zerolog.Logger) HistoryService {
	return &historyService{
		histories: histories,
		logger:    logger.With().Str("component", "history_service").Logger(),
	}
}

func (s *historyService) List(ctx context.Context) ([]dto.HistoryResponse, error) {
	records, err := s.histories.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.HistoryResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, dto.NewHistoryResponse(record))
	}

	return responses, nil
}

func (s *historyService) ListByCompany(ctx context.Context, companyID uint) ([]dto.HistoryResponse, error) {
	records, err := s.histories.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.HistoryResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, dto.NewHistoryResponse(record))
	}

	return responses, nil
}
