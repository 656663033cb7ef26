package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/smarthire/placement-api/internal/models"
)

// HistoryRepository reads completed-drive snapshots. The archive is
// append-only; rows are written inside the drive completion transaction and
// this interface deliberately exposes no mutation.
type HistoryRepository interface {
	List(ctx context.Context) ([]models.History, error)
	ListByCompany(ctx context.Context, companyID uint) ([]models.History, error)
}

type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository constructs a history repository.
func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) List(ctx context.Context) ([]models.History, error) {
	var records []models.History
	err := r.db.WithContext(ctx).
		Preload("Company").
		Order("completed_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *historyRepository) ListByCompany(ctx context.Context, companyID uint) ([]models.History, error) {
	var records []models.History
	err := r.db.WithContext(ctx).
		Preload("Company").
		Where("company_id = ?", companyID).
		Order("completed_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}
