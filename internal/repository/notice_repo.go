package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/smarthire/placement-api/internal/models"
)

// NoticeFilter paginates the notice feed.
type NoticeFilter struct {
	Page     int
	PageSize int
}

// NoticeRepository provides access to placement notices.
type NoticeRepository interface {
	Create(ctx context.Context, notice *models.Notice) error
	List(ctx context.Context, filter NoticeFilter) ([]models.Notice, int64, error)
	Delete(ctx context.Context, id uint) error
}

type noticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository constructs a notice repository.
func NewNoticeRepository(db *gorm.DB) NoticeRepository {
	return &noticeRepository{db: db}
}

func (r *noticeRepository) Create(ctx context.Context, notice *models.Notice) error {
	return r.db.WithContext(ctx).Create(notice).Error
}

func (r *noticeRepository) List(ctx context.Context, filter NoticeFilter) ([]models.Notice, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Notice{})

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("is_pinned DESC, created_at DESC")
	if filter.PageSize > 0 {
		page := filter.Page
		if page <= 0 {
			page = 1
		}
		query = query.Limit(filter.PageSize).Offset((page - 1) * filter.PageSize)
	}

	var notices []models.Notice
	if err := query.Find(&notices).Error; err != nil {
		return nil, 0, err
	}

	return notices, total, nil
}

func (r *noticeRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Notice{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
