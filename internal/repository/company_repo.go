package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/smarthire/placement-api/internal/models"
)

// ErrDriveNotActive signals that a status transition lost the compare-and-set
// because the drive is no longer Active.
var ErrDriveNotActive = errors.New("drive is not active")

// CompanyRepository provides access to drive postings.
type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, id uint) (models.Company, error)
	List(ctx context.Context, status string) ([]models.Company, error)
	ListOpen(ctx context.Context, now time.Time) ([]models.Company, error)
	ListOverdue(ctx context.Context, now time.Time) ([]models.Company, error)
	Update(ctx context.Context, id uint, updates map[string]interface{}) (models.Company, error)
	TransitionFromActive(ctx context.Context, id uint, target string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository constructs a company repository.
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *models.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *companyRepository) GetByID(ctx context.Context, id uint) (models.Company, error) {
	var company models.Company
	if err := r.db.WithContext(ctx).First(&company, id).Error; err != nil {
		return models.Company{}, err
	}

	return company, nil
}

func (r *companyRepository) List(ctx context.Context, status string) ([]models.Company, error) {
	query := r.db.WithContext(ctx).Model(&models.Company{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var companies []models.Company
	if err := query.Order("visit_date ASC").Find(&companies).Error; err != nil {
		return nil, err
	}

	return companies, nil
}

func (r *companyRepository) ListOpen(ctx context.Context, now time.Time) ([]models.Company, error) {
	var companies []models.Company
	err := r.db.WithContext(ctx).
		Where("status = ?", models.CompanyStatusActive).
		Where("registration_deadline > ?", now).
		Order("visit_date ASC").
		Find(&companies).Error
	if err != nil {
		return nil, err
	}

	return companies, nil
}

func (r *companyRepository) ListOverdue(ctx context.Context, now time.Time) ([]models.Company, error) {
	var companies []models.Company
	err := r.db.WithContext(ctx).
		Where("status = ?", models.CompanyStatusActive).
		Where("registration_deadline < ?", now).
		Order("registration_deadline ASC").
		Find(&companies).Error
	if err != nil {
		return nil, err
	}

	return companies, nil
}

func (r *companyRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (models.Company, error) {
	result := r.db.WithContext(ctx).Model(&models.Company{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return models.Company{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Company{}, gorm.ErrRecordNotFound
	}

	return r.GetByID(ctx, id)
}

// TransitionFromActive performs the atomic Active -> target compare-and-set.
// Exactly one caller can win it for a given drive; everyone else observes
// ErrDriveNotActive.
func (r *companyRepository) TransitionFromActive(ctx context.Context, id uint, target string) error {
	result := r.db.WithContext(ctx).Model(&models.Company{}).
		Where("id = ? AND status = ?", id, models.CompanyStatusActive).
		Update("status", target)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDriveNotActive
	}

	return nil
}

func (r *companyRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Company{}).
		Where("status = ?", status).
		Count(&total).Error
	return total, err
}
