package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/smarthire/placement-api/internal/models"
)

// ErrDuplicatePair signals that a registration row for the (student, company)
// pair already exists. The unique index decides the winner under concurrency.
var ErrDuplicatePair = errors.New("registration already exists for pair")

// RegistrationRepository provides access to registration rows.
type RegistrationRepository interface {
	Create(ctx context.Context, registration *models.Registration) error
	BulkCreate(ctx context.Context, registrations []models.Registration) error
	GetByPair(ctx context.Context, studentID, companyID uint) (models.Registration, error)
	Update(ctx context.Context, id uint, updates map[string]interface{}) error
	ListByCompany(ctx context.Context, companyID uint, status string) ([]models.Registration, error)
	ListByStudent(ctx context.Context, studentID uint) ([]models.Registration, error)
}

type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository constructs a registration repository.
func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(ctx context.Context, registration *models.Registration) error {
	err := r.db.WithContext(ctx).Create(registration).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicatePair
	}

	return err
}

func (r *registrationRepository) BulkCreate(ctx context.Context, registrations []models.Registration) error {
	if len(registrations) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&registrations).Error
}

func (r *registrationRepository) GetByPair(ctx context.Context, studentID, companyID uint) (models.Registration, error) {
	var registration models.Registration
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND company_id = ?", studentID, companyID).
		First(&registration).Error
	if err != nil {
		return models.Registration{}, err
	}

	return registration, nil
}

func (r *registrationRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Registration{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *registrationRepository) ListByCompany(ctx context.Context, companyID uint, status string) ([]models.Registration, error) {
	query := r.db.WithContext(ctx).
		Preload("Student").
		Where("company_id = ?", companyID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var registrations []models.Registration
	if err := query.Order("registered_at DESC").Find(&registrations).Error; err != nil {
		return nil, err
	}

	return registrations, nil
}

func (r *registrationRepository) ListByStudent(ctx context.Context, studentID uint) ([]models.Registration, error) {
	var registrations []models.Registration
	err := r.db.WithContext(ctx).
		Preload("Company").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&registrations).Error
	if err != nil {
		return nil, err
	}

	return registrations, nil
}
