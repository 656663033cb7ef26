package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/smarthire/placement-api/internal/models"
)

// StudentFilter defines filters for listing students from the admin panel.
type StudentFilter struct {
	Search   string
	Batch    string
	Status   string
	Sort     string
	Page     int
	PageSize int
}

// PlacementBreakdown counts students per canonical placement status.
type PlacementBreakdown map[string]int64

// StudentRepository provides access to student records.
type StudentRepository interface {
	GetByID(ctx context.Context, id uint) (models.Student, error)
	List(ctx context.Context, filter StudentFilter) ([]models.Student, int64, error)
	ListAll(ctx context.Context) ([]models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) (models.Student, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	CountWithArrears(ctx context.Context) (int64, error)
	AverageCGPA(ctx context.Context) (float64, error)
	PlacementCounts(ctx context.Context) (PlacementBreakdown, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository constructs a student repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) GetByID(ctx context.Context, id uint) (models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).First(&student, id).Error; err != nil {
		return models.Student{}, err
	}

	return student, nil
}

func (r *studentRepository) List(ctx context.Context, filter StudentFilter) ([]models.Student, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Student{})

	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(roll_no) LIKE ? OR LOWER(email) LIKE ?", like, like, like)
	}

	if filter.Batch != "" {
		query = query.Where("batch = ?", filter.Batch)
	}

	if filter.Status != "" {
		query = query.Where("placed_status = ?", models.NormalizePlacementStatus(filter.Status))
	}

	countQuery := query.Session(&gorm.Session{})
	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sort := filter.Sort
	if sort == "" {
		sort = "name ASC"
	}
	query = query.Order(sort)

	if filter.PageSize > 0 {
		page := filter.Page
		if page <= 0 {
			page = 1
		}
		offset := (page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var students []models.Student
	if err := query.Find(&students).Error; err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

func (r *studentRepository) ListAll(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&students).Error; err != nil {
		return nil, err
	}

	return students, nil
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (models.Student, error) {
	result := r.db.WithContext(ctx).Model(&models.Student{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return models.Student{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Student{}, gorm.ErrRecordNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *studentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Student{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *studentRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Student{}).Count(&total).Error
	return total, err
}

func (r *studentRepository) CountWithArrears(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Student{}).Where("arrears > 0").Count(&total).Error
	return total, err
}

func (r *studentRepository) AverageCGPA(ctx context.Context) (float64, error) {
	var average *float64
	err := r.db.WithContext(ctx).Model(&models.Student{}).
		Where("cgpa > 0").
		Select("AVG(cgpa)").
		Scan(&average).Error
	if err != nil || average == nil {
		return 0, err
	}

	return *average, nil
}

func (r *studentRepository) PlacementCounts(ctx context.Context) (PlacementBreakdown, error) {
	type row struct {
		PlacedStatus string
		Total        int64
	}

	var rows []row
	err := r.db.WithContext(ctx).Model(&models.Student{}).
		Select("placed_status, COUNT(*) AS total").
		Group("placed_status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	breakdown := make(PlacementBreakdown, len(rows))
	for _, item := range rows {
		breakdown[models.NormalizePlacementStatus(item.PlacedStatus)] += item.Total
	}

	return breakdown, nil
}
