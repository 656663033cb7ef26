package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/smarthire/placement-api/internal/dto"
	"github.com/smarthire/placement-api/internal/models"
	"github.com/smarthire/placement-api/internal/repository"
)

// StudentService covers the student's own profile plus admin record keeping.
type StudentService interface {
	Profile(ctx context.Context, id uint) (dto.StudentProfileResponse, error)
	UpdateProfile(ctx context.Context, id uint, req dto.StudentUpdateRequest) (dto.StudentProfileResponse, error)
	AdminList(ctx context.Context, filter repository.StudentFilter) (dto.AdminStudentListResponse, error)
	AdminCreate(ctx context.Context, req dto.AdminStudentCreateRequest) (dto.StudentProfileResponse, error)
	AdminUpdate(ctx context.Context, id uint, req dto.StudentUpdateRequest) (dto.StudentProfileResponse, error)
	AdminDelete(ctx context.Context, id uint) error
}

type studentService struct {
	students      repository.StudentRepository
	eligibilities EligibilityService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(
	students repository.StudentRepository,
	eligibilities EligibilityService,
	validate *validator.Validate,
	logger zerolog.Logger,
) StudentService {
	return &studentService{
		students:      students,
		eligibilities: eligibilities,
		validate:      validate,
		logger:        logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) Profile(ctx context.Context, id uint) (dto.StudentProfileResponse, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentProfileResponse{}, ErrStudentNotFound
		}
		return dto.StudentProfileResponse{}, err
	}

	return dto.NewStudentProfileResponse(student), nil
}

func (s *studentService) UpdateProfile(ctx context.Context, id uint, req dto.StudentUpdateRequest) (dto.StudentProfileResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.StudentProfileResponse{}, err
	}

	updates := profileUpdates(req)
	if len(updates) == 0 {
		return s.Profile(ctx, id)
	}

	student, err := s.students.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentProfileResponse{}, ErrStudentNotFound
		}
		return dto.StudentProfileResponse{}, err
	}

	// A profile edit can flip eligibility verdicts, so the cached dashboard
	// must not outlive it.
	s.eligibilities.InvalidateDashboard(ctx, id)

	return dto.NewStudentProfileResponse(student), nil
}

func (s *studentService) AdminList(ctx context.Context, filter repository.StudentFilter) (dto.AdminStudentListResponse, error) {
	filter.Page = maxInt(filter.Page, 1)
	filter.PageSize = clampPageSize(filter.PageSize)

	students, total, err := s.students.List(ctx, filter)
	if err != nil {
		return dto.AdminStudentListResponse{}, err
	}

	items := make([]dto.StudentProfileResponse, 0, len(students))
	for _, student := range students {
		items = append(items, dto.NewStudentProfileResponse(student))
	}

	return dto.AdminStudentListResponse{
		Items: items,
		Pagination: dto.PaginationMeta{
			Page:       filter.Page,
			PageSize:   filter.PageSize,
			TotalItems: total,
			TotalPages: totalPages(total, filter.PageSize),
		},
	}, nil
}

func (s *studentService) AdminCreate(ctx context.Context, req dto.AdminStudentCreateRequest) (dto.StudentProfileResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.StudentProfileResponse{}, err
	}

	student := models.Student{
		Name:              req.Name,
		Email:             req.Email,
		RollNo:            req.RollNo,
		Batch:             req.Batch,
		Age:               req.Age,
		TenthPercentage:   req.TenthPercentage,
		TwelfthPercentage: req.TwelfthPercentage,
		CGPA:              req.CGPA,
		LastSemGPA:        req.LastSemGPA,
		CurrentSemester:   req.CurrentSemester,
		SemesterGPAs:      datatypes.JSONMap(req.SemesterGPAs),
		Arrears:           req.Arrears,
		PlacedStatus:      models.StatusNotPlaced,
		HigherStudies:     req.HigherStudies,
		Internship:        req.Internship,
	}
	if err := s.students.Create(ctx, &student); err != nil {
		return dto.StudentProfileResponse{}, err
	}

	s.logger.Info().Uint("student_id", student.ID).Str("roll_no", student.RollNo).Msg("student record created")
	return dto.NewStudentProfileResponse(student), nil
}

func (s *studentService) AdminUpdate(ctx context.Context, id uint, req dto.StudentUpdateRequest) (dto.StudentProfileResponse, error) {
	return s.UpdateProfile(ctx, id, req)
}

func (s *studentService) AdminDelete(ctx context.Context, id uint) error {
	if err := s.students.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}

	s.eligibilities.InvalidateDashboard(ctx, id)
	s.logger.Info().Uint("student_id", id).Msg("student record deleted")
	return nil
}

func profileUpdates(req dto.StudentUpdateRequest) map[string]interface{} {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Age != nil {
		updates["age"] = *req.Age
	}
	if req.TenthPercentage != nil {
		updates["tenth_percentage"] = *req.TenthPercentage
	}
	if req.TwelfthPercentage != nil {
		updates["twelfth_percentage"] = *req.TwelfthPercentage
	}
	if req.CGPA != nil {
		updates["cgpa"] = *req.CGPA
	}
	if req.LastSemGPA != nil {
		updates["last_sem_gpa"] = *req.LastSemGPA
	}
	if req.CurrentSemester != nil {
		updates["current_semester"] = *req.CurrentSemester
	}
	if req.SemesterGPAs != nil {
		updates["semester_gpas"] = datatypes.JSONMap(req.SemesterGPAs)
	}
	if req.Arrears != nil {
		updates["arrears"] = *req.Arrears
	}
	if req.HigherStudies != nil {
		updates["higher_studies"] = *req.HigherStudies
	}
	if req.Internship != nil {
		updates["internship"] = *req.Internship
	}
	return updates
}
