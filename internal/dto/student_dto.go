package dto

import (
	"time"

	"github.com/smarthire/placement-api/internal/models"
)

// StudentSummary is the short student projection embedded in listings.
type StudentSummary struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	RollNo       string  `json:"roll_no"`
	Email        string  `json:"email"`
	CGPA         float64 `json:"cgpa"`
	Arrears      int     `json:"arrears"`
	PlacedStatus string  `json:"placed_status"`
}

// NewStudentSummary projects a student model.
func NewStudentSummary(student models.Student) StudentSummary {
	return StudentSummary{
		ID:           student.ID,
		Name:         student.Name,
		RollNo:       student.RollNo,
		Email:        student.Email,
		CGPA:         student.CGPA,
		Arrears:      student.Arrears,
		PlacedStatus: models.NormalizePlacementStatus(student.PlacedStatus),
	}
}

// StudentProfileResponse is the full academic profile returned to the student.
type StudentProfileResponse struct {
	ID                uint                   `json:"id"`
	Name              string                 `json:"name"`
	Email             string                 `json:"email"`
	RollNo            string                 `json:"roll_no"`
	Batch             string                 `json:"batch"`
	Age               int                    `json:"age"`
	TenthPercentage   float64                `json:"tenth_percentage"`
	TwelfthPercentage float64                `json:"twelfth_percentage"`
	CGPA              float64                `json:"cgpa"`
	LastSemGPA        float64                `json:"last_sem_gpa"`
	CurrentSemester   int                    `json:"current_semester"`
	SemesterGPAs      map[string]interface{} `json:"semester_gpas"`
	Arrears           int                    `json:"arrears"`
	PlacedStatus      string                 `json:"placed_status"`
	HigherStudies     bool                   `json:"higher_studies"`
	Internship        bool                   `json:"internship"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

// NewStudentProfileResponse projects a student model into the profile payload.
func NewStudentProfileResponse(student models.Student) StudentProfileResponse {
	return StudentProfileResponse{
		ID:                student.ID,
		Name:              student.Name,
		Email:             student.Email,
		RollNo:            student.RollNo,
		Batch:             student.Batch,
		Age:               student.Age,
		TenthPercentage:   student.TenthPercentage,
		TwelfthPercentage: student.TwelfthPercentage,
		CGPA:              student.CGPA,
		LastSemGPA:        student.LastSemesterGPA(),
		CurrentSemester:   student.CurrentSemester,
		SemesterGPAs:      student.SemesterGPAs,
		Arrears:           student.Arrears,
		PlacedStatus:      models.NormalizePlacementStatus(student.PlacedStatus),
		HigherStudies:     student.HigherStudies,
		Internship:        student.Internship,
		UpdatedAt:         student.UpdatedAt,
	}
}

// StudentUpdateRequest carries a partial profile edit. Nil fields are left
// untouched.
type StudentUpdateRequest struct {
	Name              *string                `json:"name" validate:"omitempty,min=2"`
	Age               *int                   `json:"age" validate:"omitempty,gte=16,lte=35"`
	TenthPercentage   *float64               `json:"tenth_percentage" validate:"omitempty,gte=0,lte=100"`
	TwelfthPercentage *float64               `json:"twelfth_percentage" validate:"omitempty,gte=0,lte=100"`
	CGPA              *float64               `json:"cgpa" validate:"omitempty,gte=0,lte=10"`
	LastSemGPA        *float64               `json:"last_sem_gpa" validate:"omitempty,gte=0,lte=10"`
	CurrentSemester   *int                   `json:"current_semester" validate:"omitempty,gte=1,lte=8"`
	SemesterGPAs      map[string]interface{} `json:"semester_gpas"`
	Arrears           *int                   `json:"arrears" validate:"omitempty,gte=0"`
	HigherStudies     *bool                  `json:"higher_studies"`
	Internship        *bool                  `json:"internship"`
}

// AdminStudentCreateRequest is the admin payload for adding a student record.
type AdminStudentCreateRequest struct {
	Name              string                 `json:"name" validate:"required,min=2"`
	Email             string                 `json:"email" validate:"required,email"`
	RollNo            string                 `json:"roll_no" validate:"required,min=3"`
	Batch             string                 `json:"batch"`
	Age               int                    `json:"age" validate:"omitempty,gte=16,lte=35"`
	TenthPercentage   float64                `json:"tenth_percentage" validate:"gte=0,lte=100"`
	TwelfthPercentage float64                `json:"twelfth_percentage" validate:"gte=0,lte=100"`
	CGPA              float64                `json:"cgpa" validate:"gte=0,lte=10"`
	LastSemGPA        float64                `json:"last_sem_gpa" validate:"gte=0,lte=10"`
	CurrentSemester   int                    `json:"current_semester" validate:"omitempty,gte=1,lte=8"`
	SemesterGPAs      map[string]interface{} `json:"semester_gpas"`
	Arrears           int                    `json:"arrears" validate:"gte=0"`
	HigherStudies     bool                   `json:"higher_studies"`
	Internship        bool                   `json:"internship"`
}

// AdminStudentListResponse pages student records for the admin panel.
type AdminStudentListResponse struct {
	Items      []StudentProfileResponse `json:"items"`
	Pagination PaginationMeta           `json:"pagination"`
}

// DashboardResponse is what a student sees when they log in: their summary and
// the open drives whose criteria they satisfy.
type DashboardResponse struct {
	Student        StudentSummary    `json:"student"`
	EligibleDrives []CompanyResponse `json:"eligible_companies"`
	TotalEligible  int               `json:"total_eligible"`
	CacheHit       bool              `json:"cache_hit,omitempty"`
}

// InboxResponse is the inbox view: the same eligible-drive feed plus the
// student's registrations.
type InboxResponse struct {
	EligibleDrives []CompanyResponse      `json:"eligible_companies"`
	Registrations  []RegistrationResponse `json:"registrations"`
}
