package dto

import (
	"time"

	"github.com/smarthire/placement-api/internal/models"
)

// CompanyCreateRequest is the admin payload for posting a drive. Criteria
// fields arrive flat, matching the admin form.
type CompanyCreateRequest struct {
	Name                 string    `json:"name" validate:"required,min=2"`
	Description          string    `json:"description"`
	JobRole              string    `json:"job_role" validate:"required"`
	Package              string    `json:"package"`
	Location             string    `json:"location"`
	Type                 string    `json:"type" validate:"omitempty,oneof='General' 'Dream' 'Super Dream'"`
	VisitDate            time.Time `json:"visit_date" validate:"required"`
	RegistrationDeadline time.Time `json:"registration_deadline" validate:"required"`
	MinCGPA              float64   `json:"min_cgpa"`
	MinLastSemGPA        float64   `json:"min_last_sem_gpa"`
	MaxArrears           int       `json:"max_arrears"`
	MinTenthPercentage   float64   `json:"tenth_min"`
	MinTwelfthPercentage float64   `json:"twelfth_min"`
	MinAge               int       `json:"min_age"`
	MaxAge               int       `json:"max_age"`
	AllowHigherStudies   *bool     `json:"allow_higher_studies"`
	RequireInternship    bool      `json:"require_internship"`
}

// Criteria assembles the eligibility criteria carried by the request,
// applying posting defaults for absent fields.
func (r CompanyCreateRequest) Criteria() models.EligibilityCriteria {
	criteria := models.EligibilityCriteria{
		MinCGPA:              r.MinCGPA,
		MinLastSemGPA:        r.MinLastSemGPA,
		MaxArrears:           r.MaxArrears,
		MinTenthPercentage:   r.MinTenthPercentage,
		MinTwelfthPercentage: r.MinTwelfthPercentage,
		MinAge:               r.MinAge,
		MaxAge:               r.MaxAge,
		AllowHigherStudies:   true,
		RequireInternship:    r.RequireInternship,
	}
	if r.MaxAge == 0 {
		criteria.MaxAge = 100
	}
	if r.AllowHigherStudies != nil {
		criteria.AllowHigherStudies = *r.AllowHigherStudies
	}
	return criteria
}

// CompanyUpdateRequest is a partial drive edit.
type CompanyUpdateRequest struct {
	Name                 *string    `json:"name" validate:"omitempty,min=2"`
	Description          *string    `json:"description"`
	JobRole              *string    `json:"job_role"`
	Package              *string    `json:"package"`
	Location             *string    `json:"location"`
	VisitDate            *time.Time `json:"visit_date"`
	RegistrationDeadline *time.Time `json:"registration_deadline"`
}

// CompanyResponse is the drive projection returned to both students and admins.
type CompanyResponse struct {
	ID                   uint                       `json:"id"`
	Name                 string                     `json:"name"`
	Description          string                     `json:"description,omitempty"`
	JobRole              string                     `json:"job_role"`
	Package              string                     `json:"package,omitempty"`
	Location             string                     `json:"location,omitempty"`
	Type                 string                     `json:"type"`
	Status               string                     `json:"status"`
	VisitDate            time.Time                  `json:"visit_date"`
	RegistrationDeadline time.Time                  `json:"registration_deadline"`
	Criteria             models.EligibilityCriteria `json:"eligibility_criteria"`
	CreatedAt            time.Time                  `json:"created_at"`
}

// NewCompanyResponse projects a company model.
func NewCompanyResponse(company models.Company) CompanyResponse {
	return CompanyResponse{
		ID:                   company.ID,
		Name:                 company.Name,
		Description:          company.Description,
		JobRole:              company.JobRole,
		Package:              company.Package,
		Location:             company.Location,
		Type:                 company.Type,
		Status:               company.Status,
		VisitDate:            company.VisitDate,
		RegistrationDeadline: company.RegistrationDeadline,
		Criteria:             company.Criteria,
		CreatedAt:            company.CreatedAt,
	}
}

// CompanyCreateResponse reports the posted drive plus how many students the
// posting pre-registered as eligible.
type CompanyCreateResponse struct {
	Company               CompanyResponse `json:"company"`
	EligibleStudentsCount int             `json:"eligible_students_count"`
}
