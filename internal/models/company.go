package models

import "time"

// Company drive status. Active is the only state that accepts registrations;
// Completed and Cancelled are terminal.
const (
	CompanyStatusActive    = "Active"
	CompanyStatusCompleted = "Completed"
	CompanyStatusCancelled = "Cancelled"
)

// Company tier. Doubles as the placement status written to selected students.
const (
	CompanyTypeGeneral    = "General"
	CompanyTypeDream      = "Dream"
	CompanyTypeSuperDream = "Super Dream"
)

// EligibilityCriteria is the threshold set a student profile is evaluated
// against. Zero-valued minimums do not constrain.
type EligibilityCriteria struct {
	MinCGPA              float64 `json:"minCgpa"`
	MinLastSemGPA        float64 `json:"minLastSemGpa"`
	MaxArrears           int     `json:"maxArrears"`
	MinTenthPercentage   float64 `json:"minTenthPercentage"`
	MinTwelfthPercentage float64 `json:"minTwelfthPercentage"`
	MinAge               int     `json:"minAge"`
	MaxAge               int     `json:"maxAge"`
	AllowHigherStudies   bool    `json:"allowHigherStudies"`
	RequireInternship    bool    `json:"requireInternship"`
}

// DefaultCriteria mirrors the defaults applied when an admin posts a drive
// without thresholds.
func DefaultCriteria() EligibilityCriteria {
	return EligibilityCriteria{
		MaxAge:             100,
		AllowHigherStudies: true,
	}
}

// Company represents a placement drive posting.
type Company struct {
	ID                   uint                `gorm:"primaryKey" json:"id"`
	Name                 string              `gorm:"size:255;not null" json:"name"`
	Description          string              `gorm:"type:text" json:"description"`
	JobRole              string              `gorm:"size:255;not null" json:"job_role"`
	Package              string              `gorm:"size:64" json:"package"`
	Location             string              `gorm:"size:255" json:"location"`
	VisitDate            time.Time           `gorm:"not null" json:"visit_date"`
	RegistrationDeadline time.Time           `gorm:"not null" json:"registration_deadline"`
	Criteria             EligibilityCriteria `gorm:"type:json;serializer:json" json:"eligibility_criteria"`
	Status               string              `gorm:"size:16;default:'Active'" json:"status"`
	Type                 string              `gorm:"size:16;default:'General'" json:"type"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
}

// IsOpen reports whether the drive still accepts registrations at the given time.
func (c Company) IsOpen(now time.Time) bool {
	return c.Status == CompanyStatusActive && now.Before(c.RegistrationDeadline)
}
