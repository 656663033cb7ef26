package dto

import (
	"time"

	"github.com/smarthire/placement-api/internal/models"
)

// RegistrationResponse is a registration row with its student projection, as
// shown on the admin review screen.
type RegistrationResponse struct {
	ID           uint             `json:"id"`
	StudentID    uint             `json:"student_id"`
	CompanyID    uint             `json:"company_id"`
	Status       string           `json:"status"`
	RegisteredAt *time.Time       `json:"registered_at"`
	Student      *StudentSummary  `json:"student,omitempty"`
	Company      *CompanyResponse `json:"company,omitempty"`
}

// NewRegistrationResponse projects a registration row. Associations are only
// included when they were preloaded.
func NewRegistrationResponse(registration models.Registration) RegistrationResponse {
	response := RegistrationResponse{
		ID:           registration.ID,
		StudentID:    registration.StudentID,
		CompanyID:    registration.CompanyID,
		Status:       registration.Status,
		RegisteredAt: registration.RegisteredAt,
	}

	if registration.Student.ID != 0 {
		summary := NewStudentSummary(registration.Student)
		response.Student = &summary
	}
	if registration.Company.ID != 0 {
		company := NewCompanyResponse(registration.Company)
		response.Company = &company
	}

	return response
}
