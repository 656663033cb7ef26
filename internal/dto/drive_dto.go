package dto

import (
	"time"

	"github.com/smarthire/placement-api/internal/models"
)

// CompleteDriveRequest names the students the admin selected. An empty list
// completes the drive with no one placed, which is also what the sweep sends.
type CompleteDriveRequest struct {
	SelectedStudentIDs []uint `json:"selected_student_ids"`
}

// HistoryResponse is one completed-drive snapshot.
type HistoryResponse struct {
	ID                 uint                     `json:"id"`
	CompanyID          uint                     `json:"company_id"`
	CompanyName        string                   `json:"company_name,omitempty"`
	JobRole            string                   `json:"job_role,omitempty"`
	CompanyType        string                   `json:"company_type,omitempty"`
	EligibleStudents   []models.StudentSnapshot `json:"eligible_students"`
	RegisteredStudents []models.StudentSnapshot `json:"registered_students"`
	SelectedStudents   []models.StudentSnapshot `json:"selected_students"`
	CompletedAt        time.Time                `json:"completed_at"`
}

// NewHistoryResponse projects a history record.
func NewHistoryResponse(history models.History) HistoryResponse {
	return HistoryResponse{
		ID:                 history.ID,
		CompanyID:          history.CompanyID,
		CompanyName:        history.Company.Name,
		JobRole:            history.Company.JobRole,
		CompanyType:        history.Company.Type,
		EligibleStudents:   history.EligibleStudents,
		RegisteredStudents: history.RegisteredStudents,
		SelectedStudents:   history.SelectedStudents,
		CompletedAt:        history.CompletedAt,
	}
}
