package models

import "time"

// StudentSnapshot is the per-student entry frozen into a drive's history record.
type StudentSnapshot struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	RollNo string `json:"rollNo"`
}

// History is the immutable record produced when a drive completes. Rows are
// written exactly once and never updated; there is no mutation API on purpose.
type History struct {
	ID                 uint              `gorm:"primaryKey" json:"id"`
	CompanyID          uint              `gorm:"not null;index" json:"company_id"`
	EligibleStudents   []StudentSnapshot `gorm:"type:json;serializer:json" json:"eligible_students"`
	RegisteredStudents []StudentSnapshot `gorm:"type:json;serializer:json" json:"registered_students"`
	SelectedStudents   []StudentSnapshot `gorm:"type:json;serializer:json" json:"selected_students"`
	CompletedAt        time.Time         `gorm:"not null;index" json:"completed_at"`
	CreatedAt          time.Time         `json:"created_at"`
	Company            Company           `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"company"`
}
