package models

import "time"

// Registration status progression: Not Registered -> Registered -> Selected
// or Rejected. Rows never regress.
const (
	RegistrationStatusNotRegistered = "Not Registered"
	RegistrationStatusRegistered    = "Registered"
	RegistrationStatusSelected      = "Selected"
	RegistrationStatusRejected      = "Rejected"
)

// Registration ties a student to a drive. The composite unique index makes
// concurrent duplicate inserts lose at the database, which is what the
// duplicate-registration guarantee rests on.
type Registration struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	StudentID    uint       `gorm:"not null;uniqueIndex:idx_registrations_pair" json:"student_id"`
	CompanyID    uint       `gorm:"not null;uniqueIndex:idx_registrations_pair" json:"company_id"`
	Status       string     `gorm:"size:16;default:'Not Registered'" json:"status"`
	RegisteredAt *time.Time `json:"registered_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Student      Student    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"student"`
	Company      Company    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"company"`
}
