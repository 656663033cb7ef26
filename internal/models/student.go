package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Placement status values a student can hold. Company selection during a
// drive moves a student from StatusNotPlaced to the drive's tier.
const (
	StatusNotPlaced     = "Not Placed"
	StatusGeneral       = "General"
	StatusDream         = "Dream"
	StatusSuperDream    = "Super Dream"
	StatusHigherStudies = "Higher Studies"
)

// Student represents a candidate profile evaluated against drive criteria.
type Student struct {
	ID                uint              `gorm:"primaryKey" json:"id"`
	Name              string            `gorm:"size:255;not null" json:"name"`
	Email             string            `gorm:"size:255;uniqueIndex;not null" json:"email"`
	RollNo            string            `gorm:"size:64;uniqueIndex;not null" json:"roll_no"`
	Batch             string            `gorm:"size:32" json:"batch"`
	Age               int               `json:"age"`
	TenthPercentage   float64           `json:"tenth_percentage"`
	TwelfthPercentage float64           `json:"twelfth_percentage"`
	CGPA              float64           `json:"cgpa"`
	LastSemGPA        float64           `json:"last_sem_gpa"`
	CurrentSemester   int               `json:"current_semester"`
	SemesterGPAs      datatypes.JSONMap `gorm:"column:semester_gpas;type:json" json:"semester_gpas"`
	Arrears           int               `gorm:"default:0" json:"arrears"`
	PlacedStatus      string            `gorm:"size:32;default:'Not Placed'" json:"placed_status"`
	HigherStudies     bool              `gorm:"default:false" json:"higher_studies"`
	Internship        bool              `gorm:"default:false" json:"internship"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// LastSemesterGPA resolves the GPA of the semester preceding the current one.
// The per-semester map wins over the legacy single column; an empty profile
// resolves to 0. An unset current semester is treated as 8, final-year being
// the overwhelmingly common case for placement candidates.
func (s Student) LastSemesterGPA() float64 {
	current := s.CurrentSemester
	if current == 0 {
		current = 8
	}
	if current > 1 && s.SemesterGPAs != nil {
		key := fmt.Sprintf("sem%d", current-1)
		if raw, ok := s.SemesterGPAs[key]; ok {
			if gpa, ok := toFloat(raw); ok && gpa > 0 {
				return gpa
			}
		}
	}
	return s.LastSemGPA
}

// IsPlaced reports whether the student already holds a placement outcome.
func (s Student) IsPlaced() bool {
	switch s.PlacedStatus {
	case StatusGeneral, StatusDream, StatusSuperDream:
		return true
	}
	return false
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case string:
		var parsed float64
		if _, err := fmt.Sscanf(strings.TrimSpace(v), "%f", &parsed); err == nil {
			return parsed, true
		}
	}
	return 0, false
}

// NormalizePlacementStatus maps external status spellings onto the canonical
// enum. Legacy records use prefixed forms such as "Placed - General".
func NormalizePlacementStatus(raw string) string {
	cleaned := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "Placed -"))
	switch strings.ToLower(cleaned) {
	case "", "not placed", "notplaced", "unplaced":
		return StatusNotPlaced
	case "general":
		return StatusGeneral
	case "dream":
		return StatusDream
	case "super dream", "superdream", "super-dream":
		return StatusSuperDream
	case "higher studies", "higherstudies", "higher-studies":
		return StatusHigherStudies
	default:
		return StatusNotPlaced
	}
}
