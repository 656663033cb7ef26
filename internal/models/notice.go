package models

import "time"

// Notice is an admin-authored placement update shown to students. Body is
// stored raw and sanitized on the way out.
type Notice struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	IsPinned  bool      `gorm:"default:false" json:"is_pinned"`
	PostedBy  uint      `gorm:"not null" json:"posted_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
