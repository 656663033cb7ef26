package dto

import (
	"time"

	"github.com/smarthire/placement-api/internal/models"
)

// NoticeCreateRequest is the admin payload for posting a placement notice.
type NoticeCreateRequest struct {
	Title    string `json:"title" validate:"required,min=3,max=255"`
	Body     string `json:"body" validate:"required"`
	IsPinned bool   `json:"is_pinned"`
}

// NoticeResponse is a single notice with its sanitized body.
type NoticeResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsPinned  bool      `json:"is_pinned"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNoticeResponse projects a notice model. Body sanitization happens in the
// service, not here.
func NewNoticeResponse(notice models.Notice) NoticeResponse {
	return NoticeResponse{
		ID:        notice.ID,
		Title:     notice.Title,
		Body:      notice.Body,
		IsPinned:  notice.IsPinned,
		CreatedAt: notice.CreatedAt,
	}
}

// NoticeListResponse pages the notice feed.
type NoticeListResponse struct {
	Items      []NoticeResponse `json:"items"`
	Pagination PaginationMeta   `json:"pagination"`
	CacheHit   bool             `json:"cache_hit,omitempty"`
}
