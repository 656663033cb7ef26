package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/smarthire/placement-api/internal/dto"
	"github.com/smarthire/placement-api/internal/models"
	"github.com/smarthire/placement-api/internal/repository"
)

// NoticeService manages the placement notice feed. Bodies are stored as
// authored and sanitized on every read, so a policy change applies to old
// notices too.
type NoticeService interface {
	Create(ctx context.Context, postedBy uint, req dto.NoticeCreateRequest) (dto.NoticeResponse, error)
	List(ctx context.Context, filter repository.NoticeFilter) (dto.NoticeListResponse, error)
	Delete(ctx context.Context, id uint) error
}

type noticeService struct {
	notices   repository.NoticeRepository
	cache     *redis.Client
	cacheTTL  time.Duration
	sanitizer *bluemonday.Policy
	validate  *validator.Validate
	logger    zerolog.Logger
}

// NewNoticeService constructs the notice service. The cache client may be nil.
func NewNoticeService(
	notices repository.NoticeRepository,
	cache *redis.Client,
	cacheTTL time.Duration,
	validate *validator.Validate,
	logger zerolog.Logger,
) NoticeService {
	return &noticeService{
		notices:   notices,
		cache:     cache,
		cacheTTL:  cacheTTL,
		sanitizer: bluemonday.UGCPolicy(),
		validate:  validate,
		logger:    logger.With().Str("component", "notice_service").Logger(),
	}
}

func noticeCacheKey(filter repository.NoticeFilter) string {
	return fmt.Sprintf("notices:page:%d:%d", filter.Page, filter.PageSize)
}

func (s *noticeService) Create(ctx context.Context, postedBy uint, req dto.NoticeCreateRequest) (dto.NoticeResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.NoticeResponse{}, err
	}

	notice := models.Notice{
		Title:    req.Title,
		Body:     req.Body,
		IsPinned: req.IsPinned,
		PostedBy: postedBy,
	}
	if err := s.notices.Create(ctx, &notice); err != nil {
		return dto.NoticeResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info().Uint("notice_id", notice.ID).Bool("pinned", notice.IsPinned).Msg("notice posted")

	notice.Body = s.sanitizer.Sanitize(notice.Body)
	return dto.NewNoticeResponse(notice), nil
}

func (s *noticeService) List(ctx context.Context, filter repository.NoticeFilter) (dto.NoticeListResponse, error) {
	filter.Page = maxInt(filter.Page, 1)
	filter.PageSize = clampPageSize(filter.PageSize)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, noticeCacheKey(filter)).Result()
		if err == nil {
			var response dto.NoticeListResponse
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				response.CacheHit = true
				return response, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn().Err(err).Msg("notice cache read failed")
		}
	}

	notices, total, err := s.notices.List(ctx, filter)
	if err != nil {
		return dto.NoticeListResponse{}, err
	}

	items := make([]dto.NoticeResponse, 0, len(notices))
	for _, notice := range notices {
		notice.Body = s.sanitizer.Sanitize(notice.Body)
		items = append(items, dto.NewNoticeResponse(notice))
	}

	response := dto.NoticeListResponse{
		Items: items,
		Pagination: dto.PaginationMeta{
			Page:       filter.Page,
			PageSize:   filter.PageSize,
			TotalItems: total,
			TotalPages: totalPages(total, filter.PageSize),
		},
	}

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, noticeCacheKey(filter), payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("notice cache write failed")
			}
		}
	}

	return response, nil
}

func (s *noticeService) Delete(ctx context.Context, id uint) error {
	if err := s.notices.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoticeNotFound
		}
		return err
	}

	s.invalidate(ctx)
	s.logger.Info().Uint("notice_id", id).Msg("notice deleted")
	return nil
}

// invalidate drops cached notice pages. Keys follow one pattern, so a scan is
// enough; failures fall back to the TTL.
func (s *noticeService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}

	iter := s.cache.Scan(ctx, 0, "notices:page:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.cache.Del(ctx, iter.Val()).Err(); err != nil {
			s.logger.Warn().Err(err).Str("key", iter.Val()).Msg("notice cache invalidation failed")
		}
	}
	if err := iter.Err(); err != nil {
		s.logger.Warn().Err(err).Msg("notice cache scan failed")
	}
}
