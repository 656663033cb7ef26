package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/smarthire/placement-api/internal/dto"
	"github.com/smarthire/placement-api/internal/repository"
)

func newNoticeService(t *testing.T, withCache bool) (NoticeService, *fakeNoticeRepo) {
	t.Helper()
	repo := &fakeNoticeRepo{}
	if withCache {
		return NewNoticeService(repo, testCache(t), time.Minute, validator.New(), testLogger()), repo
	}
	return NewNoticeService(repo, nil, time.Minute, validator.New(), testLogger()), repo
}

func TestNoticeBodySanitizedOnRead(t *testing.T) {
	svc, _ := newNoticeService(t, false)

	created, err := svc.Create(context.Background(), 1, dto.NoticeCreateRequest{
		Title: "Drive schedule",
		Body:  `<p>Hall B at 9am</p><script>alert("x")</script>`,
	})
	require.NoError(t, err)
	require.NotContains(t, created.Body, "<script>")
	require.Contains(t, created.Body, "Hall B at 9am")

	list, err := svc.List(context.Background(), repository.NoticeFilter{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	require.NotContains(t, list.Items[0].Body, "script")
}

func TestNoticeListCached(t *testing.T) {
	svc, _ := newNoticeService(t, true)

	_, err := svc.Create(context.Background(), 1, dto.NoticeCreateRequest{Title: "First", Body: "one"})
	require.NoError(t, err)

	first, err := svc.List(context.Background(), repository.NoticeFilter{})
	require.NoError(t, err)
	require.False(t, first.CacheHit)

	second, err := svc.List(context.Background(), repository.NoticeFilter{})
	require.NoError(t, err)
	require.True(t, second.CacheHit)

	// Posting invalidates cached pages.
	_, err = svc.Create(context.Background(), 1, dto.NoticeCreateRequest{Title: "Second", Body: "two"})
	require.NoError(t, err)

	third, err := svc.List(context.Background(), repository.NoticeFilter{})
	require.NoError(t, err)
	require.False(t, third.CacheHit)
	require.Len(t, third.Items, 2)
}

func TestNoticeValidation(t *testing.T) {
	svc, _ := newNoticeService(t, false)

	_, err := svc.Create(context.Background(), 1, dto.NoticeCreateRequest{Title: "ab", Body: "short title"})
	require.Error(t, err)
}

func TestNoticeDelete(t *testing.T) {
	svc, repo := newNoticeService(t, false)

	created, err := svc.Create(context.Background(), 1, dto.NoticeCreateRequest{Title: "Old notice", Body: "gone soon"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	require.Empty(t, repo.notices)

	require.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrNoticeNotFound)
}
