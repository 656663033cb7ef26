package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smarthire/placement-api/internal/repository"
)

func TestRecordNormalizesAndPersists(t *testing.T) {
	repo := newFakeActivityLogRepo()
	svc := NewActivityService(repo, testLogger())

	entityID := uint(12)
	resp, err := svc.Record(context.Background(), ActivityEntry{
		ActorID:    1,
		ActorRole:  "Admin",
		Action:     "Drive.Completed",
		EntityType: "Company",
		EntityID:   &entityID,
		Metadata:   map[string]interface{}{"selected": 3},
	})
	require.NoError(t, err)
	require.NotZero(t, resp.ID)
	require.Equal(t, "admin", resp.ActorRole)
	require.Equal(t, "drive.completed", resp.Action)
	require.Equal(t, "company", resp.EntityType)
	require.Equal(t, entityID, *resp.EntityID)
}

func TestRecordRequiresAction(t *testing.T) {
	svc := NewActivityService(newFakeActivityLogRepo(), testLogger())

	_, err := svc.Record(context.Background(), ActivityEntry{
		ActorID:    1,
		ActorRole:  "admin",
		EntityType: "company",
	})
	require.Error(t, err)
}

func TestListFiltersByAction(t *testing.T) {
	repo := newFakeActivityLogRepo()
	svc := NewActivityService(repo, testLogger())

	for _, action := range []string{"drive.posted", "drive.completed", "drive.posted"} {
		_, err := svc.Record(context.Background(), ActivityEntry{
			ActorID:    1,
			ActorRole:  "admin",
			Action:     action,
			EntityType: "company",
		})
		require.NoError(t, err)
	}

	resp, err := svc.List(context.Background(), repository.ActivityLogFilter{Action: "drive.posted"})
	require.NoError(t, err)
	require.Equal(t, int64(2), resp.Pagination.TotalItems)
	require.Len(t, resp.Items, 2)
	for _, item := range resp.Items {
		require.Equal(t, "drive.posted", item.Action)
	}
}
