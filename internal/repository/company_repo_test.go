package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/smarthire/placement-api/internal/models"
)

func TestCompanyRepositoryTransitionFromActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyRepository(db)

	company := models.Company{
		Name:                 "Initech",
		JobRole:              "SDE",
		VisitDate:            time.Now(),
		RegistrationDeadline: time.Now().Add(-time.Hour),
		Status:               models.CompanyStatusActive,
	}
	require.NoError(t, db.Create(&company).Error)

	require.NoError(t, repo.TransitionFromActive(context.Background(), company.ID, models.CompanyStatusCancelled))

	// The second transition loses the compare-and-set.
	err := repo.TransitionFromActive(context.Background(), company.ID, models.CompanyStatusCompleted)
	require.ErrorIs(t, err, ErrDriveNotActive)

	stored, err := repo.GetByID(context.Background(), company.ID)
	require.NoError(t, err)
	require.Equal(t, models.CompanyStatusCancelled, stored.Status)
}

func TestCompanyRepositoryOpenAndOverdueListings(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyRepository(db)

	now := time.Now()
	open := models.Company{Name: "Open Drive", JobRole: "SDE", VisitDate: now.Add(72 * time.Hour), RegistrationDeadline: now.Add(24 * time.Hour), Status: models.CompanyStatusActive}
	overdue := models.Company{Name: "Overdue Drive", JobRole: "QA", VisitDate: now.Add(-24 * time.Hour), RegistrationDeadline: now.Add(-time.Hour), Status: models.CompanyStatusActive}
	closed := models.Company{Name: "Closed Drive", JobRole: "Analyst", VisitDate: now.Add(-96 * time.Hour), RegistrationDeadline: now.Add(-72 * time.Hour), Status: models.CompanyStatusCompleted}
	require.NoError(t, db.Create(&open).Error)
	require.NoError(t, db.Create(&overdue).Error)
	require.NoError(t, db.Create(&closed).Error)

	openDrives, err := repo.ListOpen(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, openDrives, 1)
	require.Equal(t, "Open Drive", openDrives[0].Name)

	overdueDrives, err := repo.ListOverdue(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, overdueDrives, 1)
	require.Equal(t, "Overdue Drive", overdueDrives[0].Name)
}

func TestCompanyRepositoryCriteriaRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyRepository(db)

	company := models.Company{
		Name:                 "Hooli",
		JobRole:              "Platform Engineer",
		VisitDate:            time.Now().Add(time.Hour),
		RegistrationDeadline: time.Now().Add(time.Hour),
		Status:               models.CompanyStatusActive,
		Criteria: models.EligibilityCriteria{
			MinCGPA:            7.5,
			MaxArrears:         1,
			MinAge:             18,
			MaxAge:             25,
			AllowHigherStudies: false,
			RequireInternship:  true,
		},
	}
	require.NoError(t, repo.Create(context.Background(), &company))

	stored, err := repo.GetByID(context.Background(), company.ID)
	require.NoError(t, err)
	require.Equal(t, company.Criteria, stored.Criteria)
}
