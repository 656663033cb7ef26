package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/smarthire/placement-api/internal/models"
)

func TestRegistrationRepositoryDuplicatePair(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRegistrationRepository(db)

	student := models.Student{Name: "Asha Verma", Email: "asha@example.com", RollNo: "CS2101"}
	company := models.Company{Name: "Initech", JobRole: "SDE", VisitDate: time.Now(), RegistrationDeadline: time.Now().Add(48 * time.Hour)}
	require.NoError(t, db.Create(&student).Error)
	require.NoError(t, db.Create(&company).Error)

	now := time.Now()
	first := models.Registration{StudentID: student.ID, CompanyID: company.ID, Status: models.RegistrationStatusRegistered, RegisteredAt: &now}
	require.NoError(t, repo.Create(context.Background(), &first))

	second := models.Registration{StudentID: student.ID, CompanyID: company.ID, Status: models.RegistrationStatusRegistered, RegisteredAt: &now}
	err := repo.Create(context.Background(), &second)
	require.ErrorIs(t, err, ErrDuplicatePair)

	var count int64
	require.NoError(t, db.Model(&models.Registration{}).
		Where("student_id = ? AND company_id = ?", student.ID, company.ID).
		Count(&count).Error)
	require.Equal(t, int64(1), count, "pair must keep exactly one row")
}

func TestRegistrationRepositoryListByCompanyFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRegistrationRepository(db)

	alice := models.Student{Name: "Alice", Email: "alice@example.com", RollNo: "CS2102"}
	bob := models.Student{Name: "Bob", Email: "bob@example.com", RollNo: "CS2103"}
	company := models.Company{Name: "Globex", JobRole: "Analyst", VisitDate: time.Now(), RegistrationDeadline: time.Now().Add(time.Hour)}
	require.NoError(t, db.Create(&alice).Error)
	require.NoError(t, db.Create(&bob).Error)
	require.NoError(t, db.Create(&company).Error)

	now := time.Now()
	require.NoError(t, repo.BulkCreate(context.Background(), []models.Registration{
		{StudentID: alice.ID, CompanyID: company.ID, Status: models.RegistrationStatusRegistered, RegisteredAt: &now},
		{StudentID: bob.ID, CompanyID: company.ID, Status: models.RegistrationStatusNotRegistered},
	}))

	all, err := repo.ListByCompany(context.Background(), company.ID, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.NotEmpty(t, all[0].Student.Name, "student must be preloaded")

	registered, err := repo.ListByCompany(context.Background(), company.ID, models.RegistrationStatusRegistered)
	require.NoError(t, err)
	require.Len(t, registered, 1)
	require.Equal(t, alice.ID, registered[0].StudentID)

	pending, err := repo.ListByCompany(context.Background(), company.ID, models.RegistrationStatusNotRegistered)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, bob.ID, pending[0].StudentID)
}
