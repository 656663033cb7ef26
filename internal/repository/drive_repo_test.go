package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/smarthire/placement-api/internal/models"
)

func TestDriveRepositoryCompleteWritesSnapshotAtomically(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDriveRepository(db)

	company := models.Company{Name: "Initech", JobRole: "SDE", Type: models.CompanyTypeDream, VisitDate: time.Now(), RegistrationDeadline: time.Now().Add(-time.Hour), Status: models.CompanyStatusActive}
	require.NoError(t, db.Create(&company).Error)

	selectedStudent := models.Student{Name: "Asha Verma", Email: "asha@example.com", RollNo: "CS2101", PlacedStatus: models.StatusNotPlaced}
	registeredStudent := models.Student{Name: "Ravi Kumar", Email: "ravi@example.com", RollNo: "CS2102", PlacedStatus: models.StatusNotPlaced}
	pendingStudent := models.Student{Name: "Meena Iyer", Email: "meena@example.com", RollNo: "CS2103", PlacedStatus: models.StatusNotPlaced}
	require.NoError(t, db.Create(&selectedStudent).Error)
	require.NoError(t, db.Create(&registeredStudent).Error)
	require.NoError(t, db.Create(&pendingStudent).Error)

	now := time.Now()
	require.NoError(t, db.Create(&[]models.Registration{
		{StudentID: selectedStudent.ID, CompanyID: company.ID, Status: models.RegistrationStatusRegistered, RegisteredAt: &now},
		{StudentID: registeredStudent.ID, CompanyID: company.ID, Status: models.RegistrationStatusRegistered, RegisteredAt: &now},
		{StudentID: pendingStudent.ID, CompanyID: company.ID, Status: models.RegistrationStatusNotRegistered},
	}).Error)

	history, err := repo.Complete(context.Background(), DriveCompletion{
		CompanyID:       company.ID,
		SelectedIDs:     []uint{selectedStudent.ID},
		PlacementStatus: models.StatusDream,
		CompletedAt:     now,
	})
	require.NoError(t, err)
	require.Len(t, history.EligibleStudents, 3)
	require.Len(t, history.RegisteredStudents, 2)
	require.Len(t, history.SelectedStudents, 1)
	require.Equal(t, selectedStudent.RollNo, history.SelectedStudents[0].RollNo)

	var storedCompany models.Company
	require.NoError(t, db.First(&storedCompany, company.ID).Error)
	require.Equal(t, models.CompanyStatusCompleted, storedCompany.Status)

	var placed models.Student
	require.NoError(t, db.First(&placed, selectedStudent.ID).Error)
	require.Equal(t, models.StatusDream, placed.PlacedStatus)

	var untouched models.Student
	require.NoError(t, db.First(&untouched, registeredStudent.ID).Error)
	require.Equal(t, models.StatusNotPlaced, untouched.PlacedStatus)

	var selectedRow models.Registration
	require.NoError(t, db.Where("student_id = ? AND company_id = ?", selectedStudent.ID, company.ID).First(&selectedRow).Error)
	require.Equal(t, models.RegistrationStatusSelected, selectedRow.Status)
}

func TestDriveRepositoryCompleteLosesCASWhenNotActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDriveRepository(db)

	company := models.Company{Name: "Globex", JobRole: "QA", VisitDate: time.Now(), RegistrationDeadline: time.Now().Add(-time.Hour), Status: models.CompanyStatusActive}
	require.NoError(t, db.Create(&company).Error)

	_, err := repo.Complete(context.Background(), DriveCompletion{CompanyID: company.ID, CompletedAt: time.Now()})
	require.NoError(t, err)

	_, err = repo.Complete(context.Background(), DriveCompletion{CompanyID: company.ID, CompletedAt: time.Now()})
	require.ErrorIs(t, err, ErrDriveNotActive)

	var count int64
	require.NoError(t, db.Model(&models.History{}).Where("company_id = ?", company.ID).Count(&count).Error)
	require.Equal(t, int64(1), count, "completing twice must not write a second history row")
}

func TestDriveRepositoryCompleteRollsBackOnInvalidSelection(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDriveRepository(db)

	company := models.Company{Name: "Hooli", JobRole: "SRE", Type: models.CompanyTypeGeneral, VisitDate: time.Now(), RegistrationDeadline: time.Now().Add(-time.Hour), Status: models.CompanyStatusActive}
	require.NoError(t, db.Create(&company).Error)

	outsider := models.Student{Name: "Outsider", Email: "outsider@example.com", RollNo: "CS2199"}
	require.NoError(t, db.Create(&outsider).Error)

	_, err := repo.Complete(context.Background(), DriveCompletion{
		CompanyID:       company.ID,
		SelectedIDs:     []uint{outsider.ID},
		PlacementStatus: models.StatusGeneral,
		CompletedAt:     time.Now(),
	})
	require.ErrorIs(t, err, ErrSelectionNotRegistered)

	// The rollback must restore the drive to Active with no history row.
	var storedCompany models.Company
	require.NoError(t, db.First(&storedCompany, company.ID).Error)
	require.Equal(t, models.CompanyStatusActive, storedCompany.Status)

	var count int64
	require.NoError(t, db.Model(&models.History{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestHistoryRepositoryListsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	drives := NewDriveRepository(db)
	histories := NewHistoryRepository(db)

	now := time.Now()
	first := models.Company{Name: "First", JobRole: "SDE", VisitDate: now, RegistrationDeadline: now.Add(-2 * time.Hour), Status: models.CompanyStatusActive}
	second := models.Company{Name: "Second", JobRole: "SDE", VisitDate: now, RegistrationDeadline: now.Add(-time.Hour), Status: models.CompanyStatusActive}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	_, err := drives.Complete(context.Background(), DriveCompletion{CompanyID: first.ID, CompletedAt: now.Add(-time.Hour)})
	require.NoError(t, err)
	_, err = drives.Complete(context.Background(), DriveCompletion{CompanyID: second.ID, CompletedAt: now})
	require.NoError(t, err)

	records, err := histories.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "Second", records[0].Company.Name)
	require.Equal(t, "First", records[1].Company.Name)
}
