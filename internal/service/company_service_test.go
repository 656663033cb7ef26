package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/smarthire/placement-api/internal/dto"
	"github.com/smarthire/placement-api/internal/eligibility"
	"github.com/smarthire/placement-api/internal/events"
	"github.com/smarthire/placement-api/internal/models"
)

func newCompanyService(students *fakeStudentRepo, companies *fakeCompanyRepo, registrations *fakeRegistrationRepo, publisher *fakePublisher) *companyService {
	eligibilities := newEligibilityService(students, companies, registrations, nil)
	svc := NewCompanyService(companies, registrations, eligibilities, publisher, validator.New(), testLogger()).(*companyService)
	svc.now = fixedNow
	return svc
}

func driveRequest() dto.CompanyCreateRequest {
	return dto.CompanyCreateRequest{
		Name:                 "Initech",
		JobRole:              "Software Engineer",
		Type:                 models.CompanyTypeDream,
		VisitDate:            fixedNow().Add(96 * time.Hour),
		RegistrationDeadline: fixedNow().Add(72 * time.Hour),
		MinCGPA:              8.0,
	}
}

func TestCreateDrivePreRegistersEligibleStudents(t *testing.T) {
	students := newFakeStudentRepo(
		models.Student{ID: 1, Name: "Asha", CGPA: 8.5},
		models.Student{ID: 2, Name: "Ravi", CGPA: 6.0},
		models.Student{ID: 3, Name: "Meera", CGPA: 9.2},
	)
	companies := newFakeCompanyRepo()
	registrations := newFakeRegistrationRepo()
	publisher := &fakePublisher{}
	svc := newCompanyService(students, companies, registrations, publisher)

	response, err := svc.Create(context.Background(), driveRequest())
	require.NoError(t, err)
	require.Equal(t, models.CompanyStatusActive, response.Company.Status)
	require.Equal(t, 2, response.EligibleStudentsCount)

	rows, err := registrations.ListByCompany(context.Background(), response.Company.ID, "")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		require.Equal(t, models.RegistrationStatusNotRegistered, row.Status)
		require.Nil(t, row.RegisteredAt)
	}

	require.Len(t, publisher.events, 1)
	require.Equal(t, events.SubjectDrivePosted, publisher.events[0].subject)
}

func TestCreateDriveAppliesCriteriaDefaults(t *testing.T) {
	req := driveRequest()
	req.MinCGPA = 0
	svc := newCompanyService(newFakeStudentRepo(), newFakeCompanyRepo(), newFakeRegistrationRepo(), &fakePublisher{})

	response, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 100, response.Company.Criteria.MaxAge)
	require.True(t, response.Company.Criteria.AllowHigherStudies)
}

func TestCreateDriveRejectsInvalidCriteria(t *testing.T) {
	req := driveRequest()
	req.MinCGPA = 12
	svc := newCompanyService(newFakeStudentRepo(), newFakeCompanyRepo(), newFakeRegistrationRepo(), &fakePublisher{})

	_, err := svc.Create(context.Background(), req)
	require.ErrorIs(t, err, eligibility.ErrInvalidCriteria)
}

func TestCreateDriveRejectsMissingFields(t *testing.T) {
	req := driveRequest()
	req.Name = ""
	svc := newCompanyService(newFakeStudentRepo(), newFakeCompanyRepo(), newFakeRegistrationRepo(), &fakePublisher{})

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
}

func TestUpdateDrive(t *testing.T) {
	companies := newFakeCompanyRepo(activeCompany(1, models.DefaultCriteria()))
	svc := newCompanyService(newFakeStudentRepo(), companies, newFakeRegistrationRepo(), &fakePublisher{})

	name := "Globex"
	response, err := svc.Update(context.Background(), 1, dto.CompanyUpdateRequest{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Globex", response.Name)

	_, err = svc.Update(context.Background(), 9, dto.CompanyUpdateRequest{Name: &name})
	require.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestListOpenExcludesExpired(t *testing.T) {
	expired := activeCompany(1, models.DefaultCriteria())
	expired.RegistrationDeadline = fixedNow().Add(-time.Hour)
	companies := newFakeCompanyRepo(expired, activeCompany(2, models.DefaultCriteria()))
	svc := newCompanyService(newFakeStudentRepo(), companies, newFakeRegistrationRepo(), &fakePublisher{})

	open, err := svc.ListOpen(context.Background())
	require.NoError(t, err)
	require.Len(t, open, 1)
	require.Equal(t, uint(2), open[0].ID)
}
