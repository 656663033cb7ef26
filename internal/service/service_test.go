package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/smarthire/placement-api/internal/events"
	"github.com/smarthire/placement-api/internal/models"
	"github.com/smarthire/placement-api/internal/repository"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// fakeStudentRepo is an in-memory StudentRepository.
type fakeStudentRepo struct {
	mu       sync.Mutex
	students map[uint]models.Student
	nextID   uint
	err      error
}

func newFakeStudentRepo(students ...models.Student) *fakeStudentRepo {
	repo := &fakeStudentRepo{students: map[uint]models.Student{}, nextID: 1}
	for _, student := range students {
		if student.ID == 0 {
			student.ID = repo.nextID
		}
		if student.ID >= repo.nextID {
			repo.nextID = student.ID + 1
		}
		repo.students[student.ID] = student
	}
	return repo
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id uint) (models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return models.Student{}, r.err
	}
	student, ok := r.students[id]
	if !ok {
		return models.Student{}, gorm.ErrRecordNotFound
	}
	return student, nil
}

func (r *fakeStudentRepo) List(_ context.Context, filter repository.StudentFilter) ([]models.Student, int64, error) {
	all, err := r.ListAll(context.Background())
	if err != nil {
		return nil, 0, err
	}
	return all, int64(len(all)), nil
}

func (r *fakeStudentRepo) ListAll(_ context.Context) ([]models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	students := make([]models.Student, 0, len(r.students))
	for _, student := range r.students {
		students = append(students, student)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students, nil
}

func (r *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	student.ID = r.nextID
	r.nextID++
	r.students[student.ID] = *student
	return nil
}

func (r *fakeStudentRepo) Update(_ context.Context, id uint, updates map[string]interface{}) (models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	student, ok := r.students[id]
	if !ok {
		return models.Student{}, gorm.ErrRecordNotFound
	}
	if value, ok := updates["cgpa"]; ok {
		student.CGPA = value.(float64)
	}
	if value, ok := updates["name"]; ok {
		student.Name = value.(string)
	}
	if value, ok := updates["arrears"]; ok {
		student.Arrears = value.(int)
	}
	if value, ok := updates["placed_status"]; ok {
		student.PlacedStatus = value.(string)
	}
	r.students[id] = student
	return student, nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.students[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.students, id)
	return nil
}

func (r *fakeStudentRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.students)), nil
}

func (r *fakeStudentRepo) CountWithArrears(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total int64
	for _, student := range r.students {
		if student.Arrears > 0 {
			total++
		}
	}
	return total, nil
}

func (r *fakeStudentRepo) AverageCGPA(_ context.Context) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum float64
	var count int
	for _, student := range r.students {
		if student.CGPA > 0 {
			sum += student.CGPA
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return sum / float64(count), nil
}

func (r *fakeStudentRepo) PlacementCounts(_ context.Context) (repository.PlacementBreakdown, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	breakdown := repository.PlacementBreakdown{}
	for _, student := range r.students {
		breakdown[models.NormalizePlacementStatus(student.PlacedStatus)]++
	}
	return breakdown, nil
}

// fakeCompanyRepo is an in-memory CompanyRepository.
type fakeCompanyRepo struct {
	mu        sync.Mutex
	companies map[uint]models.Company
	nextID    uint
	listErr   error
}

func newFakeCompanyRepo(companies ...models.Company) *fakeCompanyRepo {
	repo := &fakeCompanyRepo{companies: map[uint]models.Company{}, nextID: 1}
	for _, company := range companies {
		if company.ID == 0 {
			company.ID = repo.nextID
		}
		if company.ID >= repo.nextID {
			repo.nextID = company.ID + 1
		}
		repo.companies[company.ID] = company
	}
	return repo
}

func (r *fakeCompanyRepo) Create(_ context.Context, company *models.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	company.ID = r.nextID
	r.nextID++
	r.companies[company.ID] = *company
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id uint) (models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	company, ok := r.companies[id]
	if !ok {
		return models.Company{}, gorm.ErrRecordNotFound
	}
	return company, nil
}

func (r *fakeCompanyRepo) List(_ context.Context, status string) ([]models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var companies []models.Company
	for _, company := range r.companies {
		if status == "" || company.Status == status {
			companies = append(companies, company)
		}
	}
	sort.Slice(companies, func(i, j int) bool { return companies[i].ID < companies[j].ID })
	return companies, nil
}

func (r *fakeCompanyRepo) ListOpen(_ context.Context, now time.Time) ([]models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	var companies []models.Company
	for _, company := range r.companies {
		if company.IsOpen(now) {
			companies = append(companies, company)
		}
	}
	sort.Slice(companies, func(i, j int) bool { return companies[i].ID < companies[j].ID })
	return companies, nil
}

func (r *fakeCompanyRepo) ListOverdue(_ context.Context, now time.Time) ([]models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	var companies []models.Company
	for _, company := range r.companies {
		if company.Status == models.CompanyStatusActive && company.RegistrationDeadline.Before(now) {
			companies = append(companies, company)
		}
	}
	sort.Slice(companies, func(i, j int) bool { return companies[i].ID < companies[j].ID })
	return companies, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, id uint, updates map[string]interface{}) (models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	company, ok := r.companies[id]
	if !ok {
		return models.Company{}, gorm.ErrRecordNotFound
	}
	if value, ok := updates["name"]; ok {
		company.Name = value.(string)
	}
	if value, ok := updates["registration_deadline"]; ok {
		company.RegistrationDeadline = value.(time.Time)
	}
	r.companies[id] = company
	return company, nil
}

func (r *fakeCompanyRepo) TransitionFromActive(_ context.Context, id uint, target string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	company, ok := r.companies[id]
	if !ok || company.Status != models.CompanyStatusActive {
		return repository.ErrDriveNotActive
	}
	company.Status = target
	r.companies[id] = company
	return nil
}

func (r *fakeCompanyRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total int64
	for _, company := range r.companies {
		if company.Status == status {
			total++
		}
	}
	return total, nil
}

// fakeRegistrationRepo is an in-memory RegistrationRepository enforcing the
// pair uniqueness the real one gets from the database index.
type fakeRegistrationRepo struct {
	mu            sync.Mutex
	registrations []models.Registration
	nextID        uint
}

func newFakeRegistrationRepo(registrations ...models.Registration) *fakeRegistrationRepo {
	repo := &fakeRegistrationRepo{nextID: 1}
	for _, registration := range registrations {
		if registration.ID == 0 {
			registration.ID = repo.nextID
		}
		if registration.ID >= repo.nextID {
			repo.nextID = registration.ID + 1
		}
		repo.registrations = append(repo.registrations, registration)
	}
	return repo
}

func (r *fakeRegistrationRepo) Create(_ context.Context, registration *models.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.registrations {
		if existing.StudentID == registration.StudentID && existing.CompanyID == registration.CompanyID {
			return repository.ErrDuplicatePair
		}
	}
	registration.ID = r.nextID
	r.nextID++
	r.registrations = append(r.registrations, *registration)
	return nil
}

func (r *fakeRegistrationRepo) BulkCreate(_ context.Context, registrations []models.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, registration := range registrations {
		registration.ID = r.nextID
		r.nextID++
		r.registrations = append(r.registrations, registration)
	}
	return nil
}

func (r *fakeRegistrationRepo) GetByPair(_ context.Context, studentID, companyID uint) (models.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, registration := range r.registrations {
		if registration.StudentID == studentID && registration.CompanyID == companyID {
			return registration, nil
		}
	}
	return models.Registration{}, gorm.ErrRecordNotFound
}

func (r *fakeRegistrationRepo) Update(_ context.Context, id uint, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, registration := range r.registrations {
		if registration.ID != id {
			continue
		}
		if value, ok := updates["status"]; ok {
			registration.Status = value.(string)
		}
		if value, ok := updates["registered_at"]; ok {
			at := value.(time.Time)
			registration.RegisteredAt = &at
		}
		r.registrations[i] = registration
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeRegistrationRepo) ListByCompany(_ context.Context, companyID uint, status string) ([]models.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Registration
	for _, registration := range r.registrations {
		if registration.CompanyID == companyID && (status == "" || registration.Status == status) {
			out = append(out, registration)
		}
	}
	return out, nil
}

func (r *fakeRegistrationRepo) ListByStudent(_ context.Context, studentID uint) ([]models.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Registration
	for _, registration := range r.registrations {
		if registration.StudentID == studentID {
			out = append(out, registration)
		}
	}
	return out, nil
}

// fakeDriveRepo delegates completion to a configurable function.
type fakeDriveRepo struct {
	completeFn func(completion repository.DriveCompletion) (models.History, error)
	calls      []repository.DriveCompletion
	mu         sync.Mutex
}

func (r *fakeDriveRepo) Complete(_ context.Context, completion repository.DriveCompletion) (models.History, error) {
	r.mu.Lock()
	r.calls = append(r.calls, completion)
	r.mu.Unlock()
	return r.completeFn(completion)
}

// fakeHistoryRepo is an in-memory HistoryRepository.
type fakeHistoryRepo struct {
	records []models.History
}

func (r *fakeHistoryRepo) List(_ context.Context) ([]models.History, error) {
	return r.records, nil
}

func (r *fakeHistoryRepo) ListByCompany(_ context.Context, companyID uint) ([]models.History, error) {
	var out []models.History
	for _, record := range r.records {
		if record.CompanyID == companyID {
			out = append(out, record)
		}
	}
	return out, nil
}

// fakeNoticeRepo is an in-memory NoticeRepository.
type fakeNoticeRepo struct {
	mu      sync.Mutex
	notices []models.Notice
	nextID  uint
}

func (r *fakeNoticeRepo) Create(_ context.Context, notice *models.Notice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	notice.ID = r.nextID
	r.notices = append(r.notices, *notice)
	return nil
}

func (r *fakeNoticeRepo) List(_ context.Context, filter repository.NoticeFilter) ([]models.Notice, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Notice(nil), r.notices...), int64(len(r.notices)), nil
}

func (r *fakeNoticeRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, notice := range r.notices {
		if notice.ID == id {
			r.notices = append(r.notices[:i], r.notices[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// fakePublisher records published drive events.
type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

type publishedEvent struct {
	subject string
	event   events.DriveEvent
}

func (p *fakePublisher) PublishDrive(_ context.Context, subject string, event events.DriveEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{subject: subject, event: event})
	return p.err
}

// fakeActivityLogRepo is an in-memory ActivityLogRepository.
type fakeActivityLogRepo struct {
	mu      sync.Mutex
	entries []models.ActivityLog
	nextID  uint
}

func newFakeActivityLogRepo() *fakeActivityLogRepo {
	return &fakeActivityLogRepo{nextID: 1}
}

func (r *fakeActivityLogRepo) Create(_ context.Context, entry *models.ActivityLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry.ID = r.nextID
	r.nextID++
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeActivityLogRepo) List(_ context.Context, filter repository.ActivityLogFilter) ([]models.ActivityLog, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []models.ActivityLog
	for _, entry := range r.entries {
		if filter.ActorID != nil && entry.ActorID != *filter.ActorID {
			continue
		}
		if filter.Action != "" && entry.Action != filter.Action {
			continue
		}
		if filter.EntityType != "" && entry.EntityType != filter.EntityType {
			continue
		}
		matched = append(matched, entry)
	}
	total := int64(len(matched))
	if filter.PageSize > 0 {
		start := (filter.Page - 1) * filter.PageSize
		if start > len(matched) {
			start = len(matched)
		}
		end := start + filter.PageSize
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[start:end]
	}
	return matched, total, nil
}
