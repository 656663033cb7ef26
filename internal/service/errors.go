package service

import "errors"

// Caller-visible business errors. Handlers translate these to HTTP statuses;
// none of them indicate a fault, only an expected outcome.
var (
	// ErrStudentNotFound indicates the student record was not located.
	ErrStudentNotFound = errors.New("student not found")

	// ErrCompanyNotFound indicates the drive posting was not located.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrDuplicateRegistration indicates a registration row already exists for
	// the (student, company) pair, whatever its current status.
	ErrDuplicateRegistration = errors.New("already registered for this company")

	// ErrDeadlinePassed indicates the drive no longer accepts registrations.
	ErrDeadlinePassed = errors.New("registration deadline has passed")

	// ErrAlreadyCompleted indicates the drive left the Active state, so the
	// requested transition cannot happen again.
	ErrAlreadyCompleted = errors.New("drive is not active")

	// ErrInvalidSelection indicates the selected students are not a subset of
	// the drive's registered students.
	ErrInvalidSelection = errors.New("selected students must be registered for the drive")

	// ErrNoticeNotFound indicates the placement notice was not located.
	ErrNoticeNotFound = errors.New("notice not found")
)
