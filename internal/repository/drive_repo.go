package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/smarthire/placement-api/internal/models"
)

// ErrSelectionNotRegistered signals that a selected student has no Registered
// row for the drive being completed.
var ErrSelectionNotRegistered = errors.New("selected student is not registered for drive")

// DriveCompletion describes one completion request.
type DriveCompletion struct {
	CompanyID       uint
	SelectedIDs     []uint
	PlacementStatus string
	CompletedAt     time.Time
}

// DriveRepository owns the atomic completion write. Everything a completion
// touches (status flip, snapshots, history row, placement updates) commits or
// rolls back as one unit, so concurrent readers never observe a half-completed
// drive.
type DriveRepository interface {
	Complete(ctx context.Context, completion DriveCompletion) (models.History, error)
}

type driveRepository struct {
	db *gorm.DB
}

// NewDriveRepository constructs a drive repository.
func NewDriveRepository(db *gorm.DB) DriveRepository {
	return &driveRepository{db: db}
}

func (r *driveRepository) Complete(ctx context.Context, completion DriveCompletion) (models.History, error) {
	var history models.History

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Compare-and-set first: only the caller that flips Active -> Completed
		// proceeds to write the snapshot. A concurrent sweep or admin call
		// observes zero affected rows and backs off.
		flip := tx.Model(&models.Company{}).
			Where("id = ? AND status = ?", completion.CompanyID, models.CompanyStatusActive).
			Update("status", models.CompanyStatusCompleted)
		if flip.Error != nil {
			return flip.Error
		}
		if flip.RowsAffected == 0 {
			return ErrDriveNotActive
		}

		var registrations []models.Registration
		if err := tx.Preload("Student").
			Where("company_id = ?", completion.CompanyID).
			Find(&registrations).Error; err != nil {
			return err
		}

		eligible := make([]models.StudentSnapshot, 0, len(registrations))
		registered := make([]models.StudentSnapshot, 0, len(registrations))
		registeredByID := make(map[uint]models.StudentSnapshot, len(registrations))

		for _, registration := range registrations {
			snapshot := models.StudentSnapshot{
				ID:     registration.Student.ID,
				Name:   registration.Student.Name,
				RollNo: registration.Student.RollNo,
			}
			eligible = append(eligible, snapshot)
			if registration.Status == models.RegistrationStatusRegistered {
				registered = append(registered, snapshot)
				registeredByID[snapshot.ID] = snapshot
			}
		}

		selected := make([]models.StudentSnapshot, 0, len(completion.SelectedIDs))
		for _, id := range completion.SelectedIDs {
			snapshot, ok := registeredByID[id]
			if !ok {
				return ErrSelectionNotRegistered
			}
			selected = append(selected, snapshot)
		}

		history = models.History{
			CompanyID:          completion.CompanyID,
			EligibleStudents:   eligible,
			RegisteredStudents: registered,
			SelectedStudents:   selected,
			CompletedAt:        completion.CompletedAt,
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		if len(completion.SelectedIDs) > 0 {
			if err := tx.Model(&models.Student{}).
				Where("id IN ?", completion.SelectedIDs).
				Update("placed_status", completion.PlacementStatus).Error; err != nil {
				return err
			}

			if err := tx.Model(&models.Registration{}).
				Where("company_id = ? AND student_id IN ?", completion.CompanyID, completion.SelectedIDs).
				Update("status", models.RegistrationStatusSelected).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return models.History{}, err
	}

	return history, nil
}
