package repository

import (
	"volunteer-hub-backend/internal/database/models"
	apperrors "volunteer-hub-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository handles the volunteer-to-event assignment ledger
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create appends one ledger entry. The composite unique index on
// (volunteer_id, event_id) makes this the atomicity boundary: of two
// concurrent inserts for the same pair exactly one succeeds, the other
// gets ErrAlreadyAssigned. Different pairs never block each other.
func (r *AssignmentRepository) Create(assignment *models.Assignment) error {
	if err := r.db.Create(assignment).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrAlreadyAssigned
		}
		return err
	}
	return nil
}

// GetByID retrieves one assignment by ID
func (r *AssignmentRepository) GetByID(id uuid.UUID) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByVolunteerID retrieves a volunteer's full history in insertion order
func (r *AssignmentRepository) GetByVolunteerID(volunteerID uuid.UUID) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Where("volunteer_id = ?", volunteerID).
		Order("created_at ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// GetByPair retrieves the assignment for one (volunteer, event) pair
func (r *AssignmentRepository) GetByPair(volunteerID, eventID uuid.UUID) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.First(&assignment, "volunteer_id = ? AND event_id = ?", volunteerID, eventID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// UpdateStatus changes the status of an existing ledger entry. The snapshot
// fields stay immutable; status is the only mutable column.
func (r *AssignmentRepository) UpdateStatus(id uuid.UUID, status models.AssignmentStatus) error {
	result := r.db.Model(&models.Assignment{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
