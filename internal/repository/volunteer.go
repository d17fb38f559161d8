package repository

import (
	"volunteer-hub-backend/internal/database/models"
	apperrors "volunteer-hub-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VolunteerRepository handles database operations for volunteers
type VolunteerRepository struct {
	db *gorm.DB
}

// NewVolunteerRepository creates a new volunteer repository
func NewVolunteerRepository(db *gorm.DB) *VolunteerRepository {
	return &VolunteerRepository{db: db}
}

// Create creates a new volunteer. The email unique index backs the
// registration uniqueness check.
func (r *VolunteerRepository) Create(volunteer *models.Volunteer) error {
	if err := r.db.Create(volunteer).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrVolunteerExists
		}
		return err
	}
	return nil
}

// GetByID retrieves a volunteer by ID
func (r *VolunteerRepository) GetByID(id uuid.UUID) (*models.Volunteer, error) {
	var volunteer models.Volunteer
	err := r.db.First(&volunteer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &volunteer, nil
}

// GetByEmail retrieves a volunteer by their email natural key
func (r *VolunteerRepository) GetByEmail(email string) (*models.Volunteer, error) {
	var volunteer models.Volunteer
	err := r.db.First(&volunteer, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &volunteer, nil
}

// GetAll retrieves all volunteers with pagination
func (r *VolunteerRepository) GetAll(limit, offset int) ([]models.Volunteer, int64, error) {
	var volunteers []models.Volunteer
	var total int64

	if err := r.db.Model(&models.Volunteer{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Model(&models.Volunteer{}).Limit(limit).Offset(offset).Find(&volunteers).Error; err != nil {
		return nil, 0, err
	}

	return volunteers, total, nil
}

// GetAllIDs returns the ids of every volunteer, for broadcast notifications
func (r *VolunteerRepository) GetAllIDs() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.Model(&models.Volunteer{}).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Update updates a volunteer
func (r *VolunteerRepository) Update(volunteer *models.Volunteer) error {
	return r.db.Save(volunteer).Error
}

// Delete deletes a volunteer
func (r *VolunteerRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Volunteer{}, "id = ?", id).Error
}
