package repository

import (
	"volunteer-hub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create stores a single notification
func (r *NotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// CreateBatch stores a broadcast in one insert
func (r *NotificationRepository) CreateBatch(notifications []models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return r.db.Create(&notifications).Error
}

// GetByVolunteerID retrieves all notifications for a recipient, newest first
func (r *NotificationRepository) GetByVolunteerID(volunteerID uuid.UUID) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("volunteer_id = ?", volunteerID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead flags one notification as read
func (r *NotificationRepository) MarkRead(id uuid.UUID) error {
	result := r.db.Model(&models.Notification{}).Where("id = ?", id).Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete dismisses one notification
func (r *NotificationRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Notification{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
