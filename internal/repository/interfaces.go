package repository

import (
	"volunteer-hub-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// VolunteerRepositoryInterface defines the interface for volunteer repository operations
type VolunteerRepositoryInterface interface {
	Create(volunteer *models.Volunteer) error
	GetByID(id uuid.UUID) (*models.Volunteer, error)
	GetByEmail(email string) (*models.Volunteer, error)
	GetAll(limit, offset int) ([]models.Volunteer, int64, error)
	GetAllIDs() ([]uuid.UUID, error)
	Update(volunteer *models.Volunteer) error
	Delete(id uuid.UUID) error
}

// EventRepositoryInterface defines the interface for event repository operations
type EventRepositoryInterface interface {
	Create(event *models.Event) error
	GetByID(id uuid.UUID) (*models.Event, error)
	GetAll(limit, offset int) ([]models.Event, int64, error)
	Update(event *models.Event) error
	Delete(id uuid.UUID) error
}

// AssignmentRepositoryInterface defines the interface for the assignment ledger
type AssignmentRepositoryInterface interface {
	Create(assignment *models.Assignment) error
	GetByID(id uuid.UUID) (*models.Assignment, error)
	GetByVolunteerID(volunteerID uuid.UUID) ([]models.Assignment, error)
	GetByPair(volunteerID, eventID uuid.UUID) (*models.Assignment, error)
	UpdateStatus(id uuid.UUID, status models.AssignmentStatus) error
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	CreateBatch(notifications []models.Notification) error
	GetByVolunteerID(volunteerID uuid.UUID) ([]models.Notification, error)
	MarkRead(id uuid.UUID) error
	Delete(id uuid.UUID) error
}
