package service

import (
	"volunteer-hub-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// VolunteerServiceInterface defines the interface for volunteer operations
type VolunteerServiceInterface interface {
	Register(req *RegisterRequest) (*VolunteerResponse, error)
	Login(req *LoginRequest) (*LoginResponse, error)
	GetProfile(id uuid.UUID) (*VolunteerResponse, error)
	UpdateProfile(id uuid.UUID, req *UpdateProfileRequest) (*VolunteerResponse, error)
	ListVolunteers(limit, offset int) ([]VolunteerResponse, int64, error)
}

// EventServiceInterface defines the interface for event operations
type EventServiceInterface interface {
	CreateEvent(req *CreateEventRequest) (*EventResponse, error)
	GetEventByID(id uuid.UUID) (*EventResponse, error)
	ListEvents(limit, offset int) ([]EventResponse, int64, error)
	DeleteEvent(id uuid.UUID) error
}

// MatchingServiceInterface defines the interface for the matching engine front
type MatchingServiceInterface interface {
	FindMatchingEvents(volunteerID uuid.UUID) ([]EventResponse, error)
}

// AssignmentServiceInterface defines the interface for the assignment ledger
type AssignmentServiceInterface interface {
	Assign(volunteerID, eventID uuid.UUID) (*AssignmentResponse, error)
	History(volunteerID uuid.UUID) ([]AssignmentResponse, error)
	UpdateStatus(id uuid.UUID, status models.AssignmentStatus) (*AssignmentResponse, error)
}

// NotificationServiceInterface defines the interface for notification operations
type NotificationServiceInterface interface {
	Send(req *SendNotificationRequest) (*NotificationResponse, error)
	ListForVolunteer(volunteerID uuid.UUID) ([]NotificationResponse, error)
	MarkRead(id uuid.UUID) error
	Dismiss(id uuid.UUID) error
}
