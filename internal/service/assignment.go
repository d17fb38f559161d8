package service

import (
	"errors"
	"fmt"

	"volunteer-hub-backend/internal/database/models"
	apperrors "volunteer-hub-backend/internal/errors"
	"volunteer-hub-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AssignmentService handles the volunteer-to-event assignment lifecycle
type AssignmentService struct {
	repo          repository.AssignmentRepositoryInterface
	volunteerRepo repository.VolunteerRepositoryInterface
	eventRepo     repository.EventRepositoryInterface
	notifications repository.NotificationRepositoryInterface
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(
	repo repository.AssignmentRepositoryInterface,
	volunteerRepo repository.VolunteerRepositoryInterface,
	eventRepo repository.EventRepositoryInterface,
	notifications repository.NotificationRepositoryInterface,
) *AssignmentService {
	return &AssignmentService{
		repo:          repo,
		volunteerRepo: volunteerRepo,
		eventRepo:     eventRepo,
		notifications: notifications,
	}
}

// AssignmentResponse represents one volunteer history entry
type AssignmentResponse struct {
	ID               uuid.UUID `json:"id"`
	VolunteerID      uuid.UUID `json:"volunteer_id"`
	EventID          uuid.UUID `json:"event_id"`
	EventName        string    `json:"event_name"`
	EventDescription string    `json:"event_description"`
	Location         string    `json:"location"`
	RequiredSkills   []string  `json:"required_skills"`
	Urgency          string    `json:"urgency"`
	Dates            []string  `json:"dates"`
	Status           string    `json:"status"`
	CreatedAt        string    `json:"created_at"`
}

// Assign records one assignment for a (volunteer, event) pair. The entry is
// a denormalized snapshot of the event at assignment time. Uniqueness rides
// on the ledger's composite constraint, so the insert is the atomic
// check-and-act; a repeat attempt gets ErrAlreadyAssigned. On success one
// notification is written for the volunteer.
func (s *AssignmentService) Assign(volunteerID, eventID uuid.UUID) (*AssignmentResponse, error) {
	volunteer, err := s.volunteerRepo.GetByID(volunteerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVolunteerNotFound
		}
		return nil, apperrors.NewDependencyError("volunteer store", err)
	}

	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, apperrors.NewDependencyError("event store", err)
	}

	assignment := &models.Assignment{
		VolunteerID:      volunteer.ID,
		EventID:          event.ID,
		EventName:        event.Name,
		EventDescription: event.Description,
		Location:         event.Location,
		RequiredSkills:   event.RequiredSkills,
		Urgency:          event.Urgency,
		Dates:            event.Dates,
		Status:           models.AssignmentStatusRegistered,
	}

	if err := s.repo.Create(assignment); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, apperrors.NewDependencyError("assignment ledger", err)
	}

	notification := &models.Notification{
		VolunteerID: volunteer.ID,
		Message:     fmt.Sprintf("You have been matched to the event: %s", event.Name),
	}
	if err := s.notifications.Create(notification); err != nil {
		// the ledger entry stands; notification delivery is best effort
		logrus.Warnf("assignment notification failed for volunteer %s: %v", volunteer.ID, err)
	}

	return s.convertToResponse(assignment), nil
}

// History returns the volunteer's assignments in insertion order. An
// unknown volunteer is an error; a known volunteer with no assignments
// gets an empty list.
func (s *AssignmentService) History(volunteerID uuid.UUID) ([]AssignmentResponse, error) {
	if _, err := s.volunteerRepo.GetByID(volunteerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVolunteerNotFound
		}
		return nil, apperrors.NewDependencyError("volunteer store", err)
	}

	assignments, err := s.repo.GetByVolunteerID(volunteerID)
	if err != nil {
		return nil, apperrors.NewDependencyError("assignment ledger", err)
	}

	responses := make([]AssignmentResponse, len(assignments))
	for i, assignment := range assignments {
		responses[i] = *s.convertToResponse(&assignment)
	}

	return responses, nil
}

// UpdateStatus moves an existing ledger entry to a new status. Snapshot
// fields are immutable; only the status column changes.
func (s *AssignmentService) UpdateStatus(id uuid.UUID, status models.AssignmentStatus) (*AssignmentResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("%q is not one of registered, completed, cancelled", status))
	}

	if err := s.repo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, apperrors.NewDependencyError("assignment ledger", err)
	}

	assignment, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.NewDependencyError("assignment ledger", err)
	}

	return s.convertToResponse(assignment), nil
}

// convertToResponse converts an assignment model to response
func (s *AssignmentService) convertToResponse(assignment *models.Assignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:               assignment.ID,
		VolunteerID:      assignment.VolunteerID,
		EventID:          assignment.EventID,
		EventName:        assignment.EventName,
		EventDescription: assignment.EventDescription,
		Location:         assignment.Location,
		RequiredSkills:   assignment.RequiredSkills,
		Urgency:          string(assignment.Urgency),
		Dates:            assignment.Dates,
		Status:           string(assignment.Status),
		CreatedAt:        assignment.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
