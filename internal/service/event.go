package service

import (
	"errors"
	"fmt"

	"volunteer-hub-backend/internal/database/models"
	apperrors "volunteer-hub-backend/internal/errors"
	"volunteer-hub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// EventService handles business logic for events
type EventService struct {
	repo          repository.EventRepositoryInterface
	volunteerRepo repository.VolunteerRepositoryInterface
	notifications repository.NotificationRepositoryInterface
	validator     *validator.Validate
}

// NewEventService creates a new event service
func NewEventService(
	repo repository.EventRepositoryInterface,
	volunteerRepo repository.VolunteerRepositoryInterface,
	notifications repository.NotificationRepositoryInterface,
	validator *validator.Validate,
) *EventService {
	return &EventService{
		repo:          repo,
		volunteerRepo: volunteerRepo,
		notifications: notifications,
		validator:     validator,
	}
}

// CreateEventRequest represents the data needed to create an event
type CreateEventRequest struct {
	Name           string   `json:"name" validate:"required,max=100"`
	Description    string   `json:"description" validate:"required,max=500"`
	Location       string   `json:"location" validate:"required,max=200"`
	RequiredSkills []string `json:"required_skills" validate:"required,min=1"`
	Urgency        string   `json:"urgency" validate:"required"`
	Dates          []string `json:"dates" validate:"required,min=1"`
}

// EventResponse represents the response data for an event
type EventResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	RequiredSkills []string  `json:"required_skills"`
	Urgency        string    `json:"urgency"`
	Dates          []string  `json:"dates"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// CreateEvent creates a new event and broadcasts a notification to every
// registered volunteer. The broadcast is fire-and-forget: a failing
// notification store logs a warning but does not undo the event.
func (s *EventService) CreateEvent(req *CreateEventRequest) (*EventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	urgency := models.Urgency(req.Urgency)
	if !urgency.IsValid() {
		return nil, apperrors.NewValidationError("urgency", fmt.Sprintf("%q is not one of low, medium, high, critical", req.Urgency))
	}

	skills, err := canonicalSkills(req.RequiredSkills)
	if err != nil {
		return nil, err
	}
	if len(skills) == 0 {
		return nil, apperrors.NewValidationError("required_skills", "at least one non-empty skill is required")
	}

	// Event windows obey the same set rules as volunteer availability:
	// parseable, non-inverted, mutually disjoint.
	dates, err := canonicalAvailability(req.Dates)
	if err != nil {
		return nil, apperrors.NewValidationError("dates", err.Error())
	}

	event := &models.Event{
		Name:           req.Name,
		Description:    req.Description,
		Location:       req.Location,
		RequiredSkills: skills,
		Urgency:        urgency,
		Dates:          dates,
	}

	if err := s.repo.Create(event); err != nil {
		return nil, apperrors.NewDependencyError("event store", err)
	}

	s.broadcastNewEvent(event)

	return s.convertToResponse(event), nil
}

// GetEventByID retrieves an event by ID
func (s *EventService) GetEventByID(id uuid.UUID) (*EventResponse, error) {
	event, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, apperrors.NewDependencyError("event store", err)
	}

	return s.convertToResponse(event), nil
}

// ListEvents retrieves all events with pagination
func (s *EventService) ListEvents(limit, offset int) ([]EventResponse, int64, error) {
	events, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, apperrors.NewDependencyError("event store", err)
	}

	responses := make([]EventResponse, len(events))
	for i, event := range events {
		responses[i] = *s.convertToResponse(&event)
	}

	return responses, total, nil
}

// DeleteEvent deletes an event. Assignments referencing it keep their
// snapshots untouched.
func (s *EventService) DeleteEvent(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEventNotFound
		}
		return apperrors.NewDependencyError("event store", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return apperrors.NewDependencyError("event store", err)
	}

	return nil
}

// broadcastNewEvent writes one notification row per registered volunteer
func (s *EventService) broadcastNewEvent(event *models.Event) {
	ids, err := s.volunteerRepo.GetAllIDs()
	if err != nil {
		logrus.Warnf("event broadcast skipped, cannot list volunteers: %v", err)
		return
	}
	if len(ids) == 0 {
		return
	}

	notifications := make([]models.Notification, len(ids))
	for i, id := range ids {
		notifications[i] = models.Notification{
			VolunteerID: id,
			Message:     fmt.Sprintf("New event: %s", event.Name),
		}
	}
	if err := s.notifications.CreateBatch(notifications); err != nil {
		logrus.Warnf("event broadcast failed for event %s: %v", event.ID, err)
	}
}

// convertToResponse converts an event model to response
func (s *EventService) convertToResponse(event *models.Event) *EventResponse {
	return &EventResponse{
		ID:             event.ID,
		Name:           event.Name,
		Description:    event.Description,
		Location:       event.Location,
		RequiredSkills: event.RequiredSkills,
		Urgency:        string(event.Urgency),
		Dates:          event.Dates,
		CreatedAt:      event.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      event.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
