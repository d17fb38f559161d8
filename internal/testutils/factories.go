package testutils

import (
	"fmt"
	"time"

	"volunteer-hub-backend/internal/database/models"

	"github.com/google/uuid"
)

// VolunteerFactory provides methods to create test Volunteer data
type VolunteerFactory struct{}

// NewVolunteerFactory creates a new VolunteerFactory
func NewVolunteerFactory() *VolunteerFactory {
	return &VolunteerFactory{}
}

// Create creates a test Volunteer with default values. The email carries
// part of the UUID so repeated calls do not collide on the unique index.
func (f *VolunteerFactory) Create() *models.Volunteer {
	id := uuid.New()
	return &models.Volunteer{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:        fmt.Sprintf("volunteer-%s@test.com", id.String()[:8]),
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		FullName:     "Test Volunteer",
		City:         "Springfield",
		State:        "IL",
		Skills:       models.StringList{"First Aid", "Cooking"},
		Availability: models.StringList{"2026-09-01 to 2026-09-05"},
	}
}

// WithEmail sets a custom email for the volunteer
func (f *VolunteerFactory) WithEmail(email string) *models.Volunteer {
	v := f.Create()
	v.Email = email
	return v
}

// WithProfile sets custom skills and availability
func (f *VolunteerFactory) WithProfile(skills, availability []string) *models.Volunteer {
	v := f.Create()
	v.Skills = models.StringList(skills)
	v.Availability = models.StringList(availability)
	return v
}

// EventFactory provides methods to create test Event data
type EventFactory struct{}

// NewEventFactory creates a new EventFactory
func NewEventFactory() *EventFactory {
	return &EventFactory{}
}

// Create creates a test Event with default values
func (f *EventFactory) Create() *models.Event {
	return &models.Event{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:           "Test Event",
		Description:    "A test event for testing purposes",
		Location:       "Community Center",
		RequiredSkills: models.StringList{"First Aid"},
		Urgency:        models.UrgencyMedium,
		Dates:          models.StringList{"2026-09-02 to 2026-09-03"},
	}
}

// WithName sets a custom name for the event
func (f *EventFactory) WithName(name string) *models.Event {
	e := f.Create()
	e.Name = name
	return e
}

// WithMatching sets custom required skills and dates
func (f *EventFactory) WithMatching(skills, dates []string) *models.Event {
	e := f.Create()
	e.RequiredSkills = models.StringList(skills)
	e.Dates = models.StringList(dates)
	return e
}

// AssignmentFactory provides methods to create test Assignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// FromPair creates an assignment snapshotting the given event for the
// given volunteer
func (f *AssignmentFactory) FromPair(volunteer *models.Volunteer, event *models.Event) *models.Assignment {
	return &models.Assignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
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
}

// NotificationFactory provides methods to create test Notification data
type NotificationFactory struct{}

// NewNotificationFactory creates a new NotificationFactory
func NewNotificationFactory() *NotificationFactory {
	return &NotificationFactory{}
}

// ForVolunteer creates a notification addressed to the given volunteer
func (f *NotificationFactory) ForVolunteer(volunteerID uuid.UUID, message string) *models.Notification {
	return &models.Notification{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		VolunteerID: volunteerID,
		Message:     message,
	}
}
