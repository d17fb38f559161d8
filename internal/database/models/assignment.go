package models

import "github.com/google/uuid"

// Assignment is one volunteer-to-event history entry. The event fields are
// a denormalized snapshot taken at assignment time, so deleting the event
// later leaves the history intact. The composite unique index makes the
// insert itself the uniqueness check: a second assignment for the same
// (volunteer, event) pair fails at the database.
type Assignment struct {
	BaseModel
	VolunteerID      uuid.UUID        `json:"volunteer_id" gorm:"type:uuid;not null;uniqueIndex:idx_assignments_volunteer_event;index"`
	EventID          uuid.UUID        `json:"event_id" gorm:"type:uuid;not null;uniqueIndex:idx_assignments_volunteer_event"`
	EventName        string           `json:"event_name" gorm:"not null;size:100"`
	EventDescription string           `json:"event_description" gorm:"size:500"`
	Location         string           `json:"location" gorm:"size:200"`
	RequiredSkills   StringList       `json:"required_skills" gorm:"type:jsonb"`
	Urgency          Urgency          `json:"urgency" gorm:"type:varchar(20);not null"`
	Dates            StringList       `json:"dates" gorm:"type:jsonb"`
	Status           AssignmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'registered'"`
}

// TableName returns the table name for Assignment
func (Assignment) TableName() string {
	return "assignments"
}
