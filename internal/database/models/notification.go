package models

import "github.com/google/uuid"

// Notification is a message addressed to one volunteer. Produced when an
// event is created (broadcast) and when an assignment succeeds (directed).
// Delivery transport is out of scope; rows are the hand-off point.
type Notification struct {
	BaseModel
	VolunteerID uuid.UUID `json:"volunteer_id" gorm:"type:uuid;not null;index"`
	Message     string    `json:"message" gorm:"not null;size:500"`
	Read        bool      `json:"read" gorm:"not null;default:false"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
