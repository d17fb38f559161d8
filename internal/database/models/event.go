package models

// Event represents a community-service event created by an administrator.
// Dates holds one or more date-range strings in the canonical
// "YYYY-MM-DD to YYYY-MM-DD" form.
type Event struct {
	BaseModel
	Name           string     `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Description    string     `json:"description" gorm:"size:500" validate:"required,max=500"`
	Location       string     `json:"location" gorm:"size:200" validate:"required,max=200"`
	RequiredSkills StringList `json:"required_skills" gorm:"type:jsonb"`
	Urgency        Urgency    `json:"urgency" gorm:"type:varchar(20);not null" validate:"required"`
	Dates          StringList `json:"dates" gorm:"type:jsonb"`
}

// TableName returns the table name for Event
func (Event) TableName() string {
	return "events"
}
