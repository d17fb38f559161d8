package models

// Volunteer represents a registered volunteer and their matching profile.
// Email is the unique natural key fixed at registration; the profile fields
// stay empty until the volunteer fills them in.
type Volunteer struct {
	BaseModel
	Email        string     `json:"email" gorm:"uniqueIndex:idx_volunteers_email;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string     `json:"-" gorm:"not null;size:100"`
	FullName     string     `json:"full_name" gorm:"size:100" validate:"max=100"`
	Address      string     `json:"address" gorm:"size:200" validate:"max=200"`
	City         string     `json:"city" gorm:"size:100" validate:"max=100"`
	State        string     `json:"state" gorm:"size:50" validate:"max=50"`
	Zipcode      string     `json:"zipcode" gorm:"size:10" validate:"max=10"`
	Skills       StringList `json:"skills" gorm:"type:jsonb"`
	Preferences  string     `json:"preferences" gorm:"size:500" validate:"max=500"`
	// Availability holds date-range strings in the canonical
	// "YYYY-MM-DD to YYYY-MM-DD" form, validated before storage.
	Availability StringList `json:"availability" gorm:"type:jsonb"`
}

// TableName returns the table name for Volunteer
func (Volunteer) TableName() string {
	return "volunteers"
}
