package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"volunteer-hub-backend/internal/auth"
	"volunteer-hub-backend/internal/config"
	"volunteer-hub-backend/internal/database"
	"volunteer-hub-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// VolunteerData matches the volunteers seed file schema
type VolunteerData struct {
	Email        string   `yaml:"email"`
	Password     string   `yaml:"password"`
	FullName     string   `yaml:"full_name"`
	Address      string   `yaml:"address,omitempty"`
	City         string   `yaml:"city,omitempty"`
	State        string   `yaml:"state,omitempty"`
	Zipcode      string   `yaml:"zipcode,omitempty"`
	Skills       []string `yaml:"skills,omitempty"`
	Preferences  string   `yaml:"preferences,omitempty"`
	Availability []string `yaml:"availability,omitempty"`
}

// EventData matches the events seed file schema
type EventData struct {
	Name           string   `yaml:"name"`
	Description    string   `yaml:"description"`
	Location       string   `yaml:"location"`
	RequiredSkills []string `yaml:"required_skills"`
	Urgency        string   `yaml:"urgency"`
	Dates          []string `yaml:"dates"`
}

type VolunteersFile struct {
	Volunteers []VolunteerData `yaml:"volunteers"`
}

type EventsFile struct {
	Events []EventData `yaml:"events"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for
// Postgres readiness (dockerized Postgres can lag the script).
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	volunteers, err := loadVolunteers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load volunteers: %w", err)
	}

	events, err := loadEvents(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}

	created := 0
	for _, data := range volunteers {
		ok, err := createVolunteer(db, data)
		if err != nil {
			return fmt.Errorf("failed to create volunteer %s: %w", data.Email, err)
		}
		if ok {
			created++
		}
	}
	log.Printf("Volunteers: %d created, %d total", created, len(volunteers))

	created = 0
	for _, data := range events {
		ok, err := createEvent(db, data)
		if err != nil {
			return fmt.Errorf("failed to create event %s: %w", data.Name, err)
		}
		if ok {
			created++
		}
	}
	log.Printf("Events: %d created, %d total", created, len(events))

	return nil
}

func loadVolunteers(dataDir string) ([]VolunteerData, error) {
	raw, err := os.ReadFile(filepath.Join(dataDir, "volunteers.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var file VolunteersFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	return file.Volunteers, nil
}

func loadEvents(dataDir string) ([]EventData, error) {
	raw, err := os.ReadFile(filepath.Join(dataDir, "events.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var file EventsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	return file.Events, nil
}

// createVolunteer inserts a volunteer unless the email is already taken,
// so reruns of the script are idempotent.
func createVolunteer(db *gorm.DB, data VolunteerData) (bool, error) {
	var existing models.Volunteer
	err := db.First(&existing, "email = ?", data.Email).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	hash, err := auth.HashPassword(data.Password)
	if err != nil {
		return false, err
	}

	volunteer := &models.Volunteer{
		Email:        data.Email,
		PasswordHash: hash,
		FullName:     data.FullName,
		Address:      data.Address,
		City:         data.City,
		State:        data.State,
		Zipcode:      data.Zipcode,
		Skills:       models.StringList(data.Skills),
		Preferences:  data.Preferences,
		Availability: models.StringList(data.Availability),
	}
	if err := db.Create(volunteer).Error; err != nil {
		return false, err
	}
	return true, nil
}

// createEvent inserts an event unless one with the same name exists
func createEvent(db *gorm.DB, data EventData) (bool, error) {
	var existing models.Event
	err := db.First(&existing, "name = ?", data.Name).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	urgency := models.Urgency(data.Urgency)
	if !urgency.IsValid() {
		return false, fmt.Errorf("invalid urgency %q", data.Urgency)
	}

	event := &models.Event{
		Name:           data.Name,
		Description:    data.Description,
		Location:       data.Location,
		RequiredSkills: models.StringList(data.RequiredSkills),
		Urgency:        urgency,
		Dates:          models.StringList(data.Dates),
	}
	if err := db.Create(event).Error; err != nil {
		return false, err
	}
	return true, nil
}
