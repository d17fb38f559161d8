package service

import (
	"errors"
	"fmt"

	"volunteer-hub-backend/internal/auth"
	"volunteer-hub-backend/internal/database/models"
	apperrors "volunteer-hub-backend/internal/errors"
	"volunteer-hub-backend/internal/matching"
	"volunteer-hub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VolunteerService handles registration, login and profile maintenance
type VolunteerService struct {
	repo      repository.VolunteerRepositoryInterface
	validator *validator.Validate
	jwtSecret string
}

// NewVolunteerService creates a new volunteer service
func NewVolunteerService(repo repository.VolunteerRepositoryInterface, validator *validator.Validate, jwtSecret string) *VolunteerService {
	return &VolunteerService{
		repo:      repo,
		validator: validator,
		jwtSecret: jwtSecret,
	}
}

// RegisterRequest represents the data needed to register a volunteer.
// Profile fields are optional at registration and can be filled in later.
type RegisterRequest struct {
	Email        string   `json:"email" validate:"required,email,max=255"`
	Password     string   `json:"password" validate:"required,min=8,max=72"`
	FullName     string   `json:"full_name" validate:"max=100"`
	Address      string   `json:"address" validate:"max=200"`
	City         string   `json:"city" validate:"max=100"`
	State        string   `json:"state" validate:"max=50"`
	Zipcode      string   `json:"zipcode" validate:"max=10"`
	Skills       []string `json:"skills"`
	Preferences  string   `json:"preferences" validate:"max=500"`
	Availability []string `json:"availability"`
}

// LoginRequest represents the credentials for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the access token for an authenticated volunteer
type LoginResponse struct {
	VolunteerID uuid.UUID `json:"volunteer_id"`
	AccessToken string    `json:"access_token"`
}

// UpdateProfileRequest represents a profile update; nil fields are untouched
type UpdateProfileRequest struct {
	FullName     *string  `json:"full_name" validate:"omitempty,max=100"`
	Address      *string  `json:"address" validate:"omitempty,max=200"`
	City         *string  `json:"city" validate:"omitempty,max=100"`
	State        *string  `json:"state" validate:"omitempty,max=50"`
	Zipcode      *string  `json:"zipcode" validate:"omitempty,max=10"`
	Skills       []string `json:"skills"`
	Preferences  *string  `json:"preferences" validate:"omitempty,max=500"`
	Availability []string `json:"availability"`
}

// VolunteerResponse represents the response data for a volunteer
type VolunteerResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Zipcode      string    `json:"zipcode"`
	Skills       []string  `json:"skills"`
	Preferences  string    `json:"preferences"`
	Availability []string  `json:"availability"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

// Register creates a new volunteer account
func (s *VolunteerService) Register(req *RegisterRequest) (*VolunteerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	skills, err := canonicalSkills(req.Skills)
	if err != nil {
		return nil, err
	}
	availability, err := canonicalAvailability(req.Availability)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	volunteer := &models.Volunteer{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Zipcode:      req.Zipcode,
		Skills:       skills,
		Preferences:  req.Preferences,
		Availability: availability,
	}

	if err := s.repo.Create(volunteer); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, apperrors.NewDependencyError("volunteer store", err)
	}

	return s.convertToResponse(volunteer), nil
}

// Login verifies credentials and mints a short-lived access token
func (s *VolunteerService) Login(req *LoginRequest) (*LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	volunteer, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// same error as a bad password, no account probing
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.NewDependencyError("volunteer store", err)
	}

	if !auth.CheckPassword(volunteer.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.MakeToken(volunteer.ID.String(), s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to mint token: %w", err)
	}

	return &LoginResponse{VolunteerID: volunteer.ID, AccessToken: token}, nil
}

// GetProfile retrieves a volunteer profile by ID
func (s *VolunteerService) GetProfile(id uuid.UUID) (*VolunteerResponse, error) {
	volunteer, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVolunteerNotFound
		}
		return nil, apperrors.NewDependencyError("volunteer store", err)
	}

	return s.convertToResponse(volunteer), nil
}

// UpdateProfile updates an existing volunteer profile. Skills and
// availability replace the stored lists wholesale when provided.
func (s *VolunteerService) UpdateProfile(id uuid.UUID, req *UpdateProfileRequest) (*VolunteerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	volunteer, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVolunteerNotFound
		}
		return nil, apperrors.NewDependencyError("volunteer store", err)
	}

	if req.FullName != nil {
		volunteer.FullName = *req.FullName
	}
	if req.Address != nil {
		volunteer.Address = *req.Address
	}
	if req.City != nil {
		volunteer.City = *req.City
	}
	if req.State != nil {
		volunteer.State = *req.State
	}
	if req.Zipcode != nil {
		volunteer.Zipcode = *req.Zipcode
	}
	if req.Preferences != nil {
		volunteer.Preferences = *req.Preferences
	}
	if req.Skills != nil {
		skills, err := canonicalSkills(req.Skills)
		if err != nil {
			return nil, err
		}
		volunteer.Skills = skills
	}
	if req.Availability != nil {
		availability, err := canonicalAvailability(req.Availability)
		if err != nil {
			return nil, err
		}
		volunteer.Availability = availability
	}

	if err := s.repo.Update(volunteer); err != nil {
		return nil, apperrors.NewDependencyError("volunteer store", err)
	}

	return s.convertToResponse(volunteer), nil
}

// ListVolunteers retrieves all volunteers with pagination
func (s *VolunteerService) ListVolunteers(limit, offset int) ([]VolunteerResponse, int64, error) {
	volunteers, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, apperrors.NewDependencyError("volunteer store", err)
	}

	responses := make([]VolunteerResponse, len(volunteers))
	for i, volunteer := range volunteers {
		responses[i] = *s.convertToResponse(&volunteer)
	}

	return responses, total, nil
}

// convertToResponse converts a volunteer model to response
func (s *VolunteerService) convertToResponse(volunteer *models.Volunteer) *VolunteerResponse {
	return &VolunteerResponse{
		ID:           volunteer.ID,
		Email:        volunteer.Email,
		FullName:     volunteer.FullName,
		Address:      volunteer.Address,
		City:         volunteer.City,
		State:        volunteer.State,
		Zipcode:      volunteer.Zipcode,
		Skills:       volunteer.Skills,
		Preferences:  volunteer.Preferences,
		Availability: volunteer.Availability,
		CreatedAt:    volunteer.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    volunteer.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// canonicalSkills validates and normalizes skill labels for storage
func canonicalSkills(raw []string) (models.StringList, error) {
	set := matching.NewSkillSet(raw...)
	return models.StringList(set.Labels()), nil
}

// canonicalAvailability validates date-range strings and re-renders them in
// the canonical stored form. Rejects malformed, inverted, duplicate and
// overlapping ranges; never stores something the matcher cannot parse back.
func canonicalAvailability(raw []string) (models.StringList, error) {
	ranges, err := matching.ParseRanges(raw)
	if err != nil {
		return nil, apperrors.NewValidationError("availability", err.Error())
	}
	set, err := matching.NewAvailabilitySetFromRanges(ranges)
	if err != nil {
		return nil, apperrors.NewValidationError("availability", err.Error())
	}
	out := make(models.StringList, 0, set.Len())
	for _, r := range set.Ranges() {
		out = append(out, r.String())
	}
	return out, nil
}
