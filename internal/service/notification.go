package service

import (
	"errors"

	"volunteer-hub-backend/internal/database/models"
	apperrors "volunteer-hub-backend/internal/errors"
	"volunteer-hub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationService handles stored notifications. Delivery transport is
// out of scope; rows in the notifications table are the hand-off point.
type NotificationService struct {
	repo          repository.NotificationRepositoryInterface
	volunteerRepo repository.VolunteerRepositoryInterface
	validator     *validator.Validate
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	repo repository.NotificationRepositoryInterface,
	volunteerRepo repository.VolunteerRepositoryInterface,
	validator *validator.Validate,
) *NotificationService {
	return &NotificationService{
		repo:          repo,
		volunteerRepo: volunteerRepo,
		validator:     validator,
	}
}

// SendNotificationRequest represents a directed notification
type SendNotificationRequest struct {
	VolunteerID uuid.UUID `json:"volunteer_id" validate:"required"`
	Message     string    `json:"message" validate:"required,max=500"`
}

// NotificationResponse represents the response data for a notification
type NotificationResponse struct {
	ID          uuid.UUID `json:"id"`
	VolunteerID uuid.UUID `json:"volunteer_id"`
	Message     string    `json:"message"`
	Read        bool      `json:"read"`
	CreatedAt   string    `json:"created_at"`
}

// Send stores a directed notification for a volunteer
func (s *NotificationService) Send(req *SendNotificationRequest) (*NotificationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.volunteerRepo.GetByID(req.VolunteerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVolunteerNotFound
		}
		return nil, apperrors.NewDependencyError("volunteer store", err)
	}

	notification := &models.Notification{
		VolunteerID: req.VolunteerID,
		Message:     req.Message,
	}
	if err := s.repo.Create(notification); err != nil {
		return nil, apperrors.NewDependencyError("notification store", err)
	}

	return s.convertToResponse(notification), nil
}

// ListForVolunteer returns a volunteer's notifications, newest first
func (s *NotificationService) ListForVolunteer(volunteerID uuid.UUID) ([]NotificationResponse, error) {
	if _, err := s.volunteerRepo.GetByID(volunteerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVolunteerNotFound
		}
		return nil, apperrors.NewDependencyError("volunteer store", err)
	}

	notifications, err := s.repo.GetByVolunteerID(volunteerID)
	if err != nil {
		return nil, apperrors.NewDependencyError("notification store", err)
	}

	responses := make([]NotificationResponse, len(notifications))
	for i, notification := range notifications {
		responses[i] = *s.convertToResponse(&notification)
	}

	return responses, nil
}

// MarkRead flags one notification as read
func (s *NotificationService) MarkRead(id uuid.UUID) error {
	if err := s.repo.MarkRead(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return apperrors.NewDependencyError("notification store", err)
	}
	return nil
}

// Dismiss deletes one notification
func (s *NotificationService) Dismiss(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return apperrors.NewDependencyError("notification store", err)
	}
	return nil
}

// convertToResponse converts a notification model to response
func (s *NotificationService) convertToResponse(notification *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:          notification.ID,
		VolunteerID: notification.VolunteerID,
		Message:     notification.Message,
		Read:        notification.Read,
		CreatedAt:   notification.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
