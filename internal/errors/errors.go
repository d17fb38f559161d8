package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this event"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// DependencyError represents a failure in a backing store or sink; callers
// may retry, the service itself does not.
type DependencyError struct {
	Dependency string
	Err        error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Dependency, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrVolunteerNotFound    = &NotFoundError{Entity: "volunteer"}
	ErrEventNotFound        = &NotFoundError{Entity: "event"}
	ErrAssignmentNotFound   = &NotFoundError{Entity: "assignment"}
	ErrNotificationNotFound = &NotFoundError{Entity: "notification"}
)

// Already Exists Errors
var (
	ErrVolunteerExists = &AlreadyExistsError{Entity: "volunteer", Context: "with this email"}
	ErrAlreadyAssigned = &AlreadyExistsError{Entity: "assignment", Context: "for this volunteer and event"}
)

// Business Logic Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidUrgency     = errors.New("invalid urgency level")
	ErrInvalidStatus      = errors.New("invalid assignment status")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsDependency checks if an error is a DependencyError
func IsDependency(err error) bool {
	var depErr *DependencyError
	return errors.As(err, &depErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewDependencyError wraps a failure from a backing dependency
func NewDependencyError(dependency string, err error) error {
	return &DependencyError{Dependency: dependency, Err: err}
}
