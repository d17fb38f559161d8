package errors_test

import (
	"errors"
	"fmt"
	"testing"

	apperrors "volunteer-hub-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrorIs(t *testing.T) {
	err := fmt.Errorf("loading profile: %w", apperrors.ErrVolunteerNotFound)

	assert.True(t, errors.Is(err, apperrors.ErrVolunteerNotFound))
	assert.False(t, errors.Is(err, apperrors.ErrEventNotFound))
	assert.True(t, apperrors.IsNotFound(err))
	assert.False(t, apperrors.IsAlreadyExists(err))
}

func TestAlreadyExistsErrorIs(t *testing.T) {
	err := fmt.Errorf("assign: %w", apperrors.ErrAlreadyAssigned)

	assert.True(t, errors.Is(err, apperrors.ErrAlreadyAssigned))
	assert.True(t, apperrors.IsAlreadyExists(err))
	assert.Equal(t, "assignment already exists for this volunteer and event", apperrors.ErrAlreadyAssigned.Error())
}

func TestValidationError(t *testing.T) {
	err := apperrors.NewValidationError("dates", "malformed date range")

	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "validation error: dates - malformed date range", err.Error())

	bare := apperrors.NewValidationError("", "missing required field")
	assert.Equal(t, "validation error: missing required field", bare.Error())
}

func TestDependencyError(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperrors.NewDependencyError("database", cause)

	assert.True(t, apperrors.IsDependency(err))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "database unavailable")
}

func TestAuthenticationError(t *testing.T) {
	assert.True(t, apperrors.IsAuthentication(apperrors.ErrInvalidCredentials))
	assert.False(t, apperrors.IsAuthentication(apperrors.ErrVolunteerNotFound))
}
