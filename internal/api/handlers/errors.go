package handlers

import (
	"net/http"

	apperrors "volunteer-hub-backend/internal/errors"
	"volunteer-hub-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondError maps a service error to its HTTP status code
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		// the response hides internals, so keep the real error in the logs
		logger.WithContext(c.Request.Context()).WithField("error", err.Error()).Error("unexpected service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// parseUUIDParam reads a path parameter as a UUID, answering 400 on garbage
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name + " format"})
		return uuid.Nil, false
	}
	return id, true
}
